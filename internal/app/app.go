package app

import (
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/pitwallhq/pitwall/internal/config"
	"github.com/pitwallhq/pitwall/internal/domain/user"
	"github.com/pitwallhq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitwallhq/pitwall/internal/infrastructure/token"
	"github.com/pitwallhq/pitwall/internal/interfaces/httpapi"
	"github.com/pitwallhq/pitwall/internal/platform/logging"
	"github.com/pitwallhq/pitwall/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP layer into a
// ready-to-run server. The admin account is seeded from configuration;
// its password is hashed here so plaintext never leaves this function.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	userRepo := memory.NewUserRepository([]user.User{
		{
			ID:           1,
			Username:     cfg.AdminUsername,
			FullName:     cfg.AdminFullName,
			Email:        cfg.AdminEmail,
			PasswordHash: string(adminHash),
		},
	})
	teamRepo := memory.NewTeamRepository()
	performanceRepo := memory.NewPerformanceRepository()
	strategyRepo := memory.NewStrategyRepository()
	scheduleRepo := memory.NewScheduleRepository()
	reportRepo := memory.NewReportRepository()

	signer := token.NewSigner(cfg.AuthSecret, cfg.TokenTTL)

	authSvc := usecase.NewAuthService(userRepo, signer)
	teamSvc := usecase.NewTeamService(teamRepo)
	performanceSvc := usecase.NewPerformanceService(performanceRepo)
	strategySvc := usecase.NewStrategyService(strategyRepo)
	scheduleSvc := usecase.NewScheduleService(scheduleRepo)
	reportSvc := usecase.NewReportService(strategyRepo, teamRepo, reportRepo)

	handler := httpapi.NewHandler(authSvc, teamSvc, performanceSvc, strategySvc, scheduleSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler, authSvc, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
