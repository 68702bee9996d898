package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pitwallhq/pitwall/internal/domain/report"
	"github.com/pitwallhq/pitwall/internal/domain/strategy"
	"github.com/pitwallhq/pitwall/internal/domain/team"
)

type ReportService struct {
	strategyRepo strategy.Repository
	teamRepo     team.Repository
	reportRepo   report.Repository
	now          func() time.Time
}

func NewReportService(
	strategyRepo strategy.Repository,
	teamRepo team.Repository,
	reportRepo report.Repository,
) *ReportService {
	return &ReportService{
		strategyRepo: strategyRepo,
		teamRepo:     teamRepo,
		reportRepo:   reportRepo,
		now:          time.Now,
	}
}

// Generate derives a report for the race behind raceID. The strategy
// must already exist, and each race gets exactly one report; a second
// attempt fails without touching the stored report.
func (s *ReportService) Generate(ctx context.Context, raceID int) (report.Report, error) {
	strat, exists, err := s.strategyRepo.GetByRaceID(ctx, raceID)
	if err != nil {
		return report.Report{}, fmt.Errorf("get race strategy: %w", err)
	}
	if !exists {
		return report.Report{}, fmt.Errorf("%w: race=%d", ErrNotFound, raceID)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return report.Report{}, fmt.Errorf("list teams: %w", err)
	}

	item, err := report.Generate(strat.Race, teams, s.now().UTC())
	if err != nil {
		return report.Report{}, fmt.Errorf("generate report: %w", err)
	}

	created, err := s.reportRepo.Create(ctx, item)
	if err != nil {
		return report.Report{}, fmt.Errorf("store report: %w", err)
	}

	return created, nil
}

func (s *ReportService) GetByID(ctx context.Context, reportID int) (report.Report, error) {
	item, exists, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return report.Report{}, fmt.Errorf("get report by id: %w", err)
	}
	if !exists {
		return report.Report{}, fmt.Errorf("%w: report=%d", ErrNotFound, reportID)
	}

	return item, nil
}
