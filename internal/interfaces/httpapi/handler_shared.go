package httpapi

import (
	"context"
	"time"

	"github.com/pitwallhq/pitwall/internal/domain/driver"
	"github.com/pitwallhq/pitwall/internal/domain/performance"
	"github.com/pitwallhq/pitwall/internal/domain/report"
	"github.com/pitwallhq/pitwall/internal/domain/schedule"
	"github.com/pitwallhq/pitwall/internal/domain/strategy"
	"github.com/pitwallhq/pitwall/internal/domain/team"
	"github.com/pitwallhq/pitwall/internal/domain/telemetry"
)

type driverDTO struct {
	DriverID          int    `json:"driverID" validate:"required,gt=0"`
	Name              string `json:"name" validate:"required"`
	DriverAbb         string `json:"driverAbb" validate:"required,len=3"`
	Nationality       string `json:"nationality" validate:"required"`
	PhysicalCondition string `json:"physicalCondition" validate:"required,oneof=Fit Injured Recovering"`
}

type telemetryDTO struct {
	Speed       float64 `json:"speed" validate:"gte=0"`
	RPM         int     `json:"rpm" validate:"gte=0"`
	Temperature float64 `json:"temperature"`
}

type lapTimeDTO struct {
	Minutes      int `json:"minutes" validate:"gte=0"`
	Seconds      int `json:"seconds" validate:"gte=0,lt=60"`
	Milliseconds int `json:"milliseconds" validate:"gte=0,lt=1000"`
}

type inventoryItemDTO struct {
	ItemID   int    `json:"itemID" validate:"required,gt=0"`
	PartName string `json:"partName" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
	Status   string `json:"status"`
}

type sponsorDTO struct {
	SponsorID     int     `json:"sponsorID" validate:"required,gt=0"`
	SponsorName   string  `json:"sponsorName" validate:"required"`
	ContractValue float64 `json:"contractValue" validate:"gte=0"`
}

type engineerDTO struct {
	EngineerID int    `json:"engineerID" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	Role       string `json:"role"`
}

type teamDTO struct {
	TeamID    int                `json:"teamID" validate:"required,gt=0"`
	Name      string             `json:"name" validate:"required"`
	Members   []string           `json:"members" validate:"omitempty,dive,required"`
	Inventory []inventoryItemDTO `json:"inventory" validate:"omitempty,dive"`
	Sponsors  []sponsorDTO       `json:"sponsors" validate:"omitempty,dive"`
	Engineers []engineerDTO      `json:"engineers" validate:"omitempty,dive"`
	Drivers   []driverDTO        `json:"drivers" validate:"omitempty,dive"`
}

type raceDTO struct {
	RaceID      int      `json:"raceID" validate:"required,gt=0"`
	CircuitName string   `json:"circuitName" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Weather     string   `json:"weather"`
	Result      []string `json:"result"`
}

type strategyPlanDTO struct {
	PitStopSchedule []int    `json:"pitStopSchedule" validate:"required,dive,gt=0"`
	TyreStrategy    []string `json:"tyreStrategy" validate:"required,dive,required"`
	FuelPlan        string   `json:"fuelPlan" validate:"required"`
}

type raceStrategyDTO struct {
	Race          raceDTO         `json:"race"`
	StrategyPlan  strategyPlanDTO `json:"strategyPlan"`
	LiveTelemetry telemetryDTO    `json:"liveTelemetry"`
}

type driverPerformanceDTO struct {
	Driver        driverDTO    `json:"driver"`
	LapTimes      []lapTimeDTO `json:"lapTimes" validate:"required,dive"`
	LiveTelemetry telemetryDTO `json:"liveTelemetry"`
}

type scheduleDTO struct {
	ScheduleID      int    `json:"scheduleID"`
	EngineerID      int    `json:"engineerID"`
	TaskDescription string `json:"taskDescription"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Location        string `json:"location,omitempty"`
	RaceID          int    `json:"raceID,omitempty"`
}

type raceReportDTO struct {
	ReportID                int               `json:"reportID"`
	RaceID                  int               `json:"raceID"`
	RaceSummary             string            `json:"raceSummary"`
	TeamPerformanceAnalysis map[string]string `json:"teamPerformanceAnalysis"`
	KeyIncidents            []string          `json:"keyIncidents"`
	GeneratedDate           string            `json:"generatedDate"`
}

func driverFromDTO(v driverDTO) driver.Driver {
	return driver.Driver{
		ID:                v.DriverID,
		Name:              v.Name,
		Abbreviation:      v.DriverAbb,
		Nationality:       v.Nationality,
		PhysicalCondition: v.PhysicalCondition,
	}
}

func driverToDTO(v driver.Driver) driverDTO {
	return driverDTO{
		DriverID:          v.ID,
		Name:              v.Name,
		DriverAbb:         v.Abbreviation,
		Nationality:       v.Nationality,
		PhysicalCondition: v.PhysicalCondition,
	}
}

func telemetryFromDTO(v telemetryDTO) telemetry.Data {
	return telemetry.Data{
		Speed:       v.Speed,
		RPM:         v.RPM,
		Temperature: v.Temperature,
	}
}

func telemetryToDTO(v telemetry.Data) telemetryDTO {
	return telemetryDTO{
		Speed:       v.Speed,
		RPM:         v.RPM,
		Temperature: v.Temperature,
	}
}

func teamFromDTO(ctx context.Context, v teamDTO) team.Team {
	ctx, span := startSpan(ctx, "httpapi.teamFromDTO")
	defer span.End()

	item := team.Team{
		ID:      v.TeamID,
		Name:    v.Name,
		Members: append([]string(nil), v.Members...),
	}
	for _, i := range v.Inventory {
		item.Inventory = append(item.Inventory, team.InventoryItem{
			ItemID:   i.ItemID,
			PartName: i.PartName,
			Quantity: i.Quantity,
			Status:   i.Status,
		})
	}
	for _, s := range v.Sponsors {
		item.Sponsors = append(item.Sponsors, team.Sponsor{
			SponsorID:     s.SponsorID,
			SponsorName:   s.SponsorName,
			ContractValue: s.ContractValue,
		})
	}
	for _, e := range v.Engineers {
		item.Engineers = append(item.Engineers, team.Engineer{
			EngineerID: e.EngineerID,
			Name:       e.Name,
			Role:       e.Role,
		})
	}
	for _, d := range v.Drivers {
		item.Drivers = append(item.Drivers, driverFromDTO(d))
	}

	return item
}

func teamToDTO(ctx context.Context, v team.Team) teamDTO {
	ctx, span := startSpan(ctx, "httpapi.teamToDTO")
	defer span.End()

	dto := teamDTO{
		TeamID:    v.ID,
		Name:      v.Name,
		Members:   append([]string(nil), v.Members...),
		Inventory: make([]inventoryItemDTO, 0, len(v.Inventory)),
		Sponsors:  make([]sponsorDTO, 0, len(v.Sponsors)),
		Engineers: make([]engineerDTO, 0, len(v.Engineers)),
		Drivers:   make([]driverDTO, 0, len(v.Drivers)),
	}
	for _, i := range v.Inventory {
		dto.Inventory = append(dto.Inventory, inventoryItemDTO{
			ItemID:   i.ItemID,
			PartName: i.PartName,
			Quantity: i.Quantity,
			Status:   i.Status,
		})
	}
	for _, s := range v.Sponsors {
		dto.Sponsors = append(dto.Sponsors, sponsorDTO{
			SponsorID:     s.SponsorID,
			SponsorName:   s.SponsorName,
			ContractValue: s.ContractValue,
		})
	}
	for _, e := range v.Engineers {
		dto.Engineers = append(dto.Engineers, engineerDTO{
			EngineerID: e.EngineerID,
			Name:       e.Name,
			Role:       e.Role,
		})
	}
	for _, d := range v.Drivers {
		dto.Drivers = append(dto.Drivers, driverToDTO(d))
	}

	return dto
}

func performanceFromDTO(ctx context.Context, v driverPerformanceDTO) performance.Performance {
	ctx, span := startSpan(ctx, "httpapi.performanceFromDTO")
	defer span.End()

	item := performance.Performance{
		Driver:        driverFromDTO(v.Driver),
		LapTimes:      make([]performance.LapTime, 0, len(v.LapTimes)),
		LiveTelemetry: telemetryFromDTO(v.LiveTelemetry),
	}
	for _, lap := range v.LapTimes {
		item.LapTimes = append(item.LapTimes, performance.LapTime{
			Minutes:      lap.Minutes,
			Seconds:      lap.Seconds,
			Milliseconds: lap.Milliseconds,
		})
	}

	return item
}

func performanceToDTO(ctx context.Context, v performance.Performance) driverPerformanceDTO {
	ctx, span := startSpan(ctx, "httpapi.performanceToDTO")
	defer span.End()

	dto := driverPerformanceDTO{
		Driver:        driverToDTO(v.Driver),
		LapTimes:      make([]lapTimeDTO, 0, len(v.LapTimes)),
		LiveTelemetry: telemetryToDTO(v.LiveTelemetry),
	}
	for _, lap := range v.LapTimes {
		dto.LapTimes = append(dto.LapTimes, lapTimeDTO{
			Minutes:      lap.Minutes,
			Seconds:      lap.Seconds,
			Milliseconds: lap.Milliseconds,
		})
	}

	return dto
}

func strategyFromDTO(ctx context.Context, v raceStrategyDTO) strategy.Strategy {
	ctx, span := startSpan(ctx, "httpapi.strategyFromDTO")
	defer span.End()

	return strategy.Strategy{
		Race: strategy.Race{
			ID:          v.Race.RaceID,
			CircuitName: v.Race.CircuitName,
			Date:        v.Race.Date,
			Weather:     v.Race.Weather,
			Result:      append([]string(nil), v.Race.Result...),
		},
		Plan:          planFromDTO(v.StrategyPlan),
		LiveTelemetry: telemetryFromDTO(v.LiveTelemetry),
	}
}

func strategyToDTO(ctx context.Context, v strategy.Strategy) raceStrategyDTO {
	ctx, span := startSpan(ctx, "httpapi.strategyToDTO")
	defer span.End()

	return raceStrategyDTO{
		Race: raceDTO{
			RaceID:      v.Race.ID,
			CircuitName: v.Race.CircuitName,
			Date:        v.Race.Date,
			Weather:     v.Race.Weather,
			Result:      append([]string(nil), v.Race.Result...),
		},
		StrategyPlan: strategyPlanDTO{
			PitStopSchedule: append([]int(nil), v.Plan.PitStopSchedule...),
			TyreStrategy:    append([]string(nil), v.Plan.TyreStrategy...),
			FuelPlan:        v.Plan.FuelPlan,
		},
		LiveTelemetry: telemetryToDTO(v.LiveTelemetry),
	}
}

func planFromDTO(v strategyPlanDTO) strategy.Plan {
	return strategy.Plan{
		PitStopSchedule: append([]int(nil), v.PitStopSchedule...),
		TyreStrategy:    append([]string(nil), v.TyreStrategy...),
		FuelPlan:        v.FuelPlan,
	}
}

func scheduleToDTO(v schedule.Schedule) scheduleDTO {
	return scheduleDTO{
		ScheduleID:      v.ID,
		EngineerID:      v.EngineerID,
		TaskDescription: v.TaskDescription,
		Date:            v.Date,
		StartTime:       v.StartTime,
		EndTime:         v.EndTime,
		Location:        v.Location,
		RaceID:          v.RaceID,
	}
}

func reportToDTO(ctx context.Context, v report.Report) raceReportDTO {
	ctx, span := startSpan(ctx, "httpapi.reportToDTO")
	defer span.End()

	return raceReportDTO{
		ReportID:                v.ID,
		RaceID:                  v.RaceID,
		RaceSummary:             v.Summary,
		TeamPerformanceAnalysis: v.TeamAnalysis,
		KeyIncidents:            append([]string(nil), v.KeyIncidents...),
		GeneratedDate:           v.GeneratedAt.UTC().Format(time.RFC3339),
	}
}
