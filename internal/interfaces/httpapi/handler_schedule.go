package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"github.com/pitwallhq/pitwall/internal/domain/schedule"
	"github.com/pitwallhq/pitwall/internal/usecase"
)

type schedulePayload struct {
	ScheduleID      *int   `json:"scheduleID" validate:"omitempty,gt=0"`
	EngineerID      int    `json:"engineerID" validate:"required,gt=0"`
	TaskDescription string `json:"taskDescription" validate:"required"`
	Date            string `json:"date" validate:"required"`
	StartTime       string `json:"startTime" validate:"required"`
	EndTime         string `json:"endTime" validate:"required"`
	Location        string `json:"location"`
	RaceID          int    `json:"raceID" validate:"omitempty,gt=0"`
}

func (p schedulePayload) toDomain() schedule.Schedule {
	item := schedule.Schedule{
		EngineerID:      p.EngineerID,
		TaskDescription: p.TaskDescription,
		Date:            p.Date,
		StartTime:       p.StartTime,
		EndTime:         p.EndTime,
		Location:        p.Location,
		RaceID:          p.RaceID,
	}
	if p.ScheduleID != nil {
		item.ID = *p.ScheduleID
	}

	return item
}

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateSchedule")
	defer span.End()

	var req schedulePayload
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scheduleService.Create(ctx, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "create schedule failed", "engineer_id", req.EngineerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, scheduleToDTO(item))
}

func (h *Handler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedules")
	defer span.End()

	items, err := h.scheduleService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list schedules failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lo.Map(items, func(item schedule.Schedule, _ int) scheduleDTO {
		return scheduleToDTO(item)
	}))
}

func (h *Handler) ListSchedulesByEngineer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedulesByEngineer")
	defer span.End()

	engineerID, err := pathID(r, "engineerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.scheduleService.ListByEngineer(ctx, engineerID)
	if err != nil {
		h.logger.WarnContext(ctx, "list schedules by engineer failed", "engineer_id", engineerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lo.Map(items, func(item schedule.Schedule, _ int) scheduleDTO {
		return scheduleToDTO(item)
	}))
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateSchedule")
	defer span.End()

	scheduleID, err := pathID(r, "scheduleID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req schedulePayload
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scheduleService.Update(ctx, scheduleID, req.toDomain())
	if err != nil {
		h.logger.WarnContext(ctx, "update schedule failed", "schedule_id", scheduleID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleToDTO(item))
}
