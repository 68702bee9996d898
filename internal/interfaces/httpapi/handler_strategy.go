package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitwallhq/pitwall/internal/usecase"
)

func (h *Handler) UpsertRaceStrategy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertRaceStrategy")
	defer span.End()

	var req raceStrategyDTO
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

	item, err := h.strategyService.Upsert(ctx, strategyFromDTO(ctx, req))
	if err != nil {
		h.logger.WarnContext(ctx, "upsert race strategy failed", "race_id", req.Race.RaceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, strategyToDTO(ctx, item))
}

func (h *Handler) GetRaceStrategy(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceStrategy")
	defer span.End()

	raceID, err := pathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.strategyService.GetByRaceID(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "get race strategy failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, strategyToDTO(ctx, item))
}

func (h *Handler) UpdateStrategyPlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateStrategyPlan")
	defer span.End()

	raceID, err := pathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req strategyPlanDTO
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

	item, err := h.strategyService.ReplacePlan(ctx, raceID, planFromDTO(req))
	if err != nil {
		h.logger.WarnContext(ctx, "update strategy plan failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, strategyToDTO(ctx, item))
}
