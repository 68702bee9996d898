package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/pitwallhq/pitwall/internal/usecase"
)

func (h *Handler) UpsertDriverPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertDriverPerformance")
	defer span.End()

	var req driverPerformanceDTO
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

	item, err := h.performanceService.Upsert(ctx, performanceFromDTO(ctx, req))
	if err != nil {
		h.logger.WarnContext(ctx, "upsert driver performance failed", "driver_id", req.Driver.DriverID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performanceToDTO(ctx, item))
}

func (h *Handler) GetDriverPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDriverPerformance")
	defer span.End()

	driverID, err := pathID(r, "driverID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.performanceService.GetByDriverID(ctx, driverID)
	if err != nil {
		h.logger.WarnContext(ctx, "get driver performance failed", "driver_id", driverID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performanceToDTO(ctx, item))
}
