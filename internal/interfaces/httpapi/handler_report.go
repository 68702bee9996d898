package httpapi

import (
	"net/http"
)

func (h *Handler) GenerateRaceReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateRaceReport")
	defer span.End()

	raceID, err := pathID(r, "raceID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.reportService.Generate(ctx, raceID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate race report failed", "race_id", raceID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, reportToDTO(ctx, item))
}

func (h *Handler) GetRaceReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRaceReport")
	defer span.End()

	reportID, err := pathID(r, "reportID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.reportService.GetByID(ctx, reportID)
	if err != nil {
		h.logger.WarnContext(ctx, "get race report failed", "report_id", reportID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportToDTO(ctx, item))
}
