package report

import (
	"net/http"
	"pr-dashboard/internal/infrastructure/http/handlers/dto"
	"pr-dashboard/internal/utils"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *ReportHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	q, err := dto.QueryRequestFromURL(r.URL.Query()).ToQuery()
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}

	img, err := h.reportService.Chart(r.Context(), q, name)
	if err != nil {
		h.log.Error("GetChart service failed", "err", err, "chart", name)
		_ = utils.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Data)
}
