package report

import (
	"mime"
	"net/http"
	"pr-dashboard/internal/infrastructure/http/handlers/dto"
	"pr-dashboard/internal/utils"
	"strconv"
)

func (h *ReportHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	q, err := dto.QueryRequestFromURL(r.URL.Query()).ToQuery()
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}

	h.log.Info("DownloadReport request", "author", q.Author, "repos", q.Repositories, "period", q.DateRange())

	rep, err := h.reportService.Generate(r.Context(), q)
	if err != nil {
		h.log.Error("DownloadReport service failed", "err", err, "author", q.Author)
		_ = utils.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", rep.ContentType)
	// Non-ASCII names are sent as an RFC 2231 filename* parameter.
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rep.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(rep.Content)))
	w.Header().Set("X-Report-ID", rep.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(rep.Content)
}
