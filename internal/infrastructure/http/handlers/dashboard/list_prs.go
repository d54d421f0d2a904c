package dashboard

import (
	"net/http"
	"pr-dashboard/internal/infrastructure/http/handlers/dto"
	"pr-dashboard/internal/utils"
)

type ListPRsResponse struct {
	PullRequests []dto.PRDTO   `json:"pull_requests"`
	Summary      dto.SummaryDTO `json:"summary"`
}

func (h *DashboardHandler) ListPRs(w http.ResponseWriter, r *http.Request) {
	q, err := dto.QueryRequestFromURL(r.URL.Query()).ToQuery()
	if err != nil {
		_ = utils.WriteServiceError(w, err)
		return
	}

	h.log.Info("ListPRs request", "author", q.Author, "repos", q.Repositories, "period", q.DateRange())

	d, err := h.dashboardService.Query(r.Context(), q)
	if err != nil {
		h.log.Error("ListPRs service failed", "err", err, "author", q.Author)
		_ = utils.WriteServiceError(w, err)
		return
	}

	prs := make([]dto.PRDTO, 0, len(d.Records))
	for _, pr := range d.Records {
		prs = append(prs, dto.ToPRDTO(pr))
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListPRsResponse{PullRequests: prs, Summary: dto.ToSummaryDTO(d.Summary)})
}
