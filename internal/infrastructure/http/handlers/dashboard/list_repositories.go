package dashboard

import (
	"net/http"
	"pr-dashboard/internal/utils"
)

type ListRepositoriesResponse struct {
	Repositories []string `json:"repositories"`
}

func (h *DashboardHandler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := h.dashboardService.ListRepositories(r.Context())
	if err != nil {
		h.log.Error("ListRepositories service failed", "err", err)
		_ = utils.WriteServiceError(w, err)
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListRepositoriesResponse{Repositories: repos})
}
