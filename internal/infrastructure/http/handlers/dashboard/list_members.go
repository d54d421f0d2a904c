package dashboard

import (
	"net/http"
	"pr-dashboard/internal/infrastructure/http/handlers/dto"
	"pr-dashboard/internal/utils"
)

func (h *DashboardHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.dashboardService.ListMembers(r.Context())
	if err != nil {
		h.log.Error("ListMembers service failed", "err", err)
		_ = utils.WriteServiceError(w, err)
		return
	}

	resp := make([]dto.MemberDTO, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberDTO(m))
	}
	_ = utils.WriteJSON(w, http.StatusOK, resp)
}
