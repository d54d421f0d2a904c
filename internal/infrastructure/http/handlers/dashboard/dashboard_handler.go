package dashboard

import (
	input "pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
)

type DashboardHandler struct {
	dashboardService input.DashboardInputPort
	log              ports.Logger
}

func NewDashboardHandler(dashboardSvc input.DashboardInputPort, log ports.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardSvc, log: log}
}
