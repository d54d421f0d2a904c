package report

import (
	input "pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
)

type ReportHandler struct {
	reportService input.ReportInputPort
	log           ports.Logger
}

func NewReportHandler(reportSvc input.ReportInputPort, log ports.Logger) *ReportHandler {
	return &ReportHandler{reportService: reportSvc, log: log}
}
