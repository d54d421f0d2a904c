package http

import (
	"net/http"
	input "pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
	"pr-dashboard/internal/infrastructure/http/handlers/dashboard"
	"pr-dashboard/internal/infrastructure/http/handlers/report"
	middlewares "pr-dashboard/internal/infrastructure/http/middleware"
	"pr-dashboard/internal/utils"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

type Router struct {
	router *chi.Mux
	log    ports.Logger

	dashboardService input.DashboardInputPort
	reportService    input.ReportInputPort
}

func NewRouter(log ports.Logger, dashboardSvc input.DashboardInputPort, reportSvc input.ReportInputPort) *Router {
	return &Router{
		router:           chi.NewRouter(),
		log:              log,
		dashboardService: dashboardSvc,
		reportService:    reportSvc,
	}
}

func (r *Router) Setup(requestTimeout time.Duration) {
	r.router.Use(chiMiddleware.RequestID)
	r.router.Use(chiMiddleware.RealIP)
	r.router.Use(chiMiddleware.Recoverer)
	r.router.Use(middlewares.RequestLoggerMiddleware(r.log))
	if requestTimeout > 0 {
		r.router.Use(chiMiddleware.Timeout(requestTimeout))
	}

	r.router.Get("/health", health)
	r.router.Mount("/api", r.setupAPIRoutes())
}

func (r *Router) setupAPIRoutes() http.Handler {
	dh := dashboard.NewDashboardHandler(r.dashboardService, r.log)
	rh := report.NewReportHandler(r.reportService, r.log)

	sub := chi.NewRouter()
	sub.Get("/members", dh.ListMembers)
	sub.Get("/repositories", dh.ListRepositories)
	sub.Get("/prs", dh.ListPRs)
	sub.Get("/charts/{name}", rh.GetChart)
	sub.Get("/report", rh.DownloadReport)
	return sub
}

func health(w http.ResponseWriter, _ *http.Request) {
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (r *Router) GetRouter() *chi.Mux { return r.router }
