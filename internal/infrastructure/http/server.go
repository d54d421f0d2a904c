package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	input "pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
	"time"
)

type Server struct {
	address        string
	requestTimeout time.Duration
	log            ports.Logger
	router         *Router
	server         *http.Server

	dashboardService input.DashboardInputPort
	reportService    input.ReportInputPort
}

func NewServer(address string, requestTimeout time.Duration, log ports.Logger, dashboardSvc input.DashboardInputPort, reportSvc input.ReportInputPort) *Server {
	s := &Server{
		address:          address,
		requestTimeout:   requestTimeout,
		log:              log,
		dashboardService: dashboardSvc,
		reportService:    reportSvc,
	}
	s.router = NewRouter(s.log, s.dashboardService, s.reportService)
	s.router.Setup(s.requestTimeout)
	s.server = &http.Server{
		Addr:              s.address,
		Handler:           s.router.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		// Reports can take a while to render; leave headroom over the handler timeout.
		WriteTimeout: s.requestTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler { return s.router.GetRouter() }

// Run blocks until the server stops. A graceful Shutdown is not reported as an error.
func (s *Server) Run() error {
	s.log.Info("Starting server", slog.String("address", s.address))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
