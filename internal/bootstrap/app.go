package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"pr-dashboard/internal/application/dashboard"
	"pr-dashboard/internal/application/report"
	"pr-dashboard/internal/domain/ports/input"
	ports "pr-dashboard/internal/domain/ports/output"
	provider_port "pr-dashboard/internal/domain/ports/output/provider"
	"pr-dashboard/internal/infrastructure/charts"
	"pr-dashboard/internal/infrastructure/config"
	"pr-dashboard/internal/infrastructure/pdf"
	"pr-dashboard/internal/infrastructure/policy"
	"pr-dashboard/internal/infrastructure/provider/cache"
	"pr-dashboard/internal/infrastructure/provider/githubapi"
	"pr-dashboard/internal/infrastructure/provider/restapi"
)

const creator = "pr-dashboard"

// App holds the wired application services shared by the HTTP server and the CLI.
type App struct {
	Dashboard input.DashboardInputPort
	Report    input.ReportInputPort
}

func Build(ctx context.Context, cfg *config.Config, log ports.Logger) (*App, error) {
	provider, err := NewProvider(ctx, cfg.Upstream)
	if err != nil {
		return nil, err
	}
	provider = cache.NewCachingProvider(provider, cfg.Upstream.MembersCacheTTL, cfg.Upstream.PRCacheTTL, log.With("component", "provider-cache"))

	rule, err := policy.Load(cfg.CommentPolicy.File)
	if err != nil {
		return nil, fmt.Errorf("load comment policy: %w", err)
	}

	dashboardService := dashboard.NewService(provider, rule, cfg.Repositories, log.With("component", "dashboard"))
	reportService := report.NewService(
		dashboardService,
		charts.NewRenderer(),
		pdf.NewRenderer(creator),
		report.Options{Branding: cfg.Report.Branding, ChartReadyTimeout: cfg.Report.ChartReadyTimeout},
		log.With("component", "report"),
	)

	return &App{Dashboard: dashboardService, Report: reportService}, nil
}

func NewProvider(ctx context.Context, cfg config.Upstream) (provider_port.PRProvider, error) {
	switch cfg.Kind {
	case config.UpstreamREST:
		return restapi.NewClient(cfg.BaseURL, cfg.Token, &http.Client{Timeout: cfg.Timeout}), nil
	case config.UpstreamGitHub:
		c, err := githubapi.NewClient(ctx, cfg.GitHubOrg, cfg.Token, cfg.GitHubBaseURL)
		if err != nil {
			return nil, fmt.Errorf("create github client: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown upstream kind %q", cfg.Kind)
	}
}
