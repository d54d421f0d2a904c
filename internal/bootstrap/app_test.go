package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pr-dashboard/internal/infrastructure/config"
	"pr-dashboard/internal/infrastructure/logger"
	"pr-dashboard/internal/infrastructure/provider/githubapi"
	"pr-dashboard/internal/infrastructure/provider/restapi"
)

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, config.Upstream{Kind: config.UpstreamREST, BaseURL: "http://localhost:5001"})
	require.NoError(t, err)
	require.IsType(t, &restapi.Client{}, p)

	p, err = NewProvider(ctx, config.Upstream{Kind: config.UpstreamGitHub, GitHubOrg: "acme", Token: "t"})
	require.NoError(t, err)
	require.IsType(t, &githubapi.Client{}, p)

	_, err = NewProvider(ctx, config.Upstream{Kind: "ftp"})
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	cfg := &config.Config{
		Env:          "test",
		Upstream:     config.Upstream{Kind: config.UpstreamREST, BaseURL: "http://localhost:5001"},
		Repositories: []string{"webcore"},
	}

	app, err := Build(context.Background(), cfg, logger.New("test"))
	require.NoError(t, err)
	require.NotNil(t, app.Dashboard)
	require.NotNil(t, app.Report)

	repos, err := app.Dashboard.ListRepositories(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"webcore"}, repos)
}

func TestBuild_BadPolicyFile(t *testing.T) {
	cfg := &config.Config{
		Upstream:      config.Upstream{Kind: config.UpstreamREST, BaseURL: "http://localhost:5001"},
		Repositories:  []string{"webcore"},
		CommentPolicy: config.CommentPolicy{File: "/does/not/exist.yaml"},
	}

	_, err := Build(context.Background(), cfg, logger.New("test"))
	require.Error(t, err)
}
