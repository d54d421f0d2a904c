package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pr-dashboard/internal/domain/models"
	"pr-dashboard/internal/tests/integration"
)

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "env: test\nupstream:\n  kind: rest\n  base_url: " + baseURL + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	upstream := integration.StartFakeUpstream()
	defer upstream.Close()
	upstream.SetPRs("webcore", integration.StrongContributorPRs())

	outDir := t.TempDir()
	out, err := run(t, "generate",
		"--config", writeConfig(t, upstream.Server.URL),
		"--member", integration.MemberID,
		"--from", "2024-01-01",
		"--to", "2024-01-31",
		"--repo", "webcore",
		"--out", outDir,
	)
	require.NoError(t, err)
	require.Contains(t, out, "Overall score: 8.7/10 - Strong Contributor!")

	path := filepath.Join(outDir, "Jane Doe_Evaluation_Report_"+time.Now().Format(models.DateLayout)+".pdf")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestGenerate_Errors(t *testing.T) {
	upstream := integration.StartFakeUpstream()
	defer upstream.Close()
	cfg := writeConfig(t, upstream.Server.URL)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing flags", []string{"generate", "--config", cfg}, "required flag"},
		{"bad date", []string{"generate", "--config", cfg, "-m", "x", "--from", "01/01/2024", "--to", "2024-01-31", "-r", "webcore"}, "--from"},
		{"no data", []string{"generate", "--config", cfg, "-m", integration.MemberID, "--from", "2024-01-01", "--to", "2024-01-31", "-r", "webcore", "-o", t.TempDir()}, "no pull request data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMembers(t *testing.T) {
	upstream := integration.StartFakeUpstream()
	defer upstream.Close()

	out, err := run(t, "members", "--config", writeConfig(t, upstream.Server.URL))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "UUID")
	require.Contains(t, lines[1], integration.MemberName)
}

func TestGenerateOptions_Query(t *testing.T) {
	opts := &generateOptions{member: "m", from: "2024-01-01", to: "2024-01-31", repos: []string{"a,b"}, state: "merged"}
	q, err := opts.query()
	require.NoError(t, err)
	require.Equal(t, models.PRStateMerged, q.State)
	require.Equal(t, []string{"a,b"}, q.Repositories)
}
