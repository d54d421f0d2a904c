package restapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pr-dashboard/internal/domain/models"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func respond(status int, body string) func(*http.Request) (*http.Response, error) {
	return func(*http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewBufferString(body))}, nil
	}
}

func filter() models.PRFilter {
	return models.PRFilter{
		Author:     "{abc}",
		From:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Repository: "webcore",
	}
}

func TestListMembers(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[{"uuid":"{u1}","display_name":"Jane Doe","username":"jane"},{"uuid":"{u2}","display_name":"John"}]`))
	}))
	defer srv.Close()

	members, err := NewClient(srv.URL+"/", "tok", srv.Client()).ListMembers(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "/api/members", gotPath)
	require.Equal(t, []models.Member{
		{UUID: "{u1}", DisplayName: "Jane Doe", Username: "jane"},
		{UUID: "{u2}", DisplayName: "John"},
	}, members)
}

func TestListPullRequests(t *testing.T) {
	body := `[
		{"id": 7, "title": "Add login", "state": "MERGED", "created_on": "2024-01-10T09:00:00.123456+00:00",
		 "merged_on": "2024-01-12T09:00:00+00:00", "comments": 4, "commits": 3, "link": "https://x/7",
		 "target_branch": "main", "source_branch": "feature/login", "days_to_merge": 2.0, "merged_by": "Lead"},
		{"id": 8, "title": "WIP", "state": "open", "created_on": "2024-01-20", "comments": 0, "commits": 1, "link": "https://x/8"}
	]`

	var query map[string][]string
	client := NewClient("https://api.test", "", &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		query = req.URL.Query()
		require.Empty(t, req.Header.Get("Authorization"))
		return respond(http.StatusOK, body)(req)
	}})

	f := filter()
	f.State = models.PRStateMerged
	f.TargetBranch = "main"
	prs, err := client.ListPullRequests(context.Background(), f)
	require.NoError(t, err)

	require.Equal(t, []string{"{abc}"}, query["author"])
	require.Equal(t, []string{"2024-01-01"}, query["from"])
	require.Equal(t, []string{"2024-01-31"}, query["to"])
	require.Equal(t, []string{"webcore"}, query["repo"])
	require.Equal(t, []string{"MERGED"}, query["state"])
	require.Equal(t, []string{"main"}, query["target_branch"])

	require.Len(t, prs, 2)
	require.Equal(t, int64(7), prs[0].ID)
	require.Equal(t, models.PRStateMerged, prs[0].State)
	require.NotNil(t, prs[0].MergedOn)
	require.NotNil(t, prs[0].DaysToMerge)
	require.Equal(t, 2.0, *prs[0].DaysToMerge)
	require.Equal(t, "feature/login", prs[0].SourceBranch)
	require.Equal(t, "Lead", prs[0].MergedBy)

	require.Equal(t, models.PRStateOpen, prs[1].State)
	require.Nil(t, prs[1].MergedOn)
	require.Nil(t, prs[1].DaysToMerge)
	require.Equal(t, 20, prs[1].CreatedOn.Day())
}

func TestListPullRequests_OptionalParamsOmitted(t *testing.T) {
	client := NewClient("https://api.test", "", &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		require.False(t, req.URL.Query().Has("state"))
		require.False(t, req.URL.Query().Has("target_branch"))
		return respond(http.StatusOK, `[]`)(req)
	}})

	prs, err := client.ListPullRequests(context.Background(), filter())
	require.NoError(t, err)
	require.Empty(t, prs)
}

func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name string
		do   func(*http.Request) (*http.Response, error)
	}{
		{"status", respond(http.StatusBadGateway, "upstream down")},
		{"transport", func(*http.Request) (*http.Response, error) { return nil, errors.New("dial tcp: refused") }},
		{"malformed json", respond(http.StatusOK, `{"not":"a list"`)},
		{"bad timestamp", respond(http.StatusOK, `[{"id":1,"created_on":"yesterday"}]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient("https://api.test", "", &mockHTTPClient{doFunc: tt.do})
			_, err := client.ListPullRequests(context.Background(), filter())
			require.Error(t, err)
			require.Contains(t, err.Error(), "webcore")
		})
	}
}

func TestClient_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "", srv.Client()).ListMembers(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
		zero    bool
	}{
		{in: "2024-01-10T09:00:00Z"},
		{in: "2024-01-10T09:00:00.123456+00:00"},
		{in: "2024-01-10T09:00:00.123456"},
		{in: "2024-01-10 09:00:00"},
		{in: "2024-01-10"},
		{in: "", zero: true},
		{in: "10/01/2024", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimestamp(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.zero, got.IsZero())
		})
	}
}

func TestNormalizeState(t *testing.T) {
	tests := []struct {
		in   string
		want models.PRState
	}{
		{"MERGED", models.PRStateMerged},
		{"open", models.PRStateOpen},
		{" declined ", models.PRStateDeclined},
		{"SUPERSEDED", models.PRStateDeclined},
		{"superseded", models.PRStateDeclined},
		{"DRAFT", models.PRState("DRAFT")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeState(tt.in))
		})
	}
}
