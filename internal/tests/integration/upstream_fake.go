package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
)

const (
	MemberID   = "{6f1c2a4e-1b7d-4f0e-9a51-3c2d8e7b9f10}"
	MemberName = "Jane Doe"
)

// FakeUpstream serves the PR analytics API from in-memory fixtures.
type FakeUpstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	prs      map[string][]map[string]any
	failRepo string
	requests atomic.Int64
}

func StartFakeUpstream() *FakeUpstream {
	f := &FakeUpstream{prs: make(map[string][]map[string]any)}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/members", f.members)
	mux.HandleFunc("/api/prs", f.pullRequests)
	f.Server = httptest.NewServer(mux)
	return f
}

func (f *FakeUpstream) Close() { f.Server.Close() }

func (f *FakeUpstream) Requests() int64 { return f.requests.Load() }

// Reset clears fixtures and the failing repository.
func (f *FakeUpstream) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prs = make(map[string][]map[string]any)
	f.failRepo = ""
	f.requests.Store(0)
}

func (f *FakeUpstream) SetPRs(repo string, prs []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prs[repo] = prs
}

func (f *FakeUpstream) FailRepo(repo string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failRepo = repo
}

func (f *FakeUpstream) members(w http.ResponseWriter, _ *http.Request) {
	f.requests.Add(1)
	writeJSON(w, []map[string]any{
		{"uuid": MemberID, "display_name": MemberName, "username": "jane"},
		{"uuid": "{00000000-0000-0000-0000-000000000002}", "display_name": "John Roe"},
	})
}

func (f *FakeUpstream) pullRequests(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)
	repo := r.URL.Query().Get("repo")

	f.mu.Lock()
	defer f.mu.Unlock()
	if repo == f.failRepo {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
		return
	}
	if r.URL.Query().Get("author") != MemberID {
		writeJSON(w, []any{})
		return
	}

	out := []map[string]any{}
	state := r.URL.Query().Get("state")
	for _, pr := range f.prs[repo] {
		if state == "" || pr["state"] == state {
			out = append(out, pr)
		}
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// StrongContributorPRs is 10 merged and 5 open pull requests, merged in 1.5 days
// on average. It scores 8.7.
func StrongContributorPRs() []map[string]any {
	prs := make([]map[string]any, 0, 15)
	for i := 1; i <= 15; i++ {
		pr := map[string]any{
			"id":            i,
			"title":         fmt.Sprintf("Implement feature %d for the trading dashboard", i),
			"state":         "OPEN",
			"created_on":    fmt.Sprintf("2024-01-%02dT09:00:00.000000+00:00", i),
			"comments":      4,
			"commits":       i,
			"link":          fmt.Sprintf("https://bitbucket.example/webcore/pull-requests/%d", i),
			"target_branch": "main",
			"source_branch": fmt.Sprintf("feature/%d", i),
		}
		if i <= 10 {
			pr["state"] = "MERGED"
			pr["merged_on"] = fmt.Sprintf("2024-01-%02dT21:00:00.000000+00:00", i+1)
			pr["days_to_merge"] = 1.5
			pr["merged_by"] = "Team Lead"
		}
		prs = append(prs, pr)
	}
	return prs
}
