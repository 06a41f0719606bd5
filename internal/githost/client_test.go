package githost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
	"github.com/evanhall-dev/shiplog/internal/model"
)

func newTestClient(server *httptest.Server) *Client {
	c := NewClient("test-token")
	c.baseURL = server.URL
	return c
}

func TestParseRepoRef(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"bare owner/repo":   {input: "octocat/hello", want: "octocat/hello"},
		"host prefix":       {input: "github.com/octocat/hello", want: "octocat/hello"},
		"full https url":    {input: "https://github.com/octocat/hello", want: "octocat/hello"},
		"www and .git":      {input: "https://www.github.com/octocat/hello.git", want: "octocat/hello"},
		"trailing slash":    {input: "octocat/hello/", want: "octocat/hello"},
		"missing repo part": {input: "octocat", wantErr: true},
		"extra path":        {input: "github.com/octocat/hello/tree/main", wantErr: true},
		"empty":             {input: "", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseRepoRef(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, cerrors.Argument, cerrors.CategoryOf(err, cerrors.Fetch))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveRepo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]any{
			"full_name":      "octocat/hello",
			"name":           "hello",
			"description":    "demo repo",
			"default_branch": "trunk",
			"owner":          map[string]string{"login": "octocat"},
		})
	}))
	defer server.Close()

	repo, err := newTestClient(server).ResolveRepo(context.Background(), "octocat/hello")

	require.NoError(t, err)
	assert.Equal(t, model.Repo{
		Owner:         "octocat",
		Name:          "hello",
		FullName:      "octocat/hello",
		Description:   "demo repo",
		DefaultBranch: "trunk",
	}, repo)
}

func TestResolveRepo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestClient(server).ResolveRepo(context.Background(), "octocat/missing")

	require.Error(t, err)
	assert.Equal(t, cerrors.Fetch, cerrors.CategoryOf(err, cerrors.Argument))
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveBranch(t *testing.T) {
	tests := map[string]struct {
		existing map[string]bool
		custom   string
		want     string
		wantErr  bool
	}{
		"custom branch exists": {
			existing: map[string]bool{"develop": true},
			custom:   "develop",
			want:     "develop",
		},
		"custom branch missing": {
			existing: map[string]bool{"main": true},
			custom:   "develop",
			wantErr:  true,
		},
		"falls back to main": {
			existing: map[string]bool{"main": true, "master": true},
			want:     "main",
		},
		"falls back to master": {
			existing: map[string]bool{"master": true},
			want:     "master",
		},
		"falls back to default branch": {
			existing: map[string]bool{},
			want:     "trunk",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				branch := r.URL.Path[len("/repos/octocat/hello/branches/"):]
				if tc.existing[branch] {
					json.NewEncoder(w).Encode(map[string]string{"name": branch})
					return
				}
				http.NotFound(w, r)
			}))
			defer server.Close()

			repo := model.Repo{FullName: "octocat/hello", DefaultBranch: "trunk"}
			got, err := newTestClient(server).ResolveBranch(context.Background(), repo, tc.custom)

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// commitsHandler serves a fixed newest-first history with GitHub-style
// pagination.
func commitsHandler(t *testing.T, history []time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello/commits", r.URL.Path)
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		assert.GreaterOrEqual(t, page, 1)

		start := (page - 1) * perPage
		end := start + perPage
		if start > len(history) {
			start = len(history)
		}
		if end > len(history) {
			end = len(history)
		}

		payload := make([]map[string]any, 0, end-start)
		for i := start; i < end; i++ {
			payload = append(payload, map[string]any{
				"sha":      fmt.Sprintf("sha-%03d", i),
				"html_url": fmt.Sprintf("https://github.com/octocat/hello/commit/sha-%03d", i),
				"commit": map[string]any{
					"message": fmt.Sprintf("commit %d", i),
					"author": map[string]any{
						"name": "octocat",
						"date": history[i].Format(time.RFC3339),
					},
				},
			})
		}
		json.NewEncoder(w).Encode(payload)
	}
}

func TestListCommits_Pagination(t *testing.T) {
	history := make([]time.Time, perPage+10)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range history {
		history[i] = base.Add(-time.Duration(i) * time.Hour)
	}

	server := httptest.NewServer(commitsHandler(t, history))
	defer server.Close()

	repo := model.Repo{FullName: "octocat/hello"}
	commits, err := newTestClient(server).ListCommits(context.Background(), repo, model.ListOptions{Branch: "main"})

	require.NoError(t, err)
	require.Len(t, commits, perPage+10)
	assert.Equal(t, "sha-000", commits[0].SHA)
	assert.Equal(t, "octocat", commits[0].Author)
	assert.True(t, commits[0].Timestamp.After(commits[1].Timestamp))
}

func TestListCommits_Limit(t *testing.T) {
	history := make([]time.Time, 50)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := range history {
		history[i] = base.Add(-time.Duration(i) * time.Hour)
	}

	server := httptest.NewServer(commitsHandler(t, history))
	defer server.Close()

	repo := model.Repo{FullName: "octocat/hello"}
	commits, err := newTestClient(server).ListCommits(context.Background(), repo, model.ListOptions{Branch: "main", Limit: 7})

	require.NoError(t, err)
	assert.Len(t, commits, 7)
}

func TestListCommits_SinceBoundaryInclusive(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	history := []time.Time{base, base.Add(-time.Hour), base.Add(-2 * time.Hour)}

	server := httptest.NewServer(commitsHandler(t, history))
	defer server.Close()

	repo := model.Repo{FullName: "octocat/hello"}
	commits, err := newTestClient(server).ListCommits(context.Background(), repo, model.ListOptions{
		Branch: "main",
		Since:  base.Add(-time.Hour), // the commit at exactly this instant stays in
	})

	require.NoError(t, err)
	require.Len(t, commits, 2)
	assert.Equal(t, "sha-000", commits[0].SHA)
	assert.Equal(t, "sha-001", commits[1].SHA)
}

func TestListCommits_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	repo := model.Repo{FullName: "octocat/hello"}
	_, err := newTestClient(server).ListCommits(context.Background(), repo, model.ListOptions{Branch: "main"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit")
}
