// Package githost lists commit history from the GitHub REST API.
// Transport-level retries (rate limits, transient 5xx) are delegated to
// retryablehttp; this package only maps responses to model types and
// the CLI error taxonomy.
package githost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
	"github.com/evanhall-dev/shiplog/internal/model"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
	requestTimeout = 30 * time.Second
)

// Client is a minimal GitHub REST v3 client.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a GitHub client. The token comes from
// configuration; an empty token degrades to unauthenticated requests
// with their much lower rate limit.
func NewClient(token string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil
	httpClient := rc.StandardClient()
	httpClient.Timeout = requestTimeout

	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
	}
}

// ResolveRepo fetches repository metadata for an owner/repo reference.
func (c *Client) ResolveRepo(ctx context.Context, fullName string) (model.Repo, error) {
	var payload struct {
		FullName      string `json:"full_name"`
		Description   string `json:"description"`
		DefaultBranch string `json:"default_branch"`
		Owner         struct {
			Login string `json:"login"`
		} `json:"owner"`
		Name string `json:"name"`
	}

	err := c.getJSON(ctx, "/repos/"+fullName, nil, &payload)
	if err != nil {
		if isNotFound(err) {
			return model.Repo{}, cerrors.RepoNotFound(fullName)
		}
		return model.Repo{}, cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("looking up repository %s", fullName),
			"Check your network connection and GITHUB_TOKEN permissions")
	}

	return model.Repo{
		Owner:         payload.Owner.Login,
		Name:          payload.Name,
		FullName:      payload.FullName,
		Description:   payload.Description,
		DefaultBranch: payload.DefaultBranch,
	}, nil
}

// ResolveBranch picks the branch to walk: the explicit branch when
// given, otherwise main, master, then the repository default.
// An explicitly requested branch that does not exist is an error rather
// than a silent fallback.
func (c *Client) ResolveBranch(ctx context.Context, repo model.Repo, custom string) (string, error) {
	if custom != "" {
		ok, err := c.branchExists(ctx, repo.FullName, custom)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", cerrors.BranchNotFound(custom, repo.FullName)
		}
		return custom, nil
	}

	for _, candidate := range []string{"main", "master"} {
		ok, err := c.branchExists(ctx, repo.FullName, candidate)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
	}
	return repo.DefaultBranch, nil
}

func (c *Client) branchExists(ctx context.Context, fullName, branch string) (bool, error) {
	err := c.getJSON(ctx, "/repos/"+fullName+"/branches/"+branch, nil, &struct{}{})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, cerrors.WrapWithMessage(err, cerrors.Fetch,
			fmt.Sprintf("checking branch %s", branch))
	}
	return true, nil
}

// commitPayload mirrors the fields of the list-commits response we use.
type commitPayload struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// ListCommits pages through the branch history newest first, stopping
// at the Since cutoff or the Limit, whichever comes first.
func (c *Client) ListCommits(ctx context.Context, repo model.Repo, opts model.ListOptions) ([]model.Commit, error) {
	var commits []model.Commit

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("sha", opts.Branch)
		query.Set("per_page", strconv.Itoa(perPage))
		query.Set("page", strconv.Itoa(page))
		if !opts.Since.IsZero() {
			query.Set("since", opts.Since.UTC().Format(time.RFC3339))
		}

		var payload []commitPayload
		if err := c.getJSON(ctx, "/repos/"+repo.FullName+"/commits", query, &payload); err != nil {
			return nil, cerrors.WrapWithMessage(err, cerrors.Fetch,
				fmt.Sprintf("listing commits for %s@%s", repo.FullName, opts.Branch),
				"Check that the branch exists and the token can read the repository")
		}

		for _, p := range payload {
			// inclusive at the boundary: a commit at exactly the period start
			// belongs to the section being regenerated
			if !opts.Since.IsZero() && p.Commit.Author.Date.Before(opts.Since) {
				return commits, nil
			}
			commits = append(commits, model.Commit{
				SHA:       p.SHA,
				Message:   p.Commit.Message,
				Author:    p.Commit.Author.Name,
				Timestamp: p.Commit.Author.Date,
				URL:       p.HTMLURL,
			})
			if opts.Limit > 0 && len(commits) >= opts.Limit {
				return commits, nil
			}
		}

		if len(payload) < perPage {
			return commits, nil
		}
	}
}

// getJSON performs one GET and decodes the response body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling github: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errNotFound
	case resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0",
		resp.StatusCode == http.StatusTooManyRequests:
		return cerrors.RateLimited(fmt.Errorf("github responded with status %s", resp.Status))
	case resp.StatusCode >= 400:
		return fmt.Errorf("github responded with status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding github response: %w", err)
	}
	return nil
}
