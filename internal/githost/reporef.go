package githost

import (
	"regexp"

	cerrors "github.com/evanhall-dev/shiplog/internal/errors"
)

// errNotFound marks a 404 internally so callers can map it to the right
// user-facing error.
var errNotFound = notFoundError{}

type notFoundError struct{}

func (notFoundError) Error() string { return "not found" }

func isNotFound(err error) bool {
	return err == errNotFound
}

// repoRefPattern accepts owner/repo, github.com/owner/repo, and full
// https URLs, with an optional trailing .git or slash.
var repoRefPattern = regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:github\.com/)?([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`)

// ParseRepoRef normalizes a repository reference to "owner/repo".
func ParseRepoRef(ref string) (string, error) {
	m := repoRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", cerrors.InvalidRepoURL(ref)
	}
	return m[1] + "/" + m[2], nil
}
