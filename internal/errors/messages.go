package errors

import "fmt"

// Common error messages for the shiplog CLI.
// These templates ensure consistent, actionable error messages.

// MissingRepoArgument creates an error for a missing repository argument
// when interactive prompting is unavailable.
func MissingRepoArgument() *CLIError {
	return NewArgumentErrorWithUsage(
		"repository argument is required",
		"shiplog <owner/repo> [flags]",
		"Pass the repository as owner/repo or a full GitHub URL",
		"Or run shiplog from a terminal to be prompted interactively",
	)
}

// InvalidRepoURL creates an error for an unparseable repository reference.
func InvalidRepoURL(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid repository format: %s", provided),
		"shiplog <owner/repo> [flags]",
		"Accepted forms: owner/repo, github.com/owner/repo, https://github.com/owner/repo",
	)
}

// InvalidAfterDate creates an error for a malformed --after-date value.
func InvalidAfterDate(provided string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid --after-date value: %s", provided),
		"Use the YYYY-MM-DD format, e.g. --after-date 2024-03-01",
	)
}

// MissingGitHubToken creates an error for the missing hosting-API token.
func MissingGitHubToken() *CLIError {
	return NewCredentialError(
		"GITHUB_TOKEN is not set",
		"Create a token at https://github.com/settings/tokens",
		"Permissions needed: repo:status, public_repo",
		"Then: export GITHUB_TOKEN='your-token'",
	)
}

// MissingProviderKey creates an error when the selected provider has no API key.
func MissingProviderKey(provider, envVar string) *CLIError {
	return NewCredentialError(
		fmt.Sprintf("%s environment variable is not set", envVar),
		fmt.Sprintf("Set your %s API key: export %s='your-key'", provider, envVar),
		"Or select the other provider with --model",
	)
}

// RepoNotFound creates an error for a repository the API reports as missing.
func RepoNotFound(fullName string) *CLIError {
	return NewFetchError(
		fmt.Sprintf("repository %q not found", fullName),
		"Verify the repository URL in your browser: https://github.com/"+fullName,
		"The repository may not exist, or the URL may be misspelled",
		"Private repositories need a token with full 'repo' access instead of 'public_repo'",
	)
}

// BranchNotFound creates an error when no usable branch could be resolved.
func BranchNotFound(branch, fullName string) *CLIError {
	return NewFetchError(
		fmt.Sprintf("branch %q not found in %s", branch, fullName),
		"Check the branch name with: git ls-remote --heads https://github.com/"+fullName,
		"Omit --branch to fall back to main, master, or the default branch",
	)
}

// RateLimited creates an error for an exhausted API rate limit.
func RateLimited(err error) *CLIError {
	return WrapWithMessage(err, Fetch,
		"GitHub API rate limit exhausted",
		"Wait for the limit to reset (shown in the X-RateLimit-Reset header)",
		"Authenticated requests get a much higher limit; check GITHUB_TOKEN is set",
	)
}

// ProviderCallFailed creates an error for a generation call that failed
// after the retry budget was spent.
func ProviderCallFailed(provider string, err error) *CLIError {
	return WrapWithMessage(err, Provider,
		fmt.Sprintf("%s request failed after retries", provider),
		"Check your network connection",
		"Verify the API key is valid and has quota remaining",
		"Try the other provider with --model",
	)
}

// ChangelogNotWritable creates an error when the output file cannot be written.
func ChangelogNotWritable(path string, err error) *CLIError {
	return WrapWithMessage(err, File,
		fmt.Sprintf("cannot write changelog to %s", path),
		"Check file permissions: ls -la "+path,
		"Ensure the parent directory exists and is writable",
	)
}

// ChangelogNotReadable creates an error when the existing file cannot be parsed.
func ChangelogNotReadable(path string, err error) *CLIError {
	return WrapWithMessage(err, File,
		fmt.Sprintf("cannot read existing changelog at %s", path),
		"Fix or remove the file and rerun",
	)
}

// LocalRepoNotFound creates an error for an unusable --local path.
func LocalRepoNotFound(path string, err error) *CLIError {
	return WrapWithMessage(err, Fetch,
		fmt.Sprintf("cannot open local repository at %s", path),
		"Check that the path points at a git clone (contains .git)",
	)
}
