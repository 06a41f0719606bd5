package cli

import cerrors "github.com/evanhall-dev/shiplog/internal/errors"

// Exit codes for the shiplog CLI.
// These codes support scripting and CI integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitGenericError indicates an uncategorized failure
	ExitGenericError = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitMissingCredentials indicates a required token or API key is absent
	ExitMissingCredentials = 3

	// ExitFetchFailed indicates commit history could not be fetched
	ExitFetchFailed = 4

	// ExitProviderFailed indicates the generation backend failed after retries
	ExitProviderFailed = 5

	// ExitFileError indicates the changelog file could not be read or written
	ExitFileError = 6
)

// ExitCodeFor maps an error to its exit code via the error taxonomy.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	cliErr := cerrors.AsCLIError(err)
	if cliErr == nil {
		return ExitGenericError
	}

	switch cliErr.Category {
	case cerrors.Argument:
		return ExitInvalidArguments
	case cerrors.Credential:
		return ExitMissingCredentials
	case cerrors.Fetch:
		return ExitFetchFailed
	case cerrors.Provider:
		return ExitProviderFailed
	case cerrors.File:
		return ExitFileError
	}
	return ExitGenericError
}
