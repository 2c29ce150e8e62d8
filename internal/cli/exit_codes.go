package cli

import "github.com/relcut/relcut/internal/errors"

// Exit codes for the relcut CLI. The non-zero codes mirror the error
// categories so CI scripts can tell a bad tag from a bad config.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeError indicates an uncategorized failure
	ExitRuntimeError = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfigurationError indicates an invalid or unreadable config
	ExitConfigurationError = 3

	// ExitRepositoryError indicates a git repository operation failed
	ExitRepositoryError = 4

	// ExitVersionError indicates a malformed version or release tag
	ExitVersionError = 5
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := errors.AsCLIError(err)
	if cliErr == nil {
		return ExitRuntimeError
	}
	switch cliErr.Category {
	case errors.Argument:
		return ExitInvalidArguments
	case errors.Configuration:
		return ExitConfigurationError
	case errors.Repository:
		return ExitRepositoryError
	case errors.Version:
		return ExitVersionError
	default:
		return ExitRuntimeError
	}
}
