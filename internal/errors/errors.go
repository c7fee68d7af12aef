package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0
	// ExitUser covers bad input, bad configuration and repository problems.
	ExitUser = 1
	// ExitSystem covers I/O and other environment failures.
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrMissingDirectory indicates a required source directory is absent.
	ErrMissingDirectory = crdb.New("directory not found")

	// ErrMissingTarget indicates the target manifest file is absent.
	ErrMissingTarget = crdb.New("target manifest not found")

	// ErrAnchorNotFound indicates none of the marker pair, placeholder, or
	// section anchor could be located in the target document.
	ErrAnchorNotFound = crdb.New("insertion anchor not found")

	// ErrUntagged indicates untagged skill folders exist under strict mode.
	ErrUntagged = crdb.New("untagged skills found")

	// ErrOutOfDate indicates the manifest would change if regenerated.
	ErrOutOfDate = crdb.New("manifest is out of date")
)

// userSentinels are conditions caused by repository layout or policy rather
// than by the system; they exit with ExitUser.
var userSentinels = []error{
	ErrNotFound,
	ErrInvalidConfig,
	ErrMissingDirectory,
	ErrMissingTarget,
	ErrAnchorNotFound,
	ErrUntagged,
	ErrOutOfDate,
}

// Re-exported helpers from cockroachdb/errors.
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
	Is    = crdb.Is
	As    = crdb.As
	Mark  = crdb.Mark
)

// ExitError carries the process exit code and an optional one-line
// suggestion printed under the error.
type ExitError struct {
	Err        error
	Code       int
	Suggestion string
}

// NewExitError attaches code to err.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError marks err as the user's to fix (ExitUser).
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError marks err as an environment failure (ExitSystem).
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// NewConfigError is a user error pointing at the effective configuration.
func NewConfigError(err error) *ExitError {
	return NewUserError(err, "Run: agentdocs config show")
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	for _, sentinel := range userSentinels {
		if crdb.Is(err, sentinel) {
			return ExitUser
		}
	}
	return ExitSystem
}

// Suggestion returns the first suggestion attached to an ExitError in the
// chain, or an empty string.
func Suggestion(err error) string {
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Suggestion
	}
	return ""
}
