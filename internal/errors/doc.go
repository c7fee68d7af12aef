// Package errors provides error handling conventions for the agentdocs CLI.
//
// It re-exports the wrapping helpers from [github.com/cockroachdb/errors] so
// callers only need a single import, defines sentinel errors for the failure
// conditions the generator and tag validator report, and provides an
// ExitError type that carries a process exit code and an optional
// suggestion.
//
// # Sentinel Errors
//
// Sentinels are checked with [Is] through any amount of wrapping:
//
//	if errors.Is(err, errors.ErrAnchorNotFound) {
//	    // the manifest is missing the expected structure
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): command completed successfully
//   - ExitUser (1): missing inputs, bad configuration, policy violations
//   - ExitSystem (2): I/O and other system failures
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and suggestion.
// [ExitCode] resolves the code for any error: an ExitError anywhere in the
// chain wins, known user-facing sentinels map to ExitUser, and everything
// else is ExitSystem.
package errors
