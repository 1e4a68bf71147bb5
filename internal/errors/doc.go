// Package errors provides error handling conventions for the shardcfg CLI.
//
// This package defines sentinel errors for the failure kinds of the data
// configuration engine, an ExitError type for CLI exit code handling, and
// exit code constants following standard Unix conventions.
//
// # Sentinel Errors
//
// Typed errors raised by the engine report their kind through [errors.Is]:
//
//	if errors.Is(err, shardcfgerrors.ErrConflict) {
//	    // a stored shard config already exists
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid configuration, conflicts, incompatibility)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. [FromError] classifies an arbitrary engine error into an
// ExitError, carrying any hints attached with [WithHint] as the suggestion.
package errors
