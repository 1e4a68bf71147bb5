package errors

import (
	"fmt"
	"strings"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for the failure kinds of the engine.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")

	// ErrReference indicates an input or alias names a group that does not exist.
	ErrReference = crdb.New("unresolved reference")

	// ErrAlias indicates a share_inputs alias points at another alias or forms a cycle.
	ErrAlias = crdb.New("unsupported share_inputs alias")

	// ErrConflict indicates a stored shard config already exists at the target location.
	ErrConflict = crdb.New("stored shard config already exists")

	// ErrIncompatible indicates the data config no longer matches the stored shard config.
	ErrIncompatible = crdb.New("data config not compatible with stored shard config")

	// ErrFormat indicates a document could not be parsed into a configuration tree.
	ErrFormat = crdb.New("malformed configuration document")
)

// userErrors are the sentinels classified as ExitUser by FromError.
var userErrors = []error{
	ErrNotFound,
	ErrInvalidConfig,
	ErrReference,
	ErrAlias,
	ErrConflict,
	ErrIncompatible,
	ErrFormat,
}

// Thin re-exports so callers need a single errors import.
var (
	New      = crdb.New
	Newf     = crdb.Newf
	Wrap     = crdb.Wrap
	Wrapf    = crdb.Wrapf
	WithHint = crdb.WithHint
	Is       = crdb.Is
	As       = crdb.As
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError creates an ExitError with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Run: shardcfg config list",
	}
}

// FromError classifies err into an ExitError. Errors that already are
// ExitErrors are returned as-is. Errors matching one of the engine
// sentinels map to ExitUser, everything else to ExitSystem. Hints attached
// anywhere in the chain become the suggestion.
func FromError(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr
	}
	code := ExitSystem
	for _, target := range userErrors {
		if crdb.Is(err, target) {
			code = ExitUser
			break
		}
	}
	return &ExitError{
		Err:        err,
		Code:       code,
		Suggestion: strings.Join(crdb.GetAllHints(err), "\n"),
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
