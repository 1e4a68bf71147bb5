package normalize

import (
	"fmt"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
)

// ReferenceError reports a field naming a group that does not exist.
type ReferenceError struct {
	// Field is the dotted path of the referencing field.
	Field string
	// Group is the name that could not be resolved.
	Group string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s references undefined group %q", e.Field, e.Group)
}

// Is reports the error as scerrors.ErrReference.
func (e *ReferenceError) Is(target error) bool { return target == scerrors.ErrReference }

// AliasError reports a share_inputs declaration that cannot be resolved in
// a single hop.
type AliasError struct {
	Group  string
	Target string
	Reason string
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("group %q shares inputs from %q: %s", e.Group, e.Target, e.Reason)
}

// Is reports the error as scerrors.ErrAlias.
func (e *AliasError) Is(target error) bool { return target == scerrors.ErrAlias }
