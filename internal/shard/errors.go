package shard

import (
	"fmt"
	"strings"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/tree"
	"github.com/thoreinstein/shardcfg/internal/treediff"
)

// ConflictError reports an existing stored shard config at Path.
type ConflictError struct {
	Path string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("stored shard config %q already exists, not overwriting", e.Path)
}

// Is reports the error as scerrors.ErrConflict.
func (e *ConflictError) Is(target error) bool { return target == scerrors.ErrConflict }

// IncompatibilityError reports a data config whose shard config differs
// from the stored one. Stored and Current hold only the divergent paths,
// with tree.Missing for keys present on one side only.
type IncompatibilityError struct {
	Path    string
	Stored  tree.Mapping
	Current tree.Mapping
}

func (e *IncompatibilityError) Error() string {
	changes := e.Changes()
	paths := make([]string, len(changes))
	for i, c := range changes {
		paths[i] = c.PathString()
	}
	return fmt.Sprintf("data config not compatible with stored shard config %q: %d difference(s) at %s",
		e.Path, len(changes), strings.Join(paths, ", "))
}

// Is reports the error as scerrors.ErrIncompatible.
func (e *IncompatibilityError) Is(target error) bool { return target == scerrors.ErrIncompatible }

// Changes lists the divergent leaves of the diff.
func (e *IncompatibilityError) Changes() []treediff.Change {
	return treediff.Changes(e.Stored, e.Current)
}
