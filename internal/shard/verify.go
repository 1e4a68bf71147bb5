package shard

import (
	"io/fs"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/tree"
	"github.com/thoreinstein/shardcfg/internal/treediff"
)

// Load reads the stored shard config belonging to normalized. The
// _inputs of every stored group are sorted, so configs stored before
// _inputs were kept sorted still compare equal.
func (g *Gate) Load(normalized tree.Mapping) (string, tree.Mapping, error) {
	path, err := dataconfig.StoredShardConfigPath(normalized)
	if err != nil {
		return "", nil, err
	}
	data, err := g.store.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil, errors.WithHint(
				errors.Wrapf(scerrors.ErrNotFound, "stored shard config %s", path),
				"run save first to create it")
		}
		return path, nil, errors.Wrapf(err, "reading stored shard config %s", path)
	}
	node, err := tree.ParseYAML(data)
	if err != nil {
		return path, nil, &dataconfig.FormatError{Path: path, Err: err}
	}
	stored, ok := node.(tree.Mapping)
	if !ok {
		return path, nil, &dataconfig.FormatError{Path: path, Err: errors.New("stored shard config must be a mapping")}
	}
	sortStoredInputs(stored)
	return path, stored, nil
}

func sortStoredInputs(stored tree.Mapping) {
	groups, ok := stored.MappingAt(dataconfig.KeyGroups)
	if !ok {
		return
	}
	for _, name := range groups.Keys() {
		g, ok := groups.MappingAt(name)
		if !ok {
			continue
		}
		inputs, ok := g.SequenceAt(dataconfig.FieldInputs)
		if !ok {
			continue
		}
		names, ok := inputs.Strings()
		if !ok {
			continue
		}
		slices.Sort(names)
		g[dataconfig.FieldInputs] = tree.StringSequence(names...)
	}
}

// Verify checks that the shard config of normalized equals the stored one.
// On mismatch it returns an *IncompatibilityError holding the diff.
func (g *Gate) Verify(normalized tree.Mapping) error {
	path, stored, err := g.Load(normalized)
	if err != nil {
		return err
	}
	current := Extract(normalized)
	if tree.Equal(stored, current) {
		g.logger.Info("shard config compatible", "path", path)
		return nil
	}

	oldSide, newSide := treediff.Diff(stored, current)
	incompatible := &IncompatibilityError{Path: path, Stored: oldSide, Current: newSide}
	g.logger.Debug("shard config mismatch", "path", path, "differences", len(incompatible.Changes()))
	return errors.WithHint(incompatible,
		"shards were built from a different data config; restore the old settings or re-shard into a new rootdir")
}
