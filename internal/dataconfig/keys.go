package dataconfig

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

// Top-level keys.
const (
	KeyMeta       = "meta"
	KeyGroups     = "groups"
	KeyInputs     = "inputs"
	KeyTransforms = "_transforms"
)

// Keys below meta.
const (
	KeyShard   = "shard"
	KeyTrain   = "train"
	KeyRootDir = "rootdir"
)

// Group and input fields.
const (
	FieldGroup       = "group"
	FieldSize        = "size"
	FieldTransforms  = "transforms"
	FieldSplit       = "split"
	FieldWeight      = "weight"
	FieldShareInputs = "share_inputs"
	FieldInputs      = "_inputs"
	FieldMeta        = "meta"
)

// Group defaults applied during normalization.
const (
	DefaultSplit  = "train"
	DefaultWeight = 1
)

// StoredShardConfigName is the file name of the persisted shard config
// inside meta.shard.rootdir.
const StoredShardConfigName = "stored_shard_config.yaml"

// RequiredKeys are the top-level keys every document must declare.
var RequiredKeys = []string{KeyMeta, KeyGroups, KeyInputs}

// Groups returns the groups mapping of root.
func Groups(root tree.Mapping) (tree.Mapping, error) {
	return section(root, KeyGroups)
}

// Inputs returns the inputs mapping of root.
func Inputs(root tree.Mapping) (tree.Mapping, error) {
	return section(root, KeyInputs)
}

func section(root tree.Mapping, key string) (tree.Mapping, error) {
	node, ok := root[key]
	if !ok {
		return nil, errors.Wrapf(scerrors.ErrInvalidConfig, "missing top-level key %q", key)
	}
	switch v := node.(type) {
	case tree.Mapping:
		return v, nil
	case tree.Scalar:
		// An empty section ("inputs:") decodes as null.
		if v.IsNull() {
			m := tree.Mapping{}
			root[key] = m
			return m, nil
		}
	}
	return nil, errors.Wrapf(scerrors.ErrInvalidConfig, "%q must be a mapping, got %s", key, node.Kind())
}

// RootDir returns meta.shard.rootdir.
func RootDir(root tree.Mapping) (string, error) {
	meta, ok := root.MappingAt(KeyMeta)
	if !ok {
		return "", errors.Wrap(scerrors.ErrInvalidConfig, "meta must be a mapping")
	}
	shard, ok := meta.MappingAt(KeyShard)
	if !ok {
		return "", errors.Wrap(scerrors.ErrInvalidConfig, "meta.shard must be a mapping")
	}
	dir, ok := shard.StringAt(KeyRootDir)
	if !ok || dir == "" {
		return "", errors.Wrap(scerrors.ErrInvalidConfig, "meta.shard.rootdir must be a non-empty string")
	}
	return dir, nil
}

// StoredShardConfigPath returns the location of the persisted shard config
// for root.
func StoredShardConfigPath(root tree.Mapping) (string, error) {
	dir, err := RootDir(root)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, StoredShardConfigName), nil
}
