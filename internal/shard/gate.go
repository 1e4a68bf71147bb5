package shard

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	"github.com/thoreinstein/shardcfg/internal/logging"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

// Gate persists shard configs write-once and verifies data configs
// against them.
type Gate struct {
	store  Store
	logger *slog.Logger
}

// Option configures a Gate.
type Option func(*Gate)

// WithStore sets the storage backend. The default is an FSStore.
func WithStore(s Store) Option {
	return func(g *Gate) {
		if s != nil {
			g.store = s
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gate) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGate creates a Gate with the given options.
func NewGate(opts ...Option) *Gate {
	g := &Gate{
		store:  NewFSStore(),
		logger: logging.NewDiscard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Outcome tells which branch SaveOrVerify took.
type Outcome int

const (
	// Saved means no shard config was stored and one was written.
	Saved Outcome = iota
	// Verified means the stored shard config matched.
	Verified
)

func (o Outcome) String() string {
	if o == Saved {
		return "saved"
	}
	return "verified"
}

// Save extracts the shard config of normalized and writes it to
// <meta.shard.rootdir>/stored_shard_config.yaml, creating the directory
// when needed. It returns the path written. An existing file is never
// overwritten; Save fails with a *ConflictError instead.
func (g *Gate) Save(normalized tree.Mapping) (string, error) {
	path, err := dataconfig.StoredShardConfigPath(normalized)
	if err != nil {
		return "", err
	}
	if err := g.store.MkdirAll(filepath.Dir(path)); err != nil {
		return "", err
	}

	exists, err := g.store.Exists(path)
	if err != nil {
		return "", err
	}
	if exists {
		return "", conflict(path)
	}

	data, err := tree.MarshalYAML(Extract(normalized))
	if err != nil {
		return "", err
	}
	if err := g.store.Create(path, data); err != nil {
		// Lost a race with another writer since the existence check
		if errors.Is(err, fs.ErrExist) {
			return "", conflict(path)
		}
		return "", errors.Wrap(err, "writing stored shard config")
	}

	g.logger.Info("stored shard config", "path", path, "bytes", len(data))
	return path, nil
}

func conflict(path string) error {
	return errors.WithHintf(&ConflictError{Path: path},
		"remove %s to re-shard, or run verify to check compatibility", path)
}

// SaveOrVerify saves the shard config when none is stored yet, and
// verifies against the stored one otherwise.
func (g *Gate) SaveOrVerify(normalized tree.Mapping) (Outcome, error) {
	path, err := dataconfig.StoredShardConfigPath(normalized)
	if err != nil {
		return Saved, err
	}
	exists, err := g.store.Exists(path)
	if err != nil {
		return Saved, err
	}
	if exists {
		return Verified, g.Verify(normalized)
	}
	_, err = g.Save(normalized)
	return Saved, err
}
