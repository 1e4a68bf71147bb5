package shard

import (
	"io/fs"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/shardcfg/internal/paths"
	"github.com/thoreinstein/shardcfg/pkg/fileutil"
)

// Store is the durable storage the gate persists shard configs to.
type Store interface {
	// MkdirAll creates dir and any missing parents. It is idempotent.
	MkdirAll(dir string) error
	// Exists reports whether something exists at path.
	Exists(path string) (bool, error)
	// Create writes data to path. It must fail with an error matching
	// fs.ErrExist, without touching the existing file, when path exists.
	Create(path string, data []byte) error
	// Read returns the content at path. A missing path yields an error
	// matching fs.ErrNotExist.
	Read(path string) ([]byte, error)
}

// Default permissions of the filesystem store.
const (
	DefaultDirPerm  os.FileMode = 0o755
	DefaultFilePerm os.FileMode = 0o644
)

// FSStore is a Store on the local filesystem.
type FSStore struct {
	DirPerm  os.FileMode
	FilePerm os.FileMode
}

// NewFSStore returns a filesystem store with the default permissions.
func NewFSStore() *FSStore {
	return &FSStore{DirPerm: DefaultDirPerm, FilePerm: DefaultFilePerm}
}

// MkdirAll implements Store.
func (s *FSStore) MkdirAll(dir string) error {
	return paths.EnsureDir(dir, s.DirPerm)
}

// Exists implements Store.
func (s *FSStore) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, errors.Wrapf(err, "checking %s", path)
	}
}

// Create implements Store.
func (s *FSStore) Create(path string, data []byte) error {
	return fileutil.CreateFileExclusive(path, data, s.FilePerm)
}

// Read implements Store.
func (s *FSStore) Read(path string) ([]byte, error) {
	return fileutil.ReadFileWithLimit(path)
}
