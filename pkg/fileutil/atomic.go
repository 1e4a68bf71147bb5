// Package fileutil provides file system utilities for write-once artifacts.
package fileutil

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thoreinstein/shardcfg/internal/errors"
)

// CreateFileExclusive writes data to path only if nothing exists there yet.
// The content is staged in a temp file in the same directory and published
// with a hard link, so readers never observe a partial file and two
// concurrent writers cannot both succeed. When path exists the returned
// error matches fs.ErrExist.
//
// The caller is responsible for ensuring the parent directory exists.
func CreateFileExclusive(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Temp file must live on the same filesystem for the link to work
	tmp, err := os.CreateTemp(dir, ".shardcfg-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "syncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	err = os.Link(tmpName, path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrExist):
		return errors.Wrapf(err, "creating %s", path)
	default:
		// Some filesystems do not support hard links.
		return createExclusiveFallback(path, data, perm)
	}
}

func createExclusiveFallback(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
