package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the per-user settings directory.
const AppName = "shardcfg"

// ConfigDirEnv overrides ConfigDir.
const ConfigDirEnv = "SHARDCFG_CONFIG_DIR"

// ConfigFileName is the settings file inside ConfigDir.
const ConfigFileName = "config.yaml"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the shardcfg settings directory.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the settings file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// EnsureDir creates path and any missing parents. It is idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o700
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
// Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
