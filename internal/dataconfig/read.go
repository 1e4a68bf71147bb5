package dataconfig

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/tree"
	"github.com/thoreinstein/shardcfg/pkg/fileutil"
)

// Format identifies the encoding of a data configuration document.
type Format string

const (
	// FormatYAML is YAML 1.2.
	FormatYAML Format = "yaml"
	// FormatJSON is JSON, decoded with the YAML parser.
	FormatJSON Format = "json"
	// FormatTOML is TOML 1.0.
	FormatTOML Format = "toml"
)

// FormatFromPath infers the document format from the file extension.
// Unknown extensions are treated as YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// FormatError reports a document that could not be decoded into a valid
// configuration tree.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed data config: %v", e.Err)
	}
	return fmt.Sprintf("malformed data config %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports the error as scerrors.ErrFormat.
func (e *FormatError) Is(target error) bool { return target == scerrors.ErrFormat }

// Read loads the document at path. The format follows the extension.
func Read(path string) (tree.Mapping, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(scerrors.ErrNotFound, "data config %s", path)
		}
		return nil, errors.Wrapf(err, "reading data config %s", path)
	}
	root, err := Parse(data, FormatFromPath(path))
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			fe.Path = path
		}
		return nil, err
	}
	return root, nil
}

// Parse decodes data in the given format and checks the document shape:
// the root must be a mapping declaring every key in RequiredKeys.
func Parse(data []byte, format Format) (tree.Mapping, error) {
	node, err := decode(data, format)
	if err != nil {
		return nil, &FormatError{Err: err}
	}
	root, ok := node.(tree.Mapping)
	if !ok {
		return nil, &FormatError{Err: errors.Newf("document root must be a mapping, got %s", node.Kind())}
	}
	var missing []string
	for _, key := range RequiredKeys {
		if !root.Has(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, &FormatError{Err: errors.Newf("missing required keys: %s", strings.Join(missing, ", "))}
	}
	return root, nil
}

func decode(data []byte, format Format) (tree.Node, error) {
	switch format {
	case FormatTOML:
		var v map[string]any
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, "parsing TOML")
		}
		return tree.FromAny(v)
	case FormatYAML, FormatJSON:
		return tree.ParseYAML(data)
	default:
		return nil, errors.Newf("unsupported format %q", format)
	}
}
