// Package translate renders configuration trees in the output formats the
// CLI supports.
package translate

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/shardcfg/internal/tree"
)

// Format is an output encoding.
type Format string

// Supported output formats.
const (
	// FormatYAML writes block-style YAML, the default.
	FormatYAML Format = "yaml"
	// FormatJSON writes indented JSON without HTML escaping.
	FormatJSON Format = "json"
	// FormatTOML writes TOML. The root must be a mapping and arrays
	// cannot hold nulls.
	FormatTOML Format = "toml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatYAML, FormatJSON, FormatTOML}

// ParseFormat parses an output format name. The empty string means YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatYAML, nil
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", errors.Newf("unknown output format %q (want yaml, json or toml)", s)
	}
}

// Marshal encodes n in format f.
func Marshal(n tree.Node, f Format) ([]byte, error) {
	switch f {
	case FormatYAML, "":
		return tree.MarshalYAML(n)
	case FormatJSON:
		return marshalJSON(n)
	case FormatTOML:
		return marshalTOML(n)
	default:
		return nil, errors.Newf("unknown output format %q", f)
	}
}

// Write encodes n in format f to w.
func Write(w io.Writer, n tree.Node, f Format) error {
	data, err := Marshal(n, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing output")
}

func marshalJSON(n tree.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree.ToAny(n)); err != nil {
		return nil, errors.Wrap(err, "marshaling json")
	}
	return buf.Bytes(), nil
}

// marshalTOML encodes a mapping as a TOML document. TOML has no null, so
// null mapping entries are omitted; a null inside a list is an error.
func marshalTOML(n tree.Node) ([]byte, error) {
	if _, ok := n.(tree.Mapping); !ok {
		return nil, errors.Newf("toml output needs a mapping at the top level, got %s", n.Kind())
	}
	v, err := tomlValue(n)
	if err != nil {
		return nil, err
	}
	out, err := toml.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml")
	}
	return out, nil
}

func tomlValue(n tree.Node) (any, error) {
	switch v := n.(type) {
	case tree.Mapping:
		out := make(map[string]any, len(v))
		for _, k := range v.Keys() {
			if s, ok := v[k].(tree.Scalar); ok && s.IsNull() {
				continue
			}
			child, err := tomlValue(v[k])
			if err != nil {
				return nil, errors.Wrapf(err, "%s", k)
			}
			out[k] = child
		}
		return out, nil
	case tree.Sequence:
		out := make([]any, len(v))
		for i, child := range v {
			if s, ok := child.(tree.Scalar); ok && s.IsNull() {
				return nil, errors.Newf("null at index %d cannot be represented in toml", i)
			}
			c, err := tomlValue(child)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return tree.ToAny(n), nil
	}
}
