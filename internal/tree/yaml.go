package tree

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// ParseYAML decodes a single YAML (or JSON) document into a tree.
func ParseYAML(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing YAML")
	}
	if doc.Kind == 0 || (doc.Kind == yaml.DocumentNode && len(doc.Content) == 0) {
		return nil, errors.New("empty document")
	}
	return FromYAMLNode(&doc)
}

// FromYAMLNode converts a decoded yaml.Node into a tree. Aliases are
// expanded and merge keys (<<) are applied. Duplicate keys are rejected.
func FromYAMLNode(node *yaml.Node) (Node, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return FromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)
	case yaml.SequenceNode:
		s := make(Sequence, 0, len(node.Content))
		for _, child := range node.Content {
			n, err := FromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			s = append(s, n)
		}
		return s, nil
	case yaml.MappingNode:
		return mappingFromYAML(node)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		sc, err := scalarFromAny(v)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		return sc, nil
	}
	return nil, errors.Newf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}

func mappingFromYAML(node *yaml.Node) (Mapping, error) {
	m := make(Mapping, len(node.Content)/2)
	var merged []Mapping
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, errors.Newf("line %d: mapping key must be a scalar", key.Line)
		}
		if key.Tag == mergeTag {
			sources, err := mergeSources(value)
			if err != nil {
				return nil, err
			}
			merged = append(merged, sources...)
			continue
		}
		if _, dup := m[key.Value]; dup {
			return nil, errors.Newf("line %d: duplicate key %q", key.Line, key.Value)
		}
		n, err := FromYAMLNode(value)
		if err != nil {
			return nil, err
		}
		m[key.Value] = n
	}
	// Explicit keys win over merged ones; earlier merge sources win over later ones.
	for _, src := range merged {
		for k, v := range src {
			if _, ok := m[k]; !ok {
				m[k] = v
			}
		}
	}
	return m, nil
}

func mergeSources(value *yaml.Node) ([]Mapping, error) {
	var nodes []*yaml.Node
	if value.Kind == yaml.SequenceNode {
		nodes = value.Content
	} else {
		nodes = []*yaml.Node{value}
	}
	out := make([]Mapping, 0, len(nodes))
	for _, n := range nodes {
		converted, err := FromYAMLNode(n)
		if err != nil {
			return nil, err
		}
		m, ok := converted.(Mapping)
		if !ok {
			return nil, errors.Newf("line %d: merge source must be a mapping", n.Line)
		}
		out = append(out, m)
	}
	return out, nil
}

// MarshalYAML encodes n as a YAML document with two-space indentation and
// sorted mapping keys.
func MarshalYAML(n Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(ToAny(n)); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "marshaling YAML")
	}
	return buf.Bytes(), nil
}
