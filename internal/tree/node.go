package tree

import (
	"math"
	"slices"
	"strconv"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	// KindMapping is a Mapping node.
	KindMapping Kind = iota
	// KindSequence is a Sequence node.
	KindSequence
	// KindScalar is a Scalar node.
	KindScalar
	// KindMissing is the Missing sentinel.
	KindMissing
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindScalar:
		return "scalar"
	case KindMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Node is a configuration tree node. The set of implementations is closed.
type Node interface {
	Kind() Kind
}

// Mapping is a node of string keys.
type Mapping map[string]Node

// Kind implements Node.
func (Mapping) Kind() Kind { return KindMapping }

// Keys returns the keys of m in lexicographic order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Has reports whether key is present in m.
func (m Mapping) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// MappingAt returns the child at key if it is a Mapping.
func (m Mapping) MappingAt(key string) (Mapping, bool) {
	child, ok := m[key].(Mapping)
	return child, ok
}

// SequenceAt returns the child at key if it is a Sequence.
func (m Mapping) SequenceAt(key string) (Sequence, bool) {
	child, ok := m[key].(Sequence)
	return child, ok
}

// StringAt returns the child at key if it is a string scalar.
func (m Mapping) StringAt(key string) (string, bool) {
	child, ok := m[key].(Scalar)
	if !ok {
		return "", false
	}
	return child.AsString()
}

// Sequence is an ordered list of nodes.
type Sequence []Node

// Kind implements Node.
func (Sequence) Kind() Kind { return KindSequence }

// Strings returns the elements of s as strings. ok is false if any element
// is not a string scalar.
func (s Sequence) Strings() (out []string, ok bool) {
	out = make([]string, 0, len(s))
	for _, n := range s {
		sc, isScalar := n.(Scalar)
		if !isScalar {
			return nil, false
		}
		str, isString := sc.AsString()
		if !isString {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

// StringSequence builds a Sequence of string scalars.
func StringSequence(values ...string) Sequence {
	s := make(Sequence, len(values))
	for i, v := range values {
		s[i] = String(v)
	}
	return s
}

// Scalar is a leaf value. Its value is one of nil, bool, int64, float64 or
// string.
type Scalar struct {
	value any
}

// Kind implements Node.
func (Scalar) Kind() Kind { return KindScalar }

// String builds a string scalar.
func String(s string) Scalar { return Scalar{value: s} }

// Int builds an integer scalar.
func Int(i int64) Scalar { return Scalar{value: i} }

// Float builds a float scalar.
func Float(f float64) Scalar { return Scalar{value: f} }

// Bool builds a boolean scalar.
func Bool(b bool) Scalar { return Scalar{value: b} }

// Null builds a null scalar.
func Null() Scalar { return Scalar{} }

// Value returns the underlying Go value.
func (s Scalar) Value() any { return s.value }

// IsNull reports whether s is null.
func (s Scalar) IsNull() bool { return s.value == nil }

// AsString returns the value if s holds a string.
func (s Scalar) AsString() (string, bool) {
	v, ok := s.value.(string)
	return v, ok
}

// AsInt returns the value if s holds an integer, or a float with no
// fractional part.
func (s Scalar) AsInt() (int64, bool) {
	switch v := s.value.(type) {
	case int64:
		return v, true
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int64(v), true
		}
	}
	return 0, false
}

// AsNumber returns the value as a float64 if s holds an integer or a float.
func (s Scalar) AsNumber() (float64, bool) {
	switch v := s.value.(type) {
	case int64:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// AsBool returns the value if s holds a bool.
func (s Scalar) AsBool() (bool, bool) {
	v, ok := s.value.(bool)
	return v, ok
}

// Text renders s for diagnostics.
func (s Scalar) Text() string {
	switch v := s.value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return "?"
}

// MissingText is how Missing renders in documents and reports.
const MissingText = "**** MISSING ****"

// Missing marks a key absent on one side of a diff. It is distinct from
// every scalar, including the string MissingText.
type Missing struct{}

// Kind implements Node.
func (Missing) Kind() Kind { return KindMissing }
