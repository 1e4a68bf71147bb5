package tree

import (
	"fmt"
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// FromAny converts a generic decoded document (as produced by JSON, TOML
// or YAML decoders targeting any) into a tree.
func FromAny(v any) (Node, error) {
	switch x := v.(type) {
	case Node:
		return x, nil
	case map[string]any:
		m := make(Mapping, len(x))
		for k, child := range x {
			n, err := FromAny(child)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", k)
			}
			m[k] = n
		}
		return m, nil
	case map[any]any:
		m := make(Mapping, len(x))
		for k, child := range x {
			key := fmt.Sprint(k)
			n, err := FromAny(child)
			if err != nil {
				return nil, errors.Wrapf(err, "key %q", key)
			}
			m[key] = n
		}
		return m, nil
	case []any:
		s := make(Sequence, len(x))
		for i, child := range x {
			n, err := FromAny(child)
			if err != nil {
				return nil, errors.Wrapf(err, "index %d", i)
			}
			s[i] = n
		}
		return s, nil
	case []string:
		return StringSequence(x...), nil
	}
	return scalarFromAny(v)
}

func scalarFromAny(v any) (Scalar, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return uintScalar(uint64(x))
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return uintScalar(x)
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		// TOML local dates and times.
		return String(x.String()), nil
	}
	return Scalar{}, errors.Newf("unsupported value of type %T", v)
}

func uintScalar(u uint64) (Scalar, error) {
	if u > math.MaxInt64 {
		return Scalar{}, errors.Newf("integer %d overflows int64", u)
	}
	return Int(int64(u)), nil
}

// ToAny converts n into plain Go values suitable for any encoder.
// Missing renders as MissingText.
func ToAny(n Node) any {
	switch v := n.(type) {
	case Mapping:
		out := make(map[string]any, len(v))
		for k, child := range v {
			out[k] = ToAny(child)
		}
		return out
	case Sequence:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = ToAny(child)
		}
		return out
	case Scalar:
		return v.value
	case Missing:
		return MissingText
	}
	return nil
}
