package tree

// Equal reports whether a and b are structurally identical. Integers and
// floats compare by numeric value; every other scalar compares by type
// and value. Mapping key order is irrelevant, sequence order is not.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Mapping:
		bv, ok := b.(Mapping)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, an := range av {
			bn, ok := bv[k]
			if !ok || !Equal(an, bn) {
				return false
			}
		}
		return true
	case Sequence:
		bv, ok := b.(Sequence)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Scalar:
		bv, ok := b.(Scalar)
		return ok && scalarEqual(av, bv)
	case Missing:
		_, ok := b.(Missing)
		return ok
	}
	return false
}

func scalarEqual(a, b Scalar) bool {
	ai, aIsInt := a.value.(int64)
	bi, bIsInt := b.value.(int64)
	if aIsInt && bIsInt {
		return ai == bi
	}
	an, aIsNum := a.AsNumber()
	bn, bIsNum := b.AsNumber()
	if aIsNum || bIsNum {
		return aIsNum && bIsNum && an == bn
	}
	return a.value == b.value
}

// Clone returns a deep copy of n. Sequences shared between several
// parents in n are copied independently.
func Clone(n Node) Node {
	switch v := n.(type) {
	case Mapping:
		return v.Clone()
	case Sequence:
		out := make(Sequence, len(v))
		for i, child := range v {
			out[i] = Clone(child)
		}
		return out
	default:
		return n
	}
}

// Clone returns a deep copy of m.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	for k, child := range m {
		out[k] = Clone(child)
	}
	return out
}
