// Package pathmatch decides what to do with a position in a configuration
// tree by matching its path against an ordered list of rules.
package pathmatch

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Decision is the outcome of matching a path.
type Decision int

const (
	// Continue recurses into a mapping, or keeps any other node.
	Continue Decision = iota
	// Keep copies the whole subtree verbatim.
	Keep
	// Drop omits the subtree.
	Drop
)

func (d Decision) String() string {
	switch d {
	case Continue:
		return "continue"
	case Keep:
		return "keep"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Segment is one position of a Pattern: either a literal key or a
// wildcard. The zero value is the empty literal.
type Segment struct {
	key      string
	wildcard bool
}

// Key returns a segment matching exactly key.
func Key(key string) Segment { return Segment{key: key} }

// Any returns a segment matching every key, and an absent one.
func Any() Segment { return Segment{wildcard: true} }

// IsWildcard reports whether s matches any key.
func (s Segment) IsWildcard() bool { return s.wildcard }

func (s Segment) String() string {
	if s.wildcard {
		return "*"
	}
	return s.key
}

// matches compares s with the path segment at the same position. present
// is false when the path is shorter than the pattern.
func (s Segment) matches(key string, present bool) bool {
	if s.wildcard {
		return true
	}
	return present && s.key == key
}

// Pattern is a sequence of segments compared against a path from the root.
type Pattern []Segment

// Keys builds a pattern of literal segments.
func Keys(keys ...string) Pattern {
	p := make(Pattern, len(keys))
	for i, k := range keys {
		p[i] = Key(k)
	}
	return p
}

// ParsePattern parses a dotted pattern such as "groups.*.weight".
// A lone "*" segment is a wildcard.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return nil, errors.New("empty pattern")
	}
	parts := strings.Split(s, ".")
	p := make(Pattern, len(parts))
	for i, part := range parts {
		switch part {
		case "":
			return nil, errors.Newf("pattern %q: empty segment at position %d", s, i)
		case "*":
			p[i] = Any()
		default:
			p[i] = Key(part)
		}
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on an invalid pattern.
// It is meant for package-level rule tables.
func MustParsePattern(s string) Pattern {
	p, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pattern) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Matches reports whether p is compatible with path. Both are walked up to
// the longer length. A wildcard accepts any segment, including a missing
// one. A literal needs an identical segment to be present. Path segments
// beyond the end of the pattern are unconstrained.
func (p Pattern) Matches(path []string) bool {
	n := max(len(p), len(path))
	for i := range n {
		if i >= len(p) {
			return true
		}
		var key string
		present := i < len(path)
		if present {
			key = path[i]
		}
		if !p[i].matches(key, present) {
			return false
		}
	}
	return true
}

// Rule pairs a pattern with the decision it produces.
type Rule struct {
	Pattern  Pattern
	Decision Decision
}

func (r Rule) String() string {
	return r.Pattern.String() + " -> " + r.Decision.String()
}

// Match returns the decision of the first rule compatible with path, or
// Continue when none is.
func Match(path []string, rules []Rule) Decision {
	for _, r := range rules {
		if r.Pattern.Matches(path) {
			return r.Decision
		}
	}
	return Continue
}
