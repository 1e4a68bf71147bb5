// Package treediff computes the structural difference of two
// configuration trees.
package treediff

import (
	"strings"

	"github.com/thoreinstein/shardcfg/internal/tree"
)

// Diff returns pruned copies of a and b holding only the keys where they
// disagree. Keys with equal values are omitted. When both values are
// mappings the diff recurses; otherwise both raw values are kept, with
// tree.Missing standing in for a key absent on one side. Two empty
// mappings mean a and b are equal.
func Diff(a, b tree.Mapping) (tree.Mapping, tree.Mapping) {
	aOut, bOut := tree.Mapping{}, tree.Mapping{}
	for _, key := range unionKeys(a, b) {
		av, aok := a[key]
		bv, bok := b[key]
		if aok && bok && tree.Equal(av, bv) {
			continue
		}
		am, aIsMap := av.(tree.Mapping)
		bm, bIsMap := bv.(tree.Mapping)
		if aIsMap && bIsMap {
			aSub, bSub := Diff(am, bm)
			if len(aSub) > 0 || len(bSub) > 0 {
				aOut[key] = aSub
				bOut[key] = bSub
			}
			continue
		}
		aOut[key] = valueOrMissing(av, aok)
		bOut[key] = valueOrMissing(bv, bok)
	}
	return aOut, bOut
}

func unionKeys(a, b tree.Mapping) []string {
	union := make(tree.Mapping, len(a)+len(b))
	for k := range a {
		union[k] = nil
	}
	for k := range b {
		union[k] = nil
	}
	return union.Keys()
}

func valueOrMissing(n tree.Node, ok bool) tree.Node {
	if !ok {
		return tree.Missing{}
	}
	return n
}

// Change is one divergent leaf of a diff.
type Change struct {
	Path []string
	Old  tree.Node
	New  tree.Node
}

// PathString renders the path dotted, e.g. "groups.g1.split".
func (c Change) PathString() string {
	return strings.Join(c.Path, ".")
}

// Changes flattens a diff pair produced by Diff into its divergent leaves,
// ordered by path.
func Changes(oldSide, newSide tree.Mapping) []Change {
	var out []Change
	collect(nil, oldSide, newSide, &out)
	return out
}

func collect(prefix []string, oldSide, newSide tree.Mapping, out *[]Change) {
	for _, key := range unionKeys(oldSide, newSide) {
		path := append(append([]string(nil), prefix...), key)
		ov, oldOK := oldSide[key]
		nv, newOK := newSide[key]
		om, oIsMap := ov.(tree.Mapping)
		nm, nIsMap := nv.(tree.Mapping)
		if oIsMap && nIsMap {
			collect(path, om, nm, out)
			continue
		}
		*out = append(*out, Change{
			Path: path,
			Old:  valueOrMissing(ov, oldOK),
			New:  valueOrMissing(nv, newOK),
		})
	}
}
