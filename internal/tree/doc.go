// Package tree defines the configuration tree shared by every stage of
// shardcfg.
//
// A tree is built from three node kinds:
//
//   - [Mapping]: string keys to nodes
//   - [Sequence]: ordered nodes
//   - [Scalar]: string, integer, float, bool or null
//
// A fourth kind, [Missing], never appears in a parsed document. It marks
// a key that is absent on one side of a structural diff.
//
// Trees are decoded from YAML with [ParseYAML] or from generic Go values
// (TOML, JSON) with [FromAny], and encoded back through [ToAny] and
// [MarshalYAML]. Functions that consume a tree switch on the concrete
// node type:
//
//	switch n := node.(type) {
//	case tree.Mapping:
//	case tree.Sequence:
//	case tree.Scalar:
//	}
package tree
