// Package normalize derives the implicit fields of a data configuration.
//
// Normalization runs four passes in a fixed order, each depending on the
// fields derived by the previous ones:
//
//  1. group inversion: every group lists its inputs in a sorted _inputs
//  2. share_inputs: an aliasing group takes the _inputs of its target
//  3. sizes: declared sizes become integer percentages of their group
//  4. transforms and defaults: the sorted union of all transforms is
//     stored in _transforms, and groups get split and weight defaults
//
// Normalizing an already normalized tree returns an equal tree.
package normalize

import (
	"math"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

// Normalize returns a normalized copy of raw. raw is not modified.
func Normalize(raw tree.Mapping) (tree.Mapping, error) {
	root := raw.Clone()

	groups, err := groupsOf(root)
	if err != nil {
		return nil, err
	}
	inputs, err := inputsOf(root)
	if err != nil {
		return nil, err
	}

	// Sizes are percentages once a tree went through normalization and
	// must not be rescaled a second time.
	normalized := isNormalized(root, groups, inputs)

	if err := invertGroups(groups, inputs); err != nil {
		return nil, err
	}
	if err := shareInputs(groups); err != nil {
		return nil, err
	}
	if !normalized {
		if err := normalizeSizes(groups, inputs); err != nil {
			return nil, err
		}
	}
	transforms, err := allTransforms(groups)
	if err != nil {
		return nil, err
	}
	root[dataconfig.KeyTransforms] = tree.StringSequence(transforms...)
	applyGroupDefaults(groups)

	return root, nil
}

// groupsOf returns the groups section with every group as a mapping. Null
// groups ("g1:" with no body) become empty mappings.
func groupsOf(root tree.Mapping) (tree.Mapping, error) {
	groups, err := dataconfig.Groups(root)
	if err != nil {
		return nil, err
	}
	for _, name := range groups.Keys() {
		switch v := groups[name].(type) {
		case tree.Mapping:
		case tree.Scalar:
			if !v.IsNull() {
				return nil, errors.Wrapf(scerrors.ErrInvalidConfig, "groups.%s must be a mapping", name)
			}
			groups[name] = tree.Mapping{}
		default:
			return nil, errors.Wrapf(scerrors.ErrInvalidConfig, "groups.%s must be a mapping", name)
		}
	}
	return groups, nil
}

func inputsOf(root tree.Mapping) (tree.Mapping, error) {
	inputs, err := dataconfig.Inputs(root)
	if err != nil {
		return nil, err
	}
	for _, name := range inputs.Keys() {
		if _, ok := inputs.MappingAt(name); !ok {
			return nil, errors.Wrapf(scerrors.ErrInvalidConfig, "inputs.%s must be a mapping", name)
		}
	}
	return inputs, nil
}

// groupOf resolves the owning group of an input.
func groupOf(name string, input, groups tree.Mapping) (string, error) {
	group, ok := input.StringAt(dataconfig.FieldGroup)
	if !ok {
		return "", errors.Wrapf(scerrors.ErrInvalidConfig, "inputs.%s.group is required and must be a string", name)
	}
	if !groups.Has(group) {
		return "", &ReferenceError{Field: "inputs." + name + ".group", Group: group}
	}
	return group, nil
}

// invertGroups rebuilds the _inputs of every group from the inputs section.
func invertGroups(groups, inputs tree.Mapping) error {
	members := make(map[string][]string, len(groups))
	for _, name := range inputs.Keys() {
		input, _ := inputs.MappingAt(name)
		group, err := groupOf(name, input, groups)
		if err != nil {
			return err
		}
		g, _ := groups.MappingAt(group)
		if target, aliased := g.StringAt(dataconfig.FieldShareInputs); aliased {
			return &AliasError{
				Group:  group,
				Target: target,
				Reason: "input " + name + " cannot belong to a group that shares inputs",
			}
		}
		members[group] = append(members[group], name)
	}

	for _, name := range groups.Keys() {
		g, _ := groups.MappingAt(name)
		delete(g, dataconfig.FieldInputs)
		if names, ok := members[name]; ok {
			slices.Sort(names)
			g[dataconfig.FieldInputs] = tree.StringSequence(names...)
		}
	}
	return nil
}

// shareInputs points the _inputs of every aliasing group at the list of
// its target. Only single-hop aliases are supported.
func shareInputs(groups tree.Mapping) error {
	for _, name := range groups.Keys() {
		g, _ := groups.MappingAt(name)
		if !g.Has(dataconfig.FieldShareInputs) {
			continue
		}
		target, ok := g.StringAt(dataconfig.FieldShareInputs)
		if !ok {
			return errors.Wrapf(scerrors.ErrInvalidConfig, "groups.%s.share_inputs must be a string", name)
		}
		if target == name {
			return &AliasError{Group: name, Target: target, Reason: "a group cannot share its own inputs"}
		}
		tg, ok := groups.MappingAt(target)
		if !ok {
			return &ReferenceError{Field: "groups." + name + ".share_inputs", Group: target}
		}
		if next, chained := tg.StringAt(dataconfig.FieldShareInputs); chained {
			return &AliasError{Group: name, Target: target, Reason: "target shares inputs from " + next + "; chained aliases are not supported"}
		}
		shared, ok := tg.SequenceAt(dataconfig.FieldInputs)
		if !ok {
			return &AliasError{Group: name, Target: target, Reason: "target has no inputs"}
		}
		g[dataconfig.FieldInputs] = shared
	}
	return nil
}

// isNormalized reports whether root carries every field normalization
// derives: _transforms equal to the union of the group transforms, split
// and weight on every group, and an integer percentage size on every input.
// A raw document with a stray _transforms fails at least one of these.
func isNormalized(root, groups, inputs tree.Mapping) bool {
	seq, ok := root.SequenceAt(dataconfig.KeyTransforms)
	if !ok {
		return false
	}
	stored, ok := seq.Strings()
	if !ok {
		return false
	}
	union, err := allTransforms(groups)
	if err != nil || !slices.Equal(stored, union) {
		return false
	}

	for _, name := range groups.Keys() {
		g, _ := groups.MappingAt(name)
		if !g.Has(dataconfig.FieldSplit) || !g.Has(dataconfig.FieldWeight) {
			return false
		}
	}
	for _, name := range inputs.Keys() {
		input, _ := inputs.MappingAt(name)
		sc, ok := input[dataconfig.FieldSize].(tree.Scalar)
		if !ok {
			return false
		}
		size, ok := sc.AsInt()
		if !ok || size < 1 || size > 100 {
			return false
		}
	}
	return true
}

// groupSizes accumulates the declared sizes of one group.
type groupSizes struct {
	declaredSum   float64
	declaredCount int
	undeclared    int
}

// normalizeSizes rewrites every input size as an integer share of 100
// within its group. Results are truncated, so a group need not sum to 100.
func normalizeSizes(groups, inputs tree.Mapping) error {
	names := inputs.Keys()
	perGroup := make(map[string]*groupSizes, len(groups))
	owner := make(map[string]string, len(names))

	for _, name := range names {
		input, _ := inputs.MappingAt(name)
		group, err := groupOf(name, input, groups)
		if err != nil {
			return err
		}
		owner[name] = group
		acc, ok := perGroup[group]
		if !ok {
			acc = &groupSizes{}
			perGroup[group] = acc
		}
		if !input.Has(dataconfig.FieldSize) {
			acc.undeclared++
			continue
		}
		size, err := declaredSize(name, input)
		if err != nil {
			return err
		}
		acc.declaredSum += size
		acc.declaredCount++
	}

	for _, name := range names {
		input, _ := inputs.MappingAt(name)
		acc := perGroup[owner[name]]
		if !input.Has(dataconfig.FieldSize) {
			if acc.declaredCount == 0 {
				input[dataconfig.FieldSize] = tree.Int(1)
			} else {
				input[dataconfig.FieldSize] = tree.Int(int64(100 / acc.undeclared))
			}
			continue
		}
		size, _ := declaredSize(name, input)
		input[dataconfig.FieldSize] = tree.Int(int64(math.Floor(100 * size / acc.declaredSum)))
	}
	return nil
}

func declaredSize(name string, input tree.Mapping) (float64, error) {
	sc, ok := input[dataconfig.FieldSize].(tree.Scalar)
	if ok {
		if size, isNum := sc.AsNumber(); isNum && size > 0 {
			return size, nil
		}
	}
	return 0, errors.Wrapf(scerrors.ErrInvalidConfig, "inputs.%s.size must be a positive number", name)
}

// allTransforms returns the sorted, deduplicated union of every group's
// transforms.
func allTransforms(groups tree.Mapping) ([]string, error) {
	seen := make(map[string]struct{})
	for _, name := range groups.Keys() {
		g, _ := groups.MappingAt(name)
		node, ok := g[dataconfig.FieldTransforms]
		if !ok {
			continue
		}
		seq, isSeq := node.(tree.Sequence)
		transforms, allStrings := seq.Strings()
		if !isSeq || !allStrings {
			return nil, errors.Wrapf(scerrors.ErrInvalidConfig, "groups.%s.transforms must be a list of strings", name)
		}
		for _, t := range transforms {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	slices.Sort(out)
	return out, nil
}

func applyGroupDefaults(groups tree.Mapping) {
	for _, name := range groups.Keys() {
		g, _ := groups.MappingAt(name)
		if !g.Has(dataconfig.FieldSplit) {
			g[dataconfig.FieldSplit] = tree.String(dataconfig.DefaultSplit)
		}
		if !g.Has(dataconfig.FieldWeight) {
			g[dataconfig.FieldWeight] = tree.Int(dataconfig.DefaultWeight)
		}
	}
}
