package dataconfig

import (
	"github.com/thoreinstein/shardcfg/internal/tree"
	"github.com/thoreinstein/shardcfg/internal/validator"
)

// Validate checks a raw (not yet normalized) document for the problems
// that would make normalization fail or produce a surprising result.
// Errors block normalization; warnings do not.
func Validate(root tree.Mapping) *validator.Result {
	result := &validator.Result{}

	if _, err := RootDir(root); err != nil {
		result.AddError("meta.shard.rootdir", "must be a non-empty string", root[KeyMeta])
	}
	if root.Has(KeyTransforms) {
		result.AddWarning(KeyTransforms, "is derived and will be recomputed", nil)
	}

	groups, err := Groups(root)
	if err != nil {
		result.AddError(KeyGroups, "must be a mapping", nil)
		groups = tree.Mapping{}
	}
	inputs, err := Inputs(root)
	if err != nil {
		result.AddError(KeyInputs, "must be a mapping", nil)
		inputs = tree.Mapping{}
	}

	members := make(map[string]int, len(groups))
	for _, name := range inputs.Keys() {
		validateInput(result, name, inputs[name], groups, members)
	}
	for _, name := range groups.Keys() {
		validateGroup(result, name, groups[name], groups, members)
	}

	return result
}

func validateInput(result *validator.Result, name string, node tree.Node, groups tree.Mapping, members map[string]int) {
	field := KeyInputs + "." + name
	input, ok := node.(tree.Mapping)
	if !ok {
		result.AddError(field, "must be a mapping", nil)
		return
	}

	group, ok := input.StringAt(FieldGroup)
	switch {
	case !ok:
		result.AddError(field+"."+FieldGroup, "is required and must be a string", nil)
	case !groups.Has(group):
		result.AddError(field+"."+FieldGroup, "references an undefined group", group)
	default:
		members[group]++
		if g, ok := groups.MappingAt(group); ok && g.Has(FieldShareInputs) {
			result.AddError(field+"."+FieldGroup, "references a group that shares inputs from another group", group)
		}
	}

	if size, ok := input[FieldSize]; ok {
		if n, isNum := scalarNumber(size); !isNum || n <= 0 {
			result.AddError(field+"."+FieldSize, "must be a positive number", tree.ToAny(size))
		}
	}
}

func validateGroup(result *validator.Result, name string, node tree.Node, groups tree.Mapping, members map[string]int) {
	field := KeyGroups + "." + name
	var group tree.Mapping
	switch v := node.(type) {
	case tree.Mapping:
		group = v
	case tree.Scalar:
		if !v.IsNull() {
			result.AddError(field, "must be a mapping", nil)
			return
		}
		group = tree.Mapping{}
	default:
		result.AddError(field, "must be a mapping", nil)
		return
	}

	if group.Has(FieldInputs) {
		result.AddWarning(field+"."+FieldInputs, "is derived and will be recomputed", nil)
	}
	if t, ok := group[FieldTransforms]; ok {
		seq, isSeq := t.(tree.Sequence)
		if _, allStrings := seq.Strings(); !isSeq || !allStrings {
			result.AddError(field+"."+FieldTransforms, "must be a list of strings", nil)
		}
	}
	if s, ok := group[FieldSplit]; ok {
		if sc, isScalar := s.(tree.Scalar); !isScalar {
			result.AddError(field+"."+FieldSplit, "must be a string", nil)
		} else if _, isString := sc.AsString(); !isString {
			result.AddError(field+"."+FieldSplit, "must be a string", tree.ToAny(s))
		}
	}
	if w, ok := group[FieldWeight]; ok {
		if _, isNum := scalarNumber(w); !isNum {
			result.AddError(field+"."+FieldWeight, "must be a number", tree.ToAny(w))
		}
	}

	if !group.Has(FieldShareInputs) {
		if members[name] == 0 {
			result.AddWarning(field, "has no inputs", nil)
		}
		return
	}

	target, ok := group.StringAt(FieldShareInputs)
	shareField := field + "." + FieldShareInputs
	switch {
	case !ok:
		result.AddError(shareField, "must be a string", nil)
	case target == name:
		result.AddError(shareField, "cannot reference its own group", target)
	case !groups.Has(target):
		result.AddError(shareField, "references an undefined group", target)
	default:
		if tg, ok := groups.MappingAt(target); ok && tg.Has(FieldShareInputs) {
			result.AddError(shareField, "references a group that itself shares inputs", target)
		} else if members[target] == 0 {
			result.AddError(shareField, "references a group without inputs", target)
		}
	}
}

func scalarNumber(n tree.Node) (float64, bool) {
	sc, ok := n.(tree.Scalar)
	if !ok {
		return 0, false
	}
	return sc.AsNumber()
}
