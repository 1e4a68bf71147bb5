package shard

import (
	"github.com/thoreinstein/shardcfg/internal/dataconfig"
	"github.com/thoreinstein/shardcfg/internal/pathmatch"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

// ShardRules select the part of a normalized data config the shard stage
// depends on. More specific rules come first.
var ShardRules = []pathmatch.Rule{
	rule(dataconfig.KeyMeta+"."+dataconfig.KeyShard, pathmatch.Keep),
	rule(dataconfig.KeyMeta+"."+dataconfig.KeyTrain, pathmatch.Drop),
	rule(groupField(dataconfig.FieldTransforms), pathmatch.Drop),
	rule(groupField(dataconfig.FieldWeight), pathmatch.Drop),
	rule(groupField(dataconfig.FieldMeta), pathmatch.Drop),
	rule(dataconfig.KeyInputs, pathmatch.Keep),
	rule(dataconfig.KeyTransforms, pathmatch.Drop),
}

func rule(pattern string, d pathmatch.Decision) pathmatch.Rule {
	return pathmatch.Rule{Pattern: pathmatch.MustParsePattern(pattern), Decision: d}
}

// groupField returns the dotted pattern of field in every group.
func groupField(field string) string {
	return dataconfig.KeyGroups + ".*." + field
}

// Extract returns the shard config of a normalized data config. Groups
// declaring share_inputs are removed: the shard stage only needs the
// groups that own their inputs.
func Extract(normalized tree.Mapping) tree.Mapping {
	cfg := Filter(normalized, ShardRules)
	removeSharedGroups(cfg)
	return cfg
}

func removeSharedGroups(cfg tree.Mapping) {
	groups, ok := cfg.MappingAt(dataconfig.KeyGroups)
	if !ok {
		return
	}
	for _, name := range groups.Keys() {
		if g, ok := groups.MappingAt(name); ok && g.Has(dataconfig.FieldShareInputs) {
			delete(groups, name)
		}
	}
}
