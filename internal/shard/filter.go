package shard

import (
	"github.com/thoreinstein/shardcfg/internal/pathmatch"
	"github.com/thoreinstein/shardcfg/internal/tree"
)

// Filter projects root through rules. Every key is matched with its full
// path from the root: Keep copies the subtree, Drop omits it, and Continue
// recurses into mappings and copies any other node. root is not modified.
func Filter(root tree.Mapping, rules []pathmatch.Rule) tree.Mapping {
	return filterMapping(nil, root, rules)
}

func filterMapping(prefix []string, m tree.Mapping, rules []pathmatch.Rule) tree.Mapping {
	out := make(tree.Mapping, len(m))
	for key, child := range m {
		path := append(prefix[:len(prefix):len(prefix)], key)
		switch pathmatch.Match(path, rules) {
		case pathmatch.Keep:
			out[key] = tree.Clone(child)
		case pathmatch.Drop:
		default:
			if sub, ok := child.(tree.Mapping); ok {
				out[key] = filterMapping(path, sub, rules)
			} else {
				out[key] = tree.Clone(child)
			}
		}
	}
	return out
}
