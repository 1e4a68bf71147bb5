// Package dataconfig reads and validates data configuration documents.
//
// A data configuration declares named inputs, the groups they belong to,
// and the settings of the shard and train stages:
//
//	meta:
//	  shard:
//	    rootdir: /data/shards
//	  train:
//	    batch_size: 4096
//	groups:
//	  parallel:
//	    transforms: [filter_too_long]
//	    weight: 2
//	  backtrans:
//	    share_inputs: parallel
//	inputs:
//	  europarl:
//	    group: parallel
//	    size: 30
//	  paracrawl:
//	    group: parallel
//	    size: 70
//
// [Read] decodes YAML, JSON and TOML files into a [tree.Mapping] and
// checks that the required top-level keys are present. [Validate] runs the
// full set of structural checks and reports them as a [validator.Result].
package dataconfig
