// Package shard maintains the contract between the shard stage and every
// later stage of the data pipeline.
//
// The contract is the subset of a normalized data configuration that
// determines how inputs are sharded. [Extract] projects it out of the
// full tree with [ShardRules]. The first shard run persists it through
// [Gate.Save] to <meta.shard.rootdir>/stored_shard_config.yaml, and every
// later run checks a freshly extracted contract against the stored one
// with [Gate.Verify]:
//
//	gate := shard.NewGate(shard.WithLogger(logger))
//	if _, err := gate.Save(normalized); err != nil {
//	    var conflict *shard.ConflictError
//	    if errors.As(err, &conflict) {
//	        // already sharded into conflict.Path
//	    }
//	}
//
//	if err := gate.Verify(normalized); err != nil {
//	    var incompatible *shard.IncompatibilityError
//	    if errors.As(err, &incompatible) {
//	        // incompatible.Stored and incompatible.Current hold the diff
//	    }
//	}
//
// The stored file is write-once; the gate never overwrites it.
package shard
