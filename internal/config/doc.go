// Package config manages the settings of the shardcfg tool itself.
//
// Settings are read with Viper from ./config.yaml or
// <config home>/shardcfg/config.yaml, and every key can be overridden by a
// SHARDCFG_ environment variable (SHARDCFG_DATA_CONFIG, ...):
//
//	version: 1
//	data_config: ~/pipelines/en-de/data.yaml
//	diff_format: unified   # tree | unified
//	output_format: yaml    # yaml | json | toml
//
// These settings are unrelated to the data configurations shardcfg
// processes; those are handled by package dataconfig.
//
// Call [Init] once before [Load]. [Load] validates what it read with
// [Validate].
package config
