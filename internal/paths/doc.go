// Package paths resolves the locations shardcfg reads its own settings
// from.
//
// Settings live in <config home>/shardcfg/config.yaml, where the config
// home follows the XDG base directory conventions of the platform
// (github.com/adrg/xdg). SHARDCFG_CONFIG_DIR overrides the directory.
package paths
