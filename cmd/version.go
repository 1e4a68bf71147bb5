// Package cmd holds build metadata of the shardcfg binary.
package cmd

// Set at build time:
//
//	go build -ldflags "-X github.com/thoreinstein/shardcfg/cmd.Version=v1.2.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
