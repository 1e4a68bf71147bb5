// Package main is the entry point for the shardcfg CLI.
package main

import (
	"os"

	"github.com/thoreinstein/shardcfg/cmd/shardcfg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.PrintError(os.Stderr, err))
	}
}
