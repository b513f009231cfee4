// Package main provides the entry point for the transitdata CLI.
package main

import (
	"os"

	"github.com/agentstation/transitdata/cmd/transitdata/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx, cancel := app.Context()
	defer cancel()

	// Execute has already reported the failure.
	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		cancel()
		os.Exit(1)
	}
}
