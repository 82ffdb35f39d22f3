// Package main is the entry point for the tmdb command.
package main

import (
	"fmt"
	"os"

	"github.com/tmdb-cli/tmdb/cmd"
	"github.com/tmdb-cli/tmdb/config"
	"github.com/tmdb-cli/tmdb/log"
)

func main() {
	if err := config.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if err := log.Setup(); err != nil {
		fmt.Fprintln(os.Stderr, "logs:", err)
		os.Exit(1)
	}

	cmd.Execute()
}
