// Package main is the entry point for magazinectl, a command line front end
// for the magazine store.
//
// Usage: magazinectl [--driver sqlite|postgres] [--dsn DSN] <command> ...
package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
)

func main() {
	err := rootCmd.Execute()
	closeApp()
	if err != nil {
		if logger != nil {
			logger.Error("command failed", slog.Any("error", err))
		}
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
