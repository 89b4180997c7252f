// Package main is the main package for the filesize CLI.
package main

import (
	"os"

	"github.com/holonoms/filesize/internal/cli"
)

func main() {
	if err := cli.Execute(cli.NewRootCmd(), os.Args[1:]); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
