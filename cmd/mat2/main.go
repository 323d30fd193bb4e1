// SPDX-License-Identifier: MIT

// Command mat2 inspects and combines 2x2 real matrices from the command line.
//
// Usage:
//
//	mat2 inspect 1 2 3 4
//	mat2 calc mul 1 2 3 4 5 6 7 8
//	mat2 scalar --left div 2 2 0 0 4
//	mat2 compare -f pair.yaml
//	mat2 eigen 1 0 -1 1 0
//
// Configuration is read from MAT2_FORMAT, MAT2_PROMPT, MAT2_LOG_LEVEL and
// MAT2_PRECISION; flags override the environment.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mat2/internal/cli"
	"github.com/katalvlaran/mat2/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mat2: %v\n", err)
		os.Exit(cli.ExitUsage)
	}

	root := cli.NewRootCommand(cfg, cli.StdStreams())
	os.Exit(cli.Execute(root, os.Args[1:]))
}
