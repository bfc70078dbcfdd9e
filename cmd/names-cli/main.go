// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// "names-cli" implements the namesvm client operation interface.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/namesvm/namesvm/cmd/names-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("names-cli failed: %v", err)
		os.Exit(1)
	}
	os.Exit(0)
}
