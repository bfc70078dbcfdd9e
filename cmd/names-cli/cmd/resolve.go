// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [options] name",
	Short: "Reads the record stored with a name",
	RunE:  resolveFunc,
}

func resolveFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	cli := newClient()
	info, exists, err := cli.Resolve(args[0])
	if err != nil {
		return err
	}
	if !exists {
		color.Yellow("%q is not registered", args[0])
		return nil
	}
	color.Green("owner %s value %q", info.Owner.Hex(), string(info.Value))
	if verbose {
		if info.Expires {
			color.Cyan("created %d updated %d expires at height %d", info.Created, info.Updated, info.Expiry)
		} else {
			color.Cyan("created %d updated %d never expires", info.Created, info.Updated)
		}
	}
	return nil
}
