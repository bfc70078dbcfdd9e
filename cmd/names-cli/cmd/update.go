// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [options] name value",
	Short: "Registers a name or updates its value",
	RunE:  updateFunc,
}

func updateFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	if len(signer) == 0 {
		return fmt.Errorf("--signer is required")
	}
	cli := newClient()
	ev, err := cli.Update(common.HexToAddress(signer), args[0], []byte(args[1]))
	if err != nil {
		return err
	}
	color.Green("%s %q at height %d (fee %d)", ev.Typ, ev.Name, ev.Height, ev.Fee)
	if verbose && ev.Expires {
		color.Cyan("expires at height %d", ev.Expiry)
	}
	return nil
}
