// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer [options] name to",
	Short: "Hands a name to a new owner",
	RunE:  transferFunc,
}

func transferFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected exactly 2 arguments, got %d", len(args))
	}
	if len(signer) == 0 {
		return fmt.Errorf("--signer is required")
	}
	cli := newClient()
	ev, err := cli.Transfer(common.HexToAddress(signer), args[0], common.HexToAddress(args[1]))
	if err != nil {
		return err
	}
	color.Green("%s %q %s -> %s at height %d (fee %d)",
		ev.Typ, ev.Name, ev.OldOwner.Hex(), ev.Owner.Hex(), ev.Height, ev.Fee)
	return nil
}
