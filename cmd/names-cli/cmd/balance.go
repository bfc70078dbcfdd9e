// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [options] address",
	Short: "Reads the fee-ledger balance of an account",
	RunE:  balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly 1 argument, got %d", len(args))
	}
	cli := newClient()
	bal, err := cli.Balance(common.HexToAddress(args[0]))
	if err != nil {
		return err
	}
	color.Green("balance %d", bal)
	return nil
}
