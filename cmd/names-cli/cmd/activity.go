// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/namesvm/namesvm/chain"
)

var activityCmd = &cobra.Command{
	Use:   "activity [options]",
	Short: "Prints recent registry events",
	RunE:  activityFunc,
}

func activityFunc(cmd *cobra.Command, args []string) error {
	cli := newClient()
	evs, err := cli.Activity()
	if err != nil {
		return err
	}
	for _, ev := range evs {
		switch ev.Typ {
		case chain.EventExpired:
			color.Yellow("%d %s %q", ev.Height, ev.Typ, ev.Name)
		case chain.EventTransferred:
			color.Green("%d %s %q %s -> %s", ev.Height, ev.Typ, ev.Name, ev.OldOwner.Hex(), ev.Owner.Hex())
		default:
			color.Green("%d %s %q owner %s fee %d", ev.Height, ev.Typ, ev.Name, ev.Owner.Hex(), ev.Fee)
		}
	}
	return nil
}
