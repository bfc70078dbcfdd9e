// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var genesisCmd = &cobra.Command{
	Use:   "genesis [options]",
	Short: "Prints the registry genesis",
	RunE:  genesisFunc,
}

func genesisFunc(cmd *cobra.Command, args []string) error {
	cli := newClient()
	g, err := cli.Genesis()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
