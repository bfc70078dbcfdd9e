// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cmd implements the names-cli command tree.
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/namesvm/namesvm/client"
)

const requestTimeout = 30 * time.Second

var (
	uri     string
	signer  string
	verbose bool

	rootCmd = &cobra.Command{
		Use:        "names-cli",
		Short:      "NamesVM CLI",
		SuggestFor: []string{"names-cli", "namescli", "namesctl"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		genesisCmd,
		resolveCmd,
		updateCmd,
		transferCmd,
		balanceCmd,
		activityCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&uri,
		"endpoint",
		"http://127.0.0.1:9698",
		"RPC endpoint for the registry daemon",
	)
	rootCmd.PersistentFlags().StringVar(
		&signer,
		"signer",
		"",
		"hex address submitting mutating operations",
	)
	rootCmd.PersistentFlags().BoolVar(
		&verbose,
		"verbose",
		false,
		"Print verbose information about operations",
	)
}

func Execute() error {
	return rootCmd.Execute()
}

func newClient() client.Client {
	return client.New(uri, requestTimeout)
}
