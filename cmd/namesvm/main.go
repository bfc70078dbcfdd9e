// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// "namesvm" runs a standalone name registry daemon: an in-process block
// ticker drives the expiration sweep and a JSON-RPC endpoint exposes
// the registry.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ava-labs/avalanchego/database/memdb"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/namesvm/namesvm/chain"
	"github.com/namesvm/namesvm/service"
	"github.com/namesvm/namesvm/version"
)

func init() {
	log.Root().SetHandler(log.LvlFilterHandler(log.LvlDebug, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	cobra.EnablePrefixMatching = true
}

var rootCmd = &cobra.Command{
	Use:        "namesvm",
	Short:      "NamesVM registry daemon",
	SuggestFor: []string{"namesvm", "namevm", "namesd"},
	RunE:       runFunc,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("listen", ":9698", "HTTP listen address")
	rootCmd.PersistentFlags().Duration("block-interval", time.Second, "interval between block sweeps")
	rootCmd.PersistentFlags().String("genesis-file", "", "JSON genesis override")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("NAMESVM")
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "namesvm failed %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func loadGenesis() (*chain.Genesis, error) {
	g := chain.DefaultGenesis()
	f := viper.GetString("genesis-file")
	if len(f) == 0 {
		return g, nil
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(b, g); err != nil {
		return nil, err
	}
	return g, nil
}

func runFunc(cmd *cobra.Command, args []string) error {
	g, err := loadGenesis()
	if err != nil {
		return err
	}

	db := memdb.New()
	defer db.Close()

	reg, err := chain.New(g, nil, nil, db, log.New("module", "chain"))
	if err != nil {
		return err
	}

	handler, err := service.NewHandler(reg)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle(service.PublicEndpoint, handler)

	listen := viper.GetString("listen")
	srv := &http.Server{Addr: listen, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("serving", "listen", listen, "endpoint", service.PublicEndpoint)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		interval := viper.GetDuration("block-interval")
		t := time.NewTicker(interval)
		defer t.Stop()
		// Resume from the last swept height when the backing store
		// carries prior state.
		height, err := reg.LastHeight()
		if err != nil {
			return err
		}
		for {
			select {
			case <-t.C:
				height++
				evs, err := reg.OnNewBlock(height)
				if err != nil {
					return err
				}
				for _, ev := range evs {
					log.Info("name expired", "name", ev.Name, "height", ev.Height)
				}
			case <-ctx.Done():
				return nil
			}
		}
	})
	eg.Go(func() error {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return eg.Wait()
}
