// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package client implements the "namesvm" client SDK.
package client

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/rpc"
	"github.com/ethereum/go-ethereum/common"

	"github.com/namesvm/namesvm/chain"
	"github.com/namesvm/namesvm/service"
)

// Client defines namesvm client operations.
type Client interface {
	// Pings the service.
	Ping() (bool, error)
	// Returns the registry genesis.
	Genesis() (*chain.Genesis, error)
	// Height fetches the height of the last sweep.
	Height() (uint64, error)

	// Resolve returns the live record for a name.
	Resolve(name string) (*chain.NameInfo, bool, error)
	// Balance returns the fee-ledger balance of an account.
	Balance(addr common.Address) (uint64, error)
	// Activity returns recent registry events.
	Activity() ([]*chain.Event, error)

	// Update registers or updates a name.
	Update(signer common.Address, name string, value []byte) (*chain.Event, error)
	// Transfer hands a name to a new owner.
	Transfer(signer common.Address, name string, to common.Address) (*chain.Event, error)
	// CheckUpdate validates without mutating.
	CheckUpdate(signer common.Address, name string, value []byte) (bool, error)
	// CheckTransfer validates without mutating.
	CheckTransfer(signer common.Address, name string, to common.Address) (bool, error)
}

// New creates a new client object.
func New(uri string, reqTimeout time.Duration) Client {
	req := rpc.NewEndpointRequester(
		uri,
		service.PublicEndpoint,
		service.Name,
		reqTimeout,
	)
	return &client{req: req}
}

type client struct {
	req rpc.EndpointRequester
}

func (cli *client) Ping() (bool, error) {
	resp := new(service.PingReply)
	err := cli.req.SendRequest(
		"ping",
		nil,
		resp,
	)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (cli *client) Genesis() (*chain.Genesis, error) {
	resp := new(service.GenesisReply)
	err := cli.req.SendRequest(
		"genesis",
		nil,
		resp,
	)
	return resp.Genesis, err
}

func (cli *client) Height() (uint64, error) {
	resp := new(service.HeightReply)
	if err := cli.req.SendRequest(
		"height",
		nil,
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Height, nil
}

func (cli *client) Resolve(name string) (*chain.NameInfo, bool, error) {
	resp := new(service.ResolveReply)
	if err := cli.req.SendRequest(
		"resolve",
		&service.ResolveArgs{Name: name},
		resp,
	); err != nil {
		return nil, false, err
	}
	return resp.Info, resp.Exists, nil
}

func (cli *client) Balance(addr common.Address) (uint64, error) {
	resp := new(service.BalanceReply)
	if err := cli.req.SendRequest(
		"balance",
		&service.BalanceArgs{Address: addr},
		resp,
	); err != nil {
		return 0, err
	}
	return resp.Balance, nil
}

func (cli *client) Activity() ([]*chain.Event, error) {
	resp := new(service.ActivityReply)
	if err := cli.req.SendRequest(
		"activity",
		nil,
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (cli *client) Update(signer common.Address, name string, value []byte) (*chain.Event, error) {
	resp := new(service.UpdateReply)
	if err := cli.req.SendRequest(
		"update",
		&service.UpdateArgs{Signer: signer, Name: name, Value: value},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Event, nil
}

func (cli *client) Transfer(signer common.Address, name string, to common.Address) (*chain.Event, error) {
	resp := new(service.TransferReply)
	if err := cli.req.SendRequest(
		"transfer",
		&service.TransferArgs{Signer: signer, Name: name, To: to},
		resp,
	); err != nil {
		return nil, err
	}
	return resp.Event, nil
}

func (cli *client) CheckUpdate(signer common.Address, name string, value []byte) (bool, error) {
	resp := new(service.CheckReply)
	if err := cli.req.SendRequest(
		"checkUpdate",
		&service.UpdateArgs{Signer: signer, Name: name, Value: value},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

func (cli *client) CheckTransfer(signer common.Address, name string, to common.Address) (bool, error) {
	resp := new(service.CheckReply)
	if err := cli.req.SendRequest(
		"checkTransfer",
		&service.TransferArgs{Signer: signer, Name: name, To: to},
		resp,
	); err != nil {
		return false, err
	}
	return resp.Valid, nil
}
