// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package service exposes a registry over JSON-RPC.
package service

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"

	"github.com/namesvm/namesvm/chain"
)

const (
	// Name is the JSON-RPC namespace.
	Name = "namesvm"
	// PublicEndpoint is where the handler is mounted.
	PublicEndpoint = "/public"
)

// PublicService wraps a registry for hosts that speak JSON-RPC. Signer
// addresses are taken from the request as-is: authentication happens
// outside the core, per the host contract.
type PublicService struct {
	reg *chain.Registry
}

// NewPublicService wraps a registry without HTTP plumbing, for hosts
// that embed the service directly.
func NewPublicService(reg *chain.Registry) *PublicService {
	return &PublicService{reg: reg}
}

// NewHandler builds the JSON-RPC handler for a registry.
func NewHandler(reg *chain.Registry) (http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{reg: reg}, Name); err != nil {
		return nil, err
	}
	return server, nil
}

// height returns the height operations submitted now execute at: the
// sweep for it has already run.
func (svc *PublicService) height() (uint64, error) {
	return svc.reg.LastHeight()
}

type PingReply struct {
	Success bool `serialize:"true" json:"success"`
}

func (svc *PublicService) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	log.Info("ping")
	reply.Success = true
	return nil
}

type GenesisReply struct {
	Genesis *chain.Genesis `serialize:"true" json:"genesis"`
}

func (svc *PublicService) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) error {
	reply.Genesis = svc.reg.Genesis()
	return nil
}

type UpdateArgs struct {
	Signer common.Address `serialize:"true" json:"signer"`
	Name   string         `serialize:"true" json:"name"`
	Value  []byte         `serialize:"true" json:"value"`
}

type UpdateReply struct {
	Event *chain.Event `serialize:"true" json:"event"`
}

func (svc *PublicService) Update(_ *http.Request, args *UpdateArgs, reply *UpdateReply) error {
	h, err := svc.height()
	if err != nil {
		return err
	}
	ev, err := svc.reg.Update(args.Signer, args.Name, args.Value, h)
	if err != nil {
		return err
	}
	reply.Event = ev
	return nil
}

type TransferArgs struct {
	Signer common.Address `serialize:"true" json:"signer"`
	Name   string         `serialize:"true" json:"name"`
	To     common.Address `serialize:"true" json:"to"`
}

type TransferReply struct {
	Event *chain.Event `serialize:"true" json:"event"`
}

func (svc *PublicService) Transfer(_ *http.Request, args *TransferArgs, reply *TransferReply) error {
	h, err := svc.height()
	if err != nil {
		return err
	}
	ev, err := svc.reg.Transfer(args.Signer, args.Name, args.To, h)
	if err != nil {
		return err
	}
	reply.Event = ev
	return nil
}

type CheckReply struct {
	Valid bool `serialize:"true" json:"valid"`
}

func (svc *PublicService) CheckUpdate(_ *http.Request, args *UpdateArgs, reply *CheckReply) error {
	h, err := svc.height()
	if err != nil {
		return err
	}
	if err := svc.reg.CheckUpdate(args.Signer, args.Name, args.Value, h); err != nil {
		return err
	}
	reply.Valid = true
	return nil
}

func (svc *PublicService) CheckTransfer(_ *http.Request, args *TransferArgs, reply *CheckReply) error {
	h, err := svc.height()
	if err != nil {
		return err
	}
	if err := svc.reg.CheckTransfer(args.Signer, args.Name, args.To, h); err != nil {
		return err
	}
	reply.Valid = true
	return nil
}

type ResolveArgs struct {
	Name string `serialize:"true" json:"name"`
}

type ResolveReply struct {
	Exists bool            `serialize:"true" json:"exists"`
	Info   *chain.NameInfo `serialize:"true" json:"info,omitempty"`
}

func (svc *PublicService) Resolve(_ *http.Request, args *ResolveArgs, reply *ResolveReply) error {
	info, exists, err := svc.reg.Lookup(args.Name)
	if err != nil {
		return err
	}
	reply.Exists = exists
	reply.Info = info
	return nil
}

type BalanceArgs struct {
	Address common.Address `serialize:"true" json:"address"`
}

type BalanceReply struct {
	Balance uint64 `serialize:"true" json:"balance"`
}

func (svc *PublicService) Balance(_ *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	bal, err := svc.reg.Balance(args.Address)
	if err != nil {
		return err
	}
	reply.Balance = bal
	return nil
}

type ActivityReply struct {
	Events []*chain.Event `serialize:"true" json:"events"`
}

func (svc *PublicService) Activity(_ *http.Request, _ *struct{}, reply *ActivityReply) error {
	reply.Events = svc.reg.Activity()
	return nil
}

type HeightReply struct {
	Height uint64 `serialize:"true" json:"height"`
}

func (svc *PublicService) Height(_ *http.Request, _ *struct{}, reply *HeightReply) error {
	h, err := svc.reg.LastHeight()
	if err != nil {
		return err
	}
	reply.Height = h
	return nil
}
