// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/namesvm/namesvm/parser"
)

type OperationKind byte

const (
	Registration OperationKind = iota
	Update
	Transfer
)

func (k OperationKind) String() string {
	switch k {
	case Registration:
		return "registration"
	case Update:
		return "update"
	case Transfer:
		return "transfer"
	default:
		return "unknown"
	}
}

// Policy is the host-supplied configuration surface. All methods except
// DepositFee must be pure.
type Policy interface {
	ValidateName(name string) error
	ValidateValue(value []byte) error

	// Fee returns the charge for an operation on a name.
	Fee(kind OperationKind, name string) uint64

	// ExpiryDuration returns how many blocks a name stays registered
	// after an update. expires=false means the name never expires.
	ExpiryDuration(name string) (blocks uint64, expires bool)

	// DepositFee takes ownership of a collected fee. Invoked by the
	// executor only, after the fee has been withdrawn from the payer.
	DepositFee(db database.KeyValueReaderWriter, payer common.Address, amount uint64) error
}

var _ Policy = &genesisPolicy{}

// genesisPolicy derives all policy decisions from genesis parameters:
// a flat per-kind fee schedule and a short-names-expire rule.
type genesisPolicy struct {
	g *Genesis
}

func NewGenesisPolicy(g *Genesis) Policy {
	return &genesisPolicy{g: g}
}

func (p *genesisPolicy) ValidateName(name string) error {
	if err := parser.CheckName(name); err != nil {
		return err
	}
	if uint64(len(name)) < p.g.MinNameLength {
		return ErrNameTooShort
	}
	return nil
}

func (p *genesisPolicy) ValidateValue(value []byte) error {
	if uint64(len(value)) > p.g.MaxValueSize {
		return ErrValueTooBig
	}
	return nil
}

func (p *genesisPolicy) Fee(kind OperationKind, name string) uint64 {
	switch kind {
	case Registration:
		return p.g.RegistrationFee
	case Update:
		return p.g.UpdateFee
	default:
		return p.g.TransferFee
	}
}

func (p *genesisPolicy) ExpiryDuration(name string) (uint64, bool) {
	if uint64(len(name)) <= p.g.ShortNameCutoff {
		return p.g.ShortNameExpiry, true
	}
	return 0, false
}

func (p *genesisPolicy) DepositFee(db database.KeyValueReaderWriter, payer common.Address, amount uint64) error {
	if p.g.Treasury == (common.Address{}) {
		// burn
		return nil
	}
	_, err := ModifyBalance(db, p.g.Treasury, true, amount)
	return err
}
