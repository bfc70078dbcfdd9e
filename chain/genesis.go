// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

type CustomAllocation struct {
	Address common.Address `serialize:"true" json:"address"`
	Balance uint64         `serialize:"true" json:"balance"`
}

type Genesis struct {
	// MinNameLength is the minimum number of bytes a name must have to
	// be registered. Charset and the upper bound are enforced by parser.
	MinNameLength uint64 `serialize:"true" json:"minNameLength"`

	// MaxValueSize bounds the value stored with a name.
	MaxValueSize uint64 `serialize:"true" json:"maxValueSize"`

	// Fee schedule per operation kind.
	RegistrationFee uint64 `serialize:"true" json:"registrationFee"`
	UpdateFee       uint64 `serialize:"true" json:"updateFee"`
	TransferFee     uint64 `serialize:"true" json:"transferFee"`

	// Names of length <= ShortNameCutoff expire ShortNameExpiry blocks
	// after their last update. Longer names never expire.
	ShortNameCutoff uint64 `serialize:"true" json:"shortNameCutoff"`
	ShortNameExpiry uint64 `serialize:"true" json:"shortNameExpiry"`

	// Treasury receives collected fees. The zero address burns them.
	Treasury common.Address `serialize:"true" json:"treasury"`

	Allocations []*CustomAllocation `serialize:"true" json:"allocations"`
}

func DefaultGenesis() *Genesis {
	return &Genesis{
		MinNameLength: 3,
		MaxValueSize:  1024,

		RegistrationFee: 1000,
		UpdateFee:       100,
		TransferFee:     100,

		ShortNameCutoff: 8,
		ShortNameExpiry: 100_000,
	}
}

// Load funds the genesis allocations. Invoked once, when the registry
// opens an uninitialized database.
func (g *Genesis) Load(db database.KeyValueReaderWriter) error {
	for _, alloc := range g.Allocations {
		if _, err := ModifyBalance(db, alloc.Address, true, alloc.Balance); err != nil {
			return err
		}
	}
	return nil
}
