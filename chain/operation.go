// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Operation is a fully-resolved name operation: everything the executor
// needs without recomputing business rules. It is produced by the
// validation phase and carries a snapshot of the record it was resolved
// against, so the executor can detect drift.
type Operation struct {
	Kind OperationKind `serialize:"true" json:"kind"`
	Name string        `serialize:"true" json:"name"`

	// Value to store. For transfers this is the existing value.
	Value []byte `serialize:"true" json:"value"`

	// Sender pays the fee; Recipient becomes the owner.
	Sender    common.Address `serialize:"true" json:"sender"`
	Recipient common.Address `serialize:"true" json:"recipient"`

	Fee uint64 `serialize:"true" json:"fee"`

	// Expiry the record will carry once applied.
	Expiry  uint64 `serialize:"true" json:"expiry"`
	Expires bool   `serialize:"true" json:"expires"`

	prev *NameInfo
}
