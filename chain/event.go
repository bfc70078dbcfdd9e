// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

const (
	EventRegistered  = "registered"
	EventUpdated     = "updated"
	EventTransferred = "transferred"
	EventExpired     = "expired"
)

// Event describes one applied state change.
type Event struct {
	Typ    string `serialize:"true" json:"type"`
	Height uint64 `serialize:"true" json:"height"`
	Name   string `serialize:"true" json:"name"`

	Owner    common.Address `serialize:"true" json:"owner,omitempty"`
	OldOwner common.Address `serialize:"true" json:"oldOwner,omitempty"`

	// ValueHash references the stored value without repeating it.
	ValueHash common.Hash `serialize:"true" json:"valueHash,omitempty"`

	Expiry  uint64 `serialize:"true" json:"expiry,omitempty"`
	Expires bool   `serialize:"true" json:"expires,omitempty"`
	Fee     uint64 `serialize:"true" json:"fee,omitempty"`
}
