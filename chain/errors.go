// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
)

var (
	// Rejections (bad but adversarially-possible input)
	ErrNameTooShort      = errors.New("name too short")
	ErrValueTooBig       = errors.New("value too big")
	ErrNotOwner          = errors.New("sender does not own name")
	ErrNameMissing       = errors.New("name missing")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrBalanceOverflow   = errors.New("balance overflow")

	// Host-protocol violations
	ErrInvalidHeight = errors.New("block height not strictly increasing")
	ErrNameExpired   = errors.New("name expired but not swept")

	// Broken invariants
	ErrCorruption = errors.New("expiry index and name store are inconsistent")
)
