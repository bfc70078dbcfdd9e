// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ethereum/go-ethereum/common"
)

// NameInfo is everything stored with a registered name. A NameInfo
// exists for a name iff the name is currently registered and has not
// been swept.
type NameInfo struct {
	Value []byte         `serialize:"true" json:"value"`
	Owner common.Address `serialize:"true" json:"owner"`

	Created uint64 `serialize:"true" json:"created"`
	Updated uint64 `serialize:"true" json:"updated"`

	// Expiry is the height at which the name is reclaimed, meaningful
	// only when Expires is true. The name is live strictly below Expiry.
	Expiry  uint64 `serialize:"true" json:"expiry"`
	Expires bool   `serialize:"true" json:"expires"`
}
