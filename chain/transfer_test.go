// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestTransfer(t *testing.T) {
	t.Parallel()

	owner := common.HexToAddress("0x0000000000000000000000000000000000000001")
	other := common.HexToAddress("0x0000000000000000000000000000000000000002")
	third := common.HexToAddress("0x0000000000000000000000000000000000000003")

	reg := newTestRegistry(t,
		&CustomAllocation{Address: owner, Balance: 10_000},
		&CustomAllocation{Address: other, Balance: 10_000},
	)

	advance(t, reg, 1)
	if _, err := reg.Update(owner, "abc", []byte("short"), 1); err != nil {
		t.Fatal(err)
	}
	if _, err := reg.Update(owner, "longname123", []byte("long"), 1); err != nil {
		t.Fatal(err)
	}

	tt := []struct {
		height uint64
		sender common.Address
		name   string
		to     common.Address
		err    error
	}{
		{ // transfer requires prior ownership
			height: 2,
			sender: owner,
			name:   "unregistered",
			to:     other,
			err:    ErrNameMissing,
		},
		{ // non-owner cannot transfer
			height: 2,
			sender: other,
			name:   "abc",
			to:     other,
			err:    ErrNotOwner,
		},
		{ // invalid name rejected before lookup
			height: 2,
			sender: owner,
			name:   "x",
			to:     other,
			err:    ErrNameTooShort,
		},
		{ // owner transfer succeeds
			height: 2,
			sender: owner,
			name:   "abc",
			to:     other,
			err:    nil,
		},
		{ // new owner can transfer onward
			height: 3,
			sender: other,
			name:   "abc",
			to:     third,
			err:    nil,
		},
		{ // old owner lost control
			height: 3,
			sender: owner,
			name:   "abc",
			to:     owner,
			err:    ErrNotOwner,
		},
	}
	last := uint64(1)
	for i, tv := range tt {
		if tv.height > last {
			advance(t, reg, tv.height)
			last = tv.height
		}
		ev, err := reg.Transfer(tv.sender, tv.name, tv.to, tv.height)
		if !errors.Is(err, tv.err) {
			t.Fatalf("#%d: Transfer err expected %v, got %v", i, tv.err, err)
		}
		if tv.err != nil {
			continue
		}
		if ev.Typ != EventTransferred {
			t.Fatalf("#%d: event type expected %q, got %q", i, EventTransferred, ev.Typ)
		}
		if ev.OldOwner != tv.sender || ev.Owner != tv.to {
			t.Fatalf("#%d: event owners wrong: %s -> %s", i, ev.OldOwner.Hex(), ev.Owner.Hex())
		}
		info, exists, err := reg.Lookup(tv.name)
		if err != nil {
			t.Fatal(err)
		}
		if !exists {
			t.Fatalf("#%d: name disappeared", i)
		}
		if info.Owner != tv.to {
			t.Fatalf("#%d: owner expected %s, got %s", i, tv.to.Hex(), info.Owner.Hex())
		}
		// Transfers keep the value.
		if !bytes.Equal(info.Value, []byte("short")) {
			t.Fatalf("#%d: transfer changed value to %q", i, info.Value)
		}
	}

	// Transfer refreshes expiry from its height.
	info, _, err := reg.Lookup("abc")
	if err != nil {
		t.Fatal(err)
	}
	if !info.Expires || info.Expiry != 3+10 {
		t.Fatalf("expiry expected %d, got %d", 3+10, info.Expiry)
	}

	// Never-expiring names stay that way across transfer.
	if _, err := reg.Transfer(owner, "longname123", other, 3); err != nil {
		t.Fatal(err)
	}
	info, _, err = reg.Lookup("longname123")
	if err != nil {
		t.Fatal(err)
	}
	if info.Expires {
		t.Fatal("long name should never expire")
	}
	if !bytes.Equal(info.Value, []byte("long")) {
		t.Fatal("transfer changed value")
	}

	// Transfer is charged at the transfer fee, not the registration fee.
	bal, err := reg.Balance(owner)
	if err != nil {
		t.Fatal(err)
	}
	// two registrations at height 1, two transfers
	if bal != 10_000-1000-1000-100-100 {
		t.Fatalf("owner balance expected %d, got %d", 10_000-1000-1000-100-100, bal)
	}
}
