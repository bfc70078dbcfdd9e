// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"strings"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"

	"github.com/namesvm/namesvm/parser"
)

func TestGenesisPolicy(t *testing.T) {
	t.Parallel()

	p := NewGenesisPolicy(testGenesis())

	tt := []struct {
		name string
		err  error
	}{
		{name: "ab", err: nil},
		{name: "abc", err: nil},
		{name: "a", err: ErrNameTooShort},
		{name: "", err: parser.ErrInvalidName},
		{name: "UPPER", err: parser.ErrInvalidName},
	}
	for i, tv := range tt {
		if err := p.ValidateName(tv.name); !errors.Is(err, tv.err) {
			t.Fatalf("#%d: err expected %v, got %v", i, tv.err, err)
		}
	}

	if err := p.ValidateValue([]byte(strings.Repeat("v", 64))); err != nil {
		t.Fatalf("max-size value rejected: %v", err)
	}
	if err := p.ValidateValue([]byte(strings.Repeat("v", 65))); !errors.Is(err, ErrValueTooBig) {
		t.Fatalf("err expected %v, got %v", ErrValueTooBig, err)
	}
	if err := p.ValidateValue(nil); err != nil {
		t.Fatalf("empty value rejected: %v", err)
	}

	if fee := p.Fee(Registration, "abc"); fee != 1000 {
		t.Fatalf("registration fee expected 1000, got %d", fee)
	}
	if fee := p.Fee(Update, "abc"); fee != 100 {
		t.Fatalf("update fee expected 100, got %d", fee)
	}
	if fee := p.Fee(Transfer, "abc"); fee != 100 {
		t.Fatalf("transfer fee expected 100, got %d", fee)
	}

	// Cutoff 3: short names expire, longer never do.
	if d, expires := p.ExpiryDuration("abc"); !expires || d != 10 {
		t.Fatalf("short name duration expected 10, got %d (%v)", d, expires)
	}
	if _, expires := p.ExpiryDuration("abcd"); expires {
		t.Fatal("long name should never expire")
	}
}

func TestDepositFee(t *testing.T) {
	t.Parallel()

	payer := common.HexToAddress("0x0000000000000000000000000000000000000001")
	treasury := common.HexToAddress("0x00000000000000000000000000000000000000ff")

	// Burn when no treasury is configured.
	db := memdb.New()
	defer db.Close()
	g := testGenesis()
	if err := NewGenesisPolicy(g).DepositFee(db, payer, 1000); err != nil {
		t.Fatal(err)
	}
	bal, err := GetBalance(db, treasury)
	if err != nil {
		t.Fatal(err)
	}
	if bal != 0 {
		t.Fatalf("burned fee reappeared: %d", bal)
	}

	// Deposit when one is.
	g.Treasury = treasury
	if err := NewGenesisPolicy(g).DepositFee(db, payer, 1000); err != nil {
		t.Fatal(err)
	}
	bal, err = GetBalance(db, treasury)
	if err != nil {
		t.Fatal(err)
	}
	if bal != 1000 {
		t.Fatalf("treasury balance expected 1000, got %d", bal)
	}
}
