// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
)

func TestLedgerCurrency(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")
	c := NewLedgerCurrency()

	ok, err := c.CanWithdraw(db, addr, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("zero withdrawal should always be affordable")
	}
	ok, err = c.CanWithdraw(db, addr, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unfunded account can withdraw")
	}

	if _, err := ModifyBalance(db, addr, true, 100); err != nil {
		t.Fatal(err)
	}
	ok, err = c.CanWithdraw(db, addr, 100)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("exact balance withdrawal rejected")
	}

	if err := c.Withdraw(db, addr, 60); err != nil {
		t.Fatal(err)
	}
	bal, err := GetBalance(db, addr)
	if err != nil {
		t.Fatal(err)
	}
	if bal != 40 {
		t.Fatalf("balance expected 40, got %d", bal)
	}

	if err := c.Withdraw(db, addr, 41); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err expected %v, got %v", ErrInsufficientFunds, err)
	}
}
