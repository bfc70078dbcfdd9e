// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"
)

// Currency is the external capability used to charge fees. The core
// never implements money beyond this narrow withdrawal surface; both
// calls observe the ledger synchronously.
type Currency interface {
	CanWithdraw(db database.KeyValueReaderWriter, addr common.Address, amount uint64) (bool, error)
	Withdraw(db database.KeyValueReaderWriter, addr common.Address, amount uint64) error
}

var _ Currency = &ledgerCurrency{}

// ledgerCurrency keeps balances in the balance bucket of the registry
// database, so withdrawals join the same atomic batch as name writes.
type ledgerCurrency struct{}

func NewLedgerCurrency() Currency {
	return &ledgerCurrency{}
}

func (c *ledgerCurrency) CanWithdraw(db database.KeyValueReaderWriter, addr common.Address, amount uint64) (bool, error) {
	bal, err := GetBalance(db, addr)
	if err != nil {
		return false, err
	}
	return bal >= amount, nil
}

func (c *ledgerCurrency) Withdraw(db database.KeyValueReaderWriter, addr common.Address, amount uint64) error {
	_, err := ModifyBalance(db, addr, false, amount)
	return err
}
