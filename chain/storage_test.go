// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ethereum/go-ethereum/common"
)

func TestExpiryIndexConsistency(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	owner := common.HexToAddress("0x0000000000000000000000000000000000000001")

	// foo expires at 10, bar at 10, baz at 20, forever never.
	puts := []struct {
		name       string
		expiry     uint64
		expires    bool
		lastExpiry uint64
	}{
		{name: "foo", expiry: 10, expires: true},
		{name: "bar", expiry: 10, expires: true},
		{name: "baz", expiry: 20, expires: true},
		{name: "forever"},
	}
	for i, tv := range puts {
		info := &NameInfo{Value: []byte("v"), Owner: owner, Expiry: tv.expiry, Expires: tv.expires}
		if err := PutNameInfo(db, []byte(tv.name), info, tv.lastExpiry); err != nil {
			t.Fatalf("#%d: PutNameInfo errored %v", i, err)
		}
	}

	names, err := DumpExpiryBucket(db, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "bar" || names[1] != "foo" {
		t.Fatalf("bucket 10 expected [bar foo], got %v", names)
	}
	names, err = DumpExpiryBucket(db, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "baz" {
		t.Fatalf("bucket 20 expected [baz], got %v", names)
	}

	// Refreshing foo to 15 moves it between buckets.
	info := &NameInfo{Value: []byte("v"), Owner: owner, Expiry: 15, Expires: true}
	if err := PutNameInfo(db, []byte("foo"), info, 10); err != nil {
		t.Fatal(err)
	}
	names, err = DumpExpiryBucket(db, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "bar" {
		t.Fatalf("bucket 10 expected [bar], got %v", names)
	}
	names, err = DumpExpiryBucket(db, 15)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 || names[0] != "foo" {
		t.Fatalf("bucket 15 expected [foo], got %v", names)
	}

	// Sweep (0, 15]: bar at 10 and foo at 15 go, baz and forever stay.
	removed, err := ExpireNext(db, 0, 15)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 2 || removed[0] != "bar" || removed[1] != "foo" {
		t.Fatalf("removed expected [bar foo], got %v", removed)
	}
	for i, tv := range []struct {
		name string
		has  bool
	}{
		{"foo", false},
		{"bar", false},
		{"baz", true},
		{"forever", true},
	} {
		has, err := HasName(db, []byte(tv.name))
		if err != nil {
			t.Fatal(err)
		}
		if has != tv.has {
			t.Fatalf("#%d: %q present=%v, expected %v", i, tv.name, has, tv.has)
		}
	}

	// Swept buckets are empty; the sweep is exact.
	for _, h := range []uint64{10, 15} {
		names, err := DumpExpiryBucket(db, h)
		if err != nil {
			t.Fatal(err)
		}
		if len(names) != 0 {
			t.Fatalf("bucket %d not cleared: %v", h, names)
		}
	}
	names, err = DumpExpiryBucket(db, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 1 {
		t.Fatalf("bucket 20 should survive, got %v", names)
	}
}

func TestExpireNextCorruption(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	// An index entry with no record is a broken invariant, not a
	// rejection.
	if err := db.Put(ExpiryIndexKey(5, []byte("ghost")), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := ExpireNext(db, 0, 10); !errors.Is(err, ErrCorruption) {
		t.Fatalf("err expected %v, got %v", ErrCorruption, err)
	}
}

func TestBalances(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	addr := common.HexToAddress("0x0000000000000000000000000000000000000001")

	bal, err := GetBalance(db, addr)
	if err != nil {
		t.Fatal(err)
	}
	if bal != 0 {
		t.Fatalf("fresh balance expected 0, got %d", bal)
	}

	if _, err := ModifyBalance(db, addr, true, 500); err != nil {
		t.Fatal(err)
	}
	if _, err := ModifyBalance(db, addr, false, 200); err != nil {
		t.Fatal(err)
	}
	bal, err = GetBalance(db, addr)
	if err != nil {
		t.Fatal(err)
	}
	if bal != 300 {
		t.Fatalf("balance expected 300, got %d", bal)
	}

	if _, err := ModifyBalance(db, addr, false, 301); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("err expected %v, got %v", ErrInsufficientFunds, err)
	}
	if _, err := ModifyBalance(db, addr, true, ^uint64(0)); !errors.Is(err, ErrBalanceOverflow) {
		t.Fatalf("err expected %v, got %v", ErrBalanceOverflow, err)
	}
}

func TestLastHeightRoundTrip(t *testing.T) {
	t.Parallel()

	db := memdb.New()
	defer db.Close()

	h, err := GetLastHeight(db)
	if err != nil {
		t.Fatal(err)
	}
	if h != 0 {
		t.Fatalf("fresh last height expected 0, got %d", h)
	}
	if err := SetLastHeight(db, 42); err != nil {
		t.Fatal(err)
	}
	h, err = GetLastHeight(db)
	if err != nil {
		t.Fatal(err)
	}
	if h != 42 {
		t.Fatalf("last height expected 42, got %d", h)
	}
}
