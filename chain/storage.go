// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ethereum/go-ethereum/common"

	"github.com/namesvm/namesvm/codec"
)

// 0x0/ (name info)
//   -> [name] => NameInfo
// 0x1/ (expiry index)
//   -> [height]/[name] => nil
// 0x2/ (balance)
//   -> [address] => balance
// 0x3/ (meta)
const (
	infoPrefix    = 0x0
	expiryPrefix  = 0x1
	balancePrefix = 0x2
	metaPrefix    = 0x3

	delimiter = byte(0x2f) // '/'
)

var (
	lastHeight  = []byte("last_height")
	initialized = []byte("initialized")
)

func NameInfoKey(name []byte) []byte {
	return append([]byte{infoPrefix, delimiter}, name...)
}

// ExpiryIndexKey orders entries by height so a bounded range scan
// visits exactly the names expiring in that range.
func ExpiryIndexKey(height uint64, name []byte) []byte {
	b := make([]byte, 2+8+1+len(name))
	b[0] = expiryPrefix
	b[1] = delimiter
	binary.BigEndian.PutUint64(b[2:10], height)
	b[10] = delimiter
	copy(b[11:], name)
	return b
}

func parseExpiryIndexKey(k []byte) (height uint64, name []byte, ok bool) {
	if len(k) < 11 || k[0] != expiryPrefix || k[1] != delimiter || k[10] != delimiter {
		return 0, nil, false
	}
	return binary.BigEndian.Uint64(k[2:10]), k[11:], true
}

func BalanceKey(addr common.Address) []byte {
	return append([]byte{balancePrefix, delimiter}, addr[:]...)
}

func metaKey(k []byte) []byte {
	return append([]byte{metaPrefix, delimiter}, k...)
}

func GetNameInfo(db database.KeyValueReader, name []byte) (*NameInfo, bool, error) {
	k := NameInfoKey(name)
	has, err := db.Has(k)
	if err != nil {
		return nil, false, err
	}
	if !has {
		return nil, false, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return nil, false, err
	}
	var i NameInfo
	if _, err := codec.Unmarshal(v, &i); err != nil {
		return nil, false, err
	}
	return &i, true, nil
}

func HasName(db database.KeyValueReader, name []byte) (bool, error) {
	return db.Has(NameInfoKey(name))
}

// PutNameInfo writes a name record and keeps the expiry index bucket
// membership in sync. lastExpiry is the height of the index entry being
// superseded, or 0 when there is none (expiry heights are strictly
// positive, since durations are nonzero).
func PutNameInfo(db database.Database, name []byte, i *NameInfo, lastExpiry uint64) error {
	if lastExpiry != 0 {
		if err := db.Delete(ExpiryIndexKey(lastExpiry, name)); err != nil {
			return err
		}
	}
	if i.Expires {
		if err := db.Put(ExpiryIndexKey(i.Expiry, name), nil); err != nil {
			return err
		}
	}
	b, err := codec.Marshal(i)
	if err != nil {
		return err
	}
	return db.Put(NameInfoKey(name), b)
}

// ExpireNext removes every name whose expiry falls in (loHeight, hiHeight]
// and returns the removed names. Work is proportional to the number of
// expiring names, not to registry size.
func ExpireNext(db database.Database, loHeight uint64, hiHeight uint64) ([]string, error) {
	// Collect before deleting: mutating under a live iterator is not
	// safe on every backend.
	var names []string
	var keys [][]byte
	start := ExpiryIndexKey(loHeight+1, nil)
	pfx := []byte{expiryPrefix, delimiter}
	cursor := db.NewIteratorWithStartAndPrefix(start, pfx)
	defer cursor.Release()
	for cursor.Next() {
		h, name, ok := parseExpiryIndexKey(cursor.Key())
		if !ok {
			return nil, ErrCorruption
		}
		if h > hiHeight {
			break
		}
		i, has, err := GetNameInfo(db, name)
		if err != nil {
			return nil, err
		}
		// Every index entry must point at a live record expiring at
		// exactly this height.
		if !has || !i.Expires || i.Expiry != h {
			return nil, ErrCorruption
		}
		names = append(names, string(name))
		k := make([]byte, len(cursor.Key()))
		copy(k, cursor.Key())
		keys = append(keys, k)
	}
	if err := cursor.Error(); err != nil {
		return nil, err
	}
	for i, name := range names {
		if err := db.Delete(NameInfoKey([]byte(name))); err != nil {
			return nil, err
		}
		if err := db.Delete(keys[i]); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func GetBalance(db database.KeyValueReader, addr common.Address) (uint64, error) {
	k := BalanceKey(addr)
	has, err := db.Has(k)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func ModifyBalance(db database.KeyValueReaderWriter, addr common.Address, add bool, change uint64) (uint64, error) {
	bal, err := GetBalance(db, addr)
	if err != nil {
		return 0, err
	}
	var n uint64
	if add {
		n = bal + change
		if n < bal {
			return 0, ErrBalanceOverflow
		}
	} else {
		if bal < change {
			return 0, ErrInsufficientFunds
		}
		n = bal - change
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return n, db.Put(BalanceKey(addr), b)
}

func GetLastHeight(db database.KeyValueReader) (uint64, error) {
	k := metaKey(lastHeight)
	has, err := db.Has(k)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, nil
	}
	v, err := db.Get(k)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

func SetLastHeight(db database.KeyValueWriter, height uint64) error {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, height)
	return db.Put(metaKey(lastHeight), b)
}

func IsInitialized(db database.KeyValueReader) (bool, error) {
	return db.Has(metaKey(initialized))
}

func SetInitialized(db database.KeyValueWriter) error {
	return db.Put(metaKey(initialized), nil)
}

// DumpExpiryBucket lists the names indexed at exactly one height,
// primarily for inspection and tests.
func DumpExpiryBucket(db database.Database, height uint64) ([]string, error) {
	var names []string
	start := ExpiryIndexKey(height, nil)
	pfx := []byte{expiryPrefix, delimiter}
	cursor := db.NewIteratorWithStartAndPrefix(start, pfx)
	defer cursor.Release()
	for cursor.Next() {
		h, name, ok := parseExpiryIndexKey(cursor.Key())
		if !ok {
			return nil, ErrCorruption
		}
		if h != height {
			break
		}
		names = append(names, string(name))
	}
	return names, cursor.Error()
}
