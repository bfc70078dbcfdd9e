// Copyright (C) 2022-2023, NamesVM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chain implements the name state-transition core: a
// deterministic register/update/transfer machine with owner-gated
// mutation, configurable fees, and a height-indexed expiration sweep.
package chain

import (
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/versiondb"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	log "github.com/inconshreveable/log15"
)

const activityCacheSize = 128

// Registry owns the name store and the expiry index exclusively. All
// mutation goes through Update/Transfer/OnNewBlock; all reads through
// Lookup/Balance. Entry points take the current height explicitly, the
// registry holds no clock.
//
// Execution is serialized: operations apply strictly in arrival order,
// which keeps replay deterministic for the surrounding ledger.
type Registry struct {
	mu sync.RWMutex

	g        *Genesis
	policy   Policy
	currency Currency
	db       database.Database
	log      log.Logger

	activity []*Event
}

// New opens a registry over db. Passing nil policy or currency selects
// the genesis-parameterized defaults. Genesis allocations are funded the
// first time an uninitialized database is opened.
func New(g *Genesis, policy Policy, currency Currency, db database.Database, logger log.Logger) (*Registry, error) {
	if policy == nil {
		policy = NewGenesisPolicy(g)
	}
	if currency == nil {
		currency = NewLedgerCurrency()
	}
	if logger == nil {
		logger = log.New("module", "chain")
	}
	r := &Registry{
		g:        g,
		policy:   policy,
		currency: currency,
		db:       db,
		log:      logger,
	}

	inited, err := IsInitialized(db)
	if err != nil {
		return nil, err
	}
	if !inited {
		vdb := versiondb.New(db)
		if err := g.Load(vdb); err != nil {
			return nil, err
		}
		if err := SetInitialized(vdb); err != nil {
			return nil, err
		}
		if err := vdb.Commit(); err != nil {
			return nil, err
		}
		r.log.Info("initialized registry", "allocations", len(g.Allocations))
	}
	return r, nil
}

func (r *Registry) Genesis() *Genesis { return r.g }

// check validates an operation against the current state without
// mutating anything. value is nil for transfers; recipient is the
// sender for updates.
func (r *Registry) check(sender common.Address, name string, value []byte, recipient common.Address, transfer bool, height uint64) (*Operation, error) {
	if err := r.policy.ValidateName(name); err != nil {
		return nil, err
	}
	if !transfer {
		if err := r.policy.ValidateValue(value); err != nil {
			return nil, err
		}
	}

	op := &Operation{
		Name:      name,
		Sender:    sender,
		Recipient: recipient,
	}
	prev, has, err := GetNameInfo(r.db, []byte(name))
	if err != nil {
		return nil, err
	}
	switch {
	case !has && transfer:
		// Transfer requires prior ownership.
		return nil, ErrNameMissing
	case !has:
		// First come, first serve: any sender may register.
		op.Kind = Registration
		op.Value = value
	default:
		// Expired records are removed by the block hook before any
		// operation at that height runs, so this means the host
		// skipped a sweep.
		if prev.Expires && prev.Expiry <= height {
			return nil, ErrNameExpired
		}
		if prev.Owner != sender {
			return nil, ErrNotOwner
		}
		op.prev = prev
		if transfer {
			op.Kind = Transfer
			op.Value = prev.Value
		} else {
			op.Kind = Update
			op.Value = value
		}
	}

	if d, expires := r.policy.ExpiryDuration(name); expires {
		op.Expiry = height + d
		op.Expires = true
	}

	op.Fee = r.policy.Fee(op.Kind, name)
	ok, err := r.currency.CanWithdraw(r.db, sender, op.Fee)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInsufficientFunds
	}
	return op, nil
}

// execute applies a validated operation atomically: fee withdrawal,
// record write, and index maintenance land together or not at all.
func (r *Registry) execute(op *Operation, height uint64) (*Event, error) {
	vdb := versiondb.New(r.db)
	defer vdb.Abort()

	if err := r.currency.Withdraw(vdb, op.Sender, op.Fee); err != nil {
		return nil, err
	}
	if err := r.policy.DepositFee(vdb, op.Sender, op.Fee); err != nil {
		return nil, err
	}

	info := &NameInfo{
		Value:   op.Value,
		Owner:   op.Recipient,
		Created: height,
		Updated: height,
		Expiry:  op.Expiry,
		Expires: op.Expires,
	}
	var lastExpiry uint64
	if op.prev != nil {
		info.Created = op.prev.Created
		if op.prev.Expires {
			lastExpiry = op.prev.Expiry
		}
	}
	if err := PutNameInfo(vdb, []byte(op.Name), info, lastExpiry); err != nil {
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}

	ev := &Event{
		Height:  height,
		Name:    op.Name,
		Owner:   op.Recipient,
		Expiry:  op.Expiry,
		Expires: op.Expires,
		Fee:     op.Fee,
	}
	switch op.Kind {
	case Registration:
		ev.Typ = EventRegistered
		ev.ValueHash = crypto.Keccak256Hash(op.Value)
	case Update:
		ev.Typ = EventUpdated
		ev.ValueHash = crypto.Keccak256Hash(op.Value)
	case Transfer:
		ev.Typ = EventTransferred
		ev.OldOwner = op.prev.Owner
	}
	r.record(ev)
	r.log.Debug("executed operation",
		"kind", op.Kind.String(), "name", op.Name,
		"sender", op.Sender.Hex(), "fee", op.Fee, "height", height,
	)
	return ev, nil
}

// CheckUpdate validates a register-or-update without side effects. Safe
// to call speculatively, or to compose a name operation with unrelated
// atomic effects before committing to Update.
func (r *Registry) CheckUpdate(sender common.Address, name string, value []byte, height uint64) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := r.check(sender, name, value, sender, false, height)
	return err
}

// CheckTransfer validates an ownership transfer without side effects.
func (r *Registry) CheckTransfer(sender common.Address, name string, to common.Address, height uint64) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, err := r.check(sender, name, nil, to, true, height)
	return err
}

// Update registers name to sender if it is unregistered, else sets its
// value. Either way the expiry is refreshed from the current height.
func (r *Registry) Update(sender common.Address, name string, value []byte, height uint64) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-validate against current state so a standalone call cannot
	// drift from an earlier speculative check.
	op, err := r.check(sender, name, value, sender, false, height)
	if err != nil {
		return nil, err
	}
	return r.execute(op, height)
}

// Transfer hands ownership of name to a new owner. The value is kept,
// the expiry is refreshed.
func (r *Registry) Transfer(sender common.Address, name string, to common.Address, height uint64) (*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	op, err := r.check(sender, name, nil, to, true, height)
	if err != nil {
		return nil, err
	}
	return r.execute(op, height)
}

// Lookup returns the live record for name, reflecting post-sweep state.
func (r *Registry) Lookup(name string) (*NameInfo, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return GetNameInfo(r.db, []byte(name))
}

// Balance reads the fee ledger.
func (r *Registry) Balance(addr common.Address) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return GetBalance(r.db, addr)
}

// LastHeight returns the height of the most recent sweep.
func (r *Registry) LastHeight() (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return GetLastHeight(r.db)
}

// OnNewBlock must be invoked exactly once per height, before any
// operation at that height is validated or executed. It removes every
// name expiring in (lastHeight, height] and emits an Expired event per
// removed name.
func (r *Registry) OnNewBlock(height uint64) ([]*Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	last, err := GetLastHeight(r.db)
	if err != nil {
		return nil, err
	}
	if height <= last {
		return nil, ErrInvalidHeight
	}

	vdb := versiondb.New(r.db)
	defer vdb.Abort()

	removed, err := ExpireNext(vdb, last, height)
	if err != nil {
		return nil, err
	}
	if err := SetLastHeight(vdb, height); err != nil {
		return nil, err
	}
	if err := vdb.Commit(); err != nil {
		return nil, err
	}

	events := make([]*Event, 0, len(removed))
	for _, name := range removed {
		ev := &Event{Typ: EventExpired, Height: height, Name: name}
		r.record(ev)
		events = append(events, ev)
	}
	if len(removed) > 0 {
		r.log.Debug("swept expired names", "height", height, "removed", len(removed))
	}
	return events, nil
}

// Activity returns the most recent events, newest last.
func (r *Registry) Activity() []*Event {
	r.mu.RLock()
	defer r.mu.RUnlock()

	evs := make([]*Event, len(r.activity))
	copy(evs, r.activity)
	return evs
}

func (r *Registry) record(ev *Event) {
	r.activity = append(r.activity, ev)
	if len(r.activity) > activityCacheSize {
		r.activity = r.activity[len(r.activity)-activityCacheSize:]
	}
}
