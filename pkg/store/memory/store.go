// Package memory is an in-process ledger.Store for tests and single-node
// simulated deployments. Transactions work on a copy that replaces the
// committed data only when the callback succeeds.
package memory

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

var errReadOnly = errors.New("write in read-only transaction")

type balanceKey struct {
	depositor common.Address
	asset     common.Address
}

type data struct {
	state     *ledger.State
	transfers map[bridge.TransferID]*bridge.Transfer
	order     []bridge.TransferID
	balances  map[balanceKey]*big.Int
	proofs    map[common.Hash]bridge.TransferID
	events    []bridge.Event
}

func (d *data) clone() *data {
	c := &data{
		transfers: make(map[bridge.TransferID]*bridge.Transfer, len(d.transfers)),
		order:     append([]bridge.TransferID(nil), d.order...),
		balances:  make(map[balanceKey]*big.Int, len(d.balances)),
		proofs:    make(map[common.Hash]bridge.TransferID, len(d.proofs)),
		events:    append([]bridge.Event(nil), d.events...),
	}
	if d.state != nil {
		c.state = d.state.Clone()
	}
	for id, t := range d.transfers {
		c.transfers[id] = t.Clone()
	}
	for k, v := range d.balances {
		c.balances[k] = new(big.Int).Set(v)
	}
	for k, v := range d.proofs {
		c.proofs[k] = v
	}
	return c
}

// Store implements ledger.Store in memory.
type Store struct {
	mu   sync.RWMutex
	data *data
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: (&data{}).clone()}
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &tx{d: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(ctx, &tx{d: s.data, readOnly: true})
}

type tx struct {
	d        *data
	readOnly bool
}

func (t *tx) LoadState(_ context.Context) (*ledger.State, error) {
	if t.d.state == nil {
		return nil, ledger.ErrNotDeployed
	}
	return t.d.state.Clone(), nil
}

func (t *tx) SaveState(_ context.Context, state *ledger.State) error {
	if t.readOnly {
		return errReadOnly
	}
	t.d.state = state.Clone()
	return nil
}

func (t *tx) GetTransfer(_ context.Context, id bridge.TransferID) (*bridge.Transfer, error) {
	rec, ok := t.d.transfers[id]
	if !ok {
		return nil, ledger.ErrTransferNotFound
	}
	return rec.Clone(), nil
}

func (t *tx) InsertTransfer(_ context.Context, rec *bridge.Transfer) error {
	if t.readOnly {
		return errReadOnly
	}
	if _, ok := t.d.transfers[rec.ID]; ok {
		return ledger.ErrIdentifierCollision
	}
	t.d.transfers[rec.ID] = rec.Clone()
	t.d.order = append(t.d.order, rec.ID)
	return nil
}

func (t *tx) UpdateTransferStatus(_ context.Context, id bridge.TransferID, status bridge.Status, at time.Time) error {
	if t.readOnly {
		return errReadOnly
	}
	rec, ok := t.d.transfers[id]
	if !ok {
		return ledger.ErrTransferNotFound
	}
	rec.Status = status
	rec.UpdatedAt = at
	return nil
}

func (t *tx) SetSettlementTx(_ context.Context, id bridge.TransferID, hash common.Hash) error {
	if t.readOnly {
		return errReadOnly
	}
	rec, ok := t.d.transfers[id]
	if !ok {
		return ledger.ErrTransferNotFound
	}
	rec.SettlementTx = hash
	return nil
}

func (t *tx) ConsumeDepositProof(_ context.Context, hash common.Hash, id bridge.TransferID) error {
	if t.readOnly {
		return errReadOnly
	}
	if _, ok := t.d.proofs[hash]; ok {
		return ledger.ErrDepositProofReused
	}
	t.d.proofs[hash] = id
	return nil
}

func (t *tx) ListTransfers(_ context.Context, filter ledger.TransferFilter) ([]*bridge.Transfer, error) {
	var out []*bridge.Transfer
	for i := len(t.d.order) - 1; i >= 0; i-- {
		rec := t.d.transfers[t.d.order[i]]
		if filter.Depositor != nil && rec.Depositor != *filter.Depositor {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		out = append(out, rec.Clone())
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (t *tx) LockedBalance(_ context.Context, depositor, asset common.Address) (*big.Int, error) {
	v, ok := t.d.balances[balanceKey{depositor, asset}]
	if !ok {
		return new(big.Int), nil
	}
	return new(big.Int).Set(v), nil
}

func (t *tx) SetLockedBalance(_ context.Context, depositor, asset common.Address, amount *big.Int) error {
	if t.readOnly {
		return errReadOnly
	}
	t.d.balances[balanceKey{depositor, asset}] = new(big.Int).Set(amount)
	return nil
}

func (t *tx) AppendEvents(_ context.Context, events ...bridge.Event) error {
	if t.readOnly {
		return errReadOnly
	}
	t.d.events = append(t.d.events, events...)
	return nil
}

func (t *tx) ListEvents(_ context.Context, limit int) ([]bridge.Event, error) {
	if limit <= 0 {
		limit = len(t.d.events)
	}
	out := make([]bridge.Event, 0, min(limit, len(t.d.events)))
	for i := len(t.d.events) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, t.d.events[i])
	}
	return out, nil
}
