package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

// DefaultListLimit bounds listings when the caller gives no limit.
const DefaultListLimit = 100

// Snapshot is a read-only view of the configuration state.
type Snapshot struct {
	ChainID       uint64
	Administrator common.Address
	Relayers      []common.Address
	Chains        []uint64
	FeeRate       uint64
	Paused        bool
	Sequence      uint64
	RefundPolicy  RefundPolicy
}

// GetTransaction returns the record for id, or ErrTransferNotFound.
func (l *Ledger) GetTransaction(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error) {
	var out *bridge.Transfer
	err := l.view(ctx, func(ctx context.Context, tx Tx) error {
		t, err := tx.GetTransfer(ctx, id)
		if err != nil {
			return err
		}
		out = t
		return nil
	})
	return out, err
}

// IsChainSupported reports whether transfers may target chainID.
func (l *Ledger) IsChainSupported(ctx context.Context, chainID uint64) (bool, error) {
	var ok bool
	err := l.view(ctx, func(ctx context.Context, tx Tx) error {
		state, err := tx.LoadState(ctx)
		if err != nil {
			return err
		}
		ok = state.Chains.IsSupported(chainID)
		return nil
	})
	return ok, err
}

// GetLockedBalance returns the gross amount locked by depositor in asset.
func (l *Ledger) GetLockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error) {
	var out *big.Int
	err := l.view(ctx, func(ctx context.Context, tx Tx) error {
		v, err := NewBalanceVault(tx).Locked(ctx, depositor, asset)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	return out, err
}

// GetContractBalance returns what custody holds of asset.
func (l *Ledger) GetContractBalance(ctx context.Context, asset common.Address) (*big.Int, error) {
	return l.custody.BalanceOf(ctx, asset)
}

// Config returns a snapshot of the configuration state.
func (l *Ledger) Config(ctx context.Context) (*Snapshot, error) {
	var out *Snapshot
	err := l.view(ctx, func(ctx context.Context, tx Tx) error {
		state, err := tx.LoadState(ctx)
		if err != nil {
			return err
		}
		out = &Snapshot{
			ChainID:       l.chainID,
			Administrator: state.Access.Administrator(),
			Relayers:      state.Access.Relayers(),
			Chains:        state.Chains.Chains(),
			FeeRate:       state.Fees.Rate(),
			Paused:        state.Gate.Paused(),
			Sequence:      state.Sequence,
			RefundPolicy:  l.refundPolicy,
		}
		return nil
	})
	return out, err
}

// ListTransactions returns transfers matching filter, newest first.
func (l *Ledger) ListTransactions(ctx context.Context, filter TransferFilter) ([]*bridge.Transfer, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	var out []*bridge.Transfer
	err := l.view(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		out, err = tx.ListTransfers(ctx, filter)
		return err
	})
	return out, err
}

// Events returns the audit trail, most recent first.
func (l *Ledger) Events(ctx context.Context, limit int) ([]bridge.Event, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var out []bridge.Event
	err := l.view(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		out, err = tx.ListEvents(ctx, limit)
		return err
	})
	return out, err
}
