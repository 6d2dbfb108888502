package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

// InitiateRequest describes a deposit into the bridge.
type InitiateRequest struct {
	Recipient        common.Address
	Asset            common.Address
	Amount           *big.Int
	DestinationChain uint64
	// Value is the native currency attached to the call. It must equal Amount
	// for the native asset and be zero for tokens.
	Value *big.Int
	// DepositTx is the chain transaction that sent Value to custody. Custody
	// on a live chain requires it for native deposits; each hash is accepted once.
	DepositTx common.Hash
}

// Initiate records a Pending transfer from caller, locks the gross amount and
// pulls it into custody.
func (l *Ledger) Initiate(ctx context.Context, caller common.Address, req InitiateRequest) (bridge.TransferID, error) {
	var id bridge.TransferID
	err := l.execute(ctx, "initiate", func(ctx context.Context, c *call) error {
		if err := c.state.Gate.RequireNotPaused(); err != nil {
			return err
		}
		if req.Recipient == (common.Address{}) {
			return ErrInvalidRecipient
		}
		if req.Amount == nil || req.Amount.Sign() <= 0 {
			return ErrInvalidAmount
		}
		if !c.state.Chains.IsSupported(req.DestinationChain) {
			return ErrChainNotSupported
		}

		fee, net := c.state.Fees.Compute(req.Amount)
		id = bridge.DeriveTransferID(
			caller, req.Recipient, req.Asset, req.Amount,
			l.chainID, req.DestinationChain, c.now, c.state.Sequence,
		)

		_, err := c.tx.GetTransfer(ctx, id)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s", ErrIdentifierCollision, id.Hex())
		case !errors.Is(err, ErrTransferNotFound):
			return err
		}

		record := &bridge.Transfer{
			ID:               id,
			Depositor:        caller,
			Recipient:        req.Recipient,
			Asset:            req.Asset,
			GrossAmount:      new(big.Int).Set(req.Amount),
			Fee:              fee,
			NetAmount:        net,
			FeeRate:          c.state.Fees.Rate(),
			SourceChain:      l.chainID,
			DestinationChain: req.DestinationChain,
			Sequence:         c.state.Sequence,
			Status:           bridge.StatusPending,
			CreatedAt:        c.now,
			UpdatedAt:        c.now,
		}
		if req.Asset == bridge.NativeAsset && req.DepositTx != (common.Hash{}) {
			record.DepositTx = req.DepositTx
		}
		if err := c.tx.InsertTransfer(ctx, record); err != nil {
			return fmt.Errorf("insert transfer: %w", err)
		}
		if record.DepositTx != (common.Hash{}) {
			if err := c.tx.ConsumeDepositProof(ctx, record.DepositTx, id); err != nil {
				return err
			}
		}
		if err := c.vault.Increase(ctx, caller, req.Asset, req.Amount); err != nil {
			return fmt.Errorf("lock balance: %w", err)
		}
		c.state.Sequence++
		c.dirty = true

		e := bridge.NewEvent(bridge.EventBridgeInitiated, caller)
		e.Subject = req.Recipient
		e.TransferID = id
		e.Asset = req.Asset
		e.ChainID = req.DestinationChain
		e.Amount = new(big.Int).Set(net)
		e.FeeRate = record.FeeRate
		c.emit(e)

		amount, value, proof := record.GrossAmount, req.Value, req.DepositTx
		if value == nil {
			value = new(big.Int)
		}
		c.after(func(ctx context.Context) error {
			return l.custody.Deposit(ctx, caller, req.Asset, amount, value, proof)
		})
		return nil
	})
	if err != nil {
		return bridge.TransferID{}, err
	}
	return id, nil
}

// Complete marks a Pending transfer as delivered. Only relayers may call it,
// and nothing moves in custody.
func (l *Ledger) Complete(ctx context.Context, caller common.Address, id bridge.TransferID) error {
	return l.execute(ctx, "complete", func(ctx context.Context, c *call) error {
		if !c.state.Access.IsRelayer(caller) {
			return ErrUnauthorized
		}
		record, err := c.pending(ctx, id)
		if err != nil {
			return err
		}
		if err := c.tx.UpdateTransferStatus(ctx, id, bridge.StatusCompleted, c.now); err != nil {
			return fmt.Errorf("update transfer: %w", err)
		}

		e := bridge.NewEvent(bridge.EventBridgeCompleted, caller)
		e.Subject = record.Recipient
		e.TransferID = id
		e.Asset = record.Asset
		e.ChainID = record.DestinationChain
		e.Amount = new(big.Int).Set(record.NetAmount)
		c.emit(e)
		return nil
	})
}

// Cancel returns a Pending transfer to its depositor. The depositor or the
// administrator may call it; an unknown id has no depositor. Once the refund
// is submitted the cancellation commits, and its settlement hash is kept on
// the record whether or not the payout is confirmed in time.
func (l *Ledger) Cancel(ctx context.Context, caller common.Address, id bridge.TransferID) error {
	return l.execute(ctx, "cancel", func(ctx context.Context, c *call) error {
		record, err := c.tx.GetTransfer(ctx, id)
		if err != nil && !errors.Is(err, ErrTransferNotFound) {
			return err
		}
		isDepositor := record != nil && record.Depositor == caller
		if !isDepositor && !c.state.Access.IsAdministrator(caller) {
			return ErrUnauthorized
		}
		if record == nil || record.Status != bridge.StatusPending {
			return ErrTransactionNotPending
		}

		refund := l.refundPolicy.Refund(record, c.state.Fees.Rate())
		if err := c.vault.Decrease(ctx, record.Depositor, record.Asset, refund); err != nil {
			return err
		}
		if err := c.tx.UpdateTransferStatus(ctx, id, bridge.StatusCancelled, c.now); err != nil {
			return fmt.Errorf("update transfer: %w", err)
		}

		e := bridge.NewEvent(bridge.EventBridgeCancelled, caller)
		e.Subject = record.Depositor
		e.TransferID = id
		e.Asset = record.Asset
		e.ChainID = record.DestinationChain
		e.Amount = refund
		c.emit(e)

		c.payout(id, record.Depositor, record.Asset, refund)
		return nil
	})
}

// ReceiveNative accepts native currency sent without a bridge operation.
// Nothing is recorded; custody simply holds more.
func (l *Ledger) ReceiveNative(ctx context.Context, from common.Address, value *big.Int) error {
	if value == nil || value.Sign() < 0 {
		return ErrInvalidAmount
	}
	return l.custody.Receive(ctx, from, value)
}

// pending loads id and requires it to be Pending. An unknown id is not pending.
func (c *call) pending(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error) {
	record, err := c.tx.GetTransfer(ctx, id)
	if errors.Is(err, ErrTransferNotFound) {
		return nil, ErrTransactionNotPending
	}
	if err != nil {
		return nil, err
	}
	if record.Status != bridge.StatusPending {
		return nil, ErrTransactionNotPending
	}
	return record, nil
}
