// Package ledger implements the custodial transaction ledger of the bridge:
// transfer records, locked balances and the gated configuration state.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

// Ledger is the transaction ledger. Calls are serialized and each one is a
// single store transaction: on any error nothing it did is kept.
type Ledger struct {
	mu           sync.Mutex
	store        Store
	custody      Custody
	publisher    Publisher
	logger       *zap.Logger
	chainID      uint64
	refundPolicy RefundPolicy
	now          func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPublisher sets the sink for committed events.
func WithPublisher(p Publisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

// WithRefundPolicy selects how cancellation refunds are computed.
func WithRefundPolicy(p RefundPolicy) Option {
	return func(l *Ledger) { l.refundPolicy = p }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// New creates a ledger for the source chain chainID.
func New(chainID uint64, store Store, custody Custody, logger *zap.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		store:        store,
		custody:      custody,
		logger:       logger,
		chainID:      chainID,
		refundPolicy: RefundExact,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	return l
}

// ChainID returns the source chain of the ledger.
func (l *Ledger) ChainID() uint64 { return l.chainID }

// DeployParams seeds the configuration state on first start.
type DeployParams struct {
	Deployer common.Address
	FeeRate  uint64
	Chains   []uint64
}

// Deploy creates the initial state: the deployer becomes administrator and
// the sole relayer. It is a no-op when state already exists.
func (l *Ledger) Deploy(ctx context.Context, p DeployParams) (deployed bool, err error) {
	if p.Deployer == (common.Address{}) {
		return false, ErrInvalidRecipient
	}
	fees, err := NewFeeCalculator(p.FeeRate)
	if err != nil {
		return false, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var events []bridge.Event
	err = l.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		_, err := tx.LoadState(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNotDeployed) {
			return err
		}

		state := &State{
			Access: NewAccessControl(p.Deployer, p.Deployer),
			Gate:   NewPauseGate(false),
			Chains: NewChainRegistry(),
			Fees:   fees,
		}
		now := l.timestamp()

		admin := bridge.NewEvent(bridge.EventAdministrationTransferred, common.Address{})
		admin.Subject = p.Deployer
		relayer := bridge.NewEvent(bridge.EventRelayerAdded, p.Deployer)
		relayer.Subject = p.Deployer
		events = append(events, admin, relayer)

		for _, c := range p.Chains {
			if err := state.Chains.Add(c); err != nil {
				return fmt.Errorf("seed chain %d: %w", c, err)
			}
			e := bridge.NewEvent(bridge.EventChainAdded, p.Deployer)
			e.ChainID = c
			events = append(events, e)
		}
		if p.FeeRate > 0 {
			e := bridge.NewEvent(bridge.EventFeeUpdated, p.Deployer)
			e.FeeRate = p.FeeRate
			events = append(events, e)
		}
		for i := range events {
			events[i].CreatedAt = now
		}

		if err := tx.SaveState(ctx, state); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		deployed = true
		return tx.AppendEvents(ctx, events...)
	})
	if err != nil {
		return false, err
	}
	if deployed {
		l.publish(ctx, events)
	}
	return deployed, nil
}

// call collects the effects of one ledger operation.
type call struct {
	tx      Tx
	state   *State
	vault   *BalanceVault
	now     time.Time
	dirty   bool
	events  []bridge.Event
	effects []func(ctx context.Context) error
	payouts []withdrawal
}

// withdrawal is a custody payout settling transfer id.
type withdrawal struct {
	id     bridge.TransferID
	to     common.Address
	asset  common.Address
	amount *big.Int
	hash   common.Hash
}

func (c *call) emit(e bridge.Event) {
	e.CreatedAt = c.now
	c.events = append(c.events, e)
}

// after schedules a custody movement to run once every ledger write succeeded.
func (c *call) after(fn func(ctx context.Context) error) {
	c.effects = append(c.effects, fn)
}

// payout schedules a withdrawal from custody. It runs after every other
// effect; once submitted the call commits.
func (c *call) payout(id bridge.TransferID, to, asset common.Address, amount *big.Int) {
	c.payouts = append(c.payouts, withdrawal{id: id, to: to, asset: asset, amount: amount})
}

// execute runs fn as one atomic unit. Custody deposits are the last blocking
// step inside the store transaction so a failing transfer rolls everything
// back. Payouts are submitted after them and confirmed after commit.
func (l *Ledger) execute(ctx context.Context, op string, fn func(ctx context.Context, c *call) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var (
		events    []bridge.Event
		submitted []withdrawal
		moved     bool
	)
	err := l.store.RunInTx(ctx, func(ctx context.Context, tx Tx) error {
		submitted = nil
		state, err := tx.LoadState(ctx)
		if err != nil {
			return err
		}
		c := &call{tx: tx, state: state, vault: NewBalanceVault(tx), now: l.timestamp()}
		if err := fn(ctx, c); err != nil {
			return err
		}
		if c.dirty {
			if err := tx.SaveState(ctx, c.state); err != nil {
				return fmt.Errorf("save state: %w", err)
			}
		}
		if err := tx.AppendEvents(ctx, c.events...); err != nil {
			return fmt.Errorf("append events: %w", err)
		}
		for _, effect := range c.effects {
			if err := effect(ctx); err != nil {
				return err
			}
			moved = true
		}
		for _, p := range c.payouts {
			hash, err := l.custody.Withdraw(ctx, p.to, p.asset, p.amount)
			if err != nil {
				return err
			}
			moved = true
			p.hash = hash
			submitted = append(submitted, p)
			if err := tx.SetSettlementTx(ctx, p.id, hash); err != nil {
				return fmt.Errorf("record settlement: %w", err)
			}
		}
		events = c.events
		return nil
	})
	if err != nil {
		if moved {
			fields := []zap.Field{zap.String("operation", op), zap.Error(err)}
			for _, p := range submitted {
				fields = append(fields, zap.Stringer("transfer_id", p.id), zap.Stringer("settlement_tx", p.hash))
			}
			l.logger.Error("custody moved but ledger commit failed", fields...)
		}
		return err
	}

	l.publish(ctx, events)
	for _, p := range submitted {
		l.confirm(ctx, op, p)
	}
	return nil
}

// confirm waits for a committed payout and reports one that is not mined in
// time. The record keeps its settlement hash either way.
func (l *Ledger) confirm(ctx context.Context, op string, p withdrawal) {
	err := l.custody.Confirm(context.WithoutCancel(ctx), p.hash)
	if err != nil {
		l.logger.Error("settlement not confirmed",
			zap.String("operation", op),
			zap.Stringer("transfer_id", p.id),
			zap.Stringer("settlement_tx", p.hash),
			zap.Stringer("to", p.to),
			zap.Stringer("amount", p.amount),
			zap.Error(err),
		)
		return
	}
	l.logger.Debug("settlement confirmed",
		zap.Stringer("transfer_id", p.id),
		zap.Stringer("settlement_tx", p.hash))
}

func (l *Ledger) view(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	return l.store.View(ctx, fn)
}

func (l *Ledger) publish(ctx context.Context, events []bridge.Event) {
	if l.publisher == nil || len(events) == 0 {
		return
	}
	if err := l.publisher.Publish(ctx, events); err != nil {
		l.logger.Warn("failed to publish ledger events", zap.Int("count", len(events)), zap.Error(err))
	}
}

// timestamp truncates to the precision the stores keep.
func (l *Ledger) timestamp() time.Time {
	return l.now().UTC().Truncate(time.Microsecond)
}
