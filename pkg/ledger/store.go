package ledger

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

// State is the ledger configuration mutated through the gated operations.
type State struct {
	Access   *AccessControl
	Gate     *PauseGate
	Chains   *ChainRegistry
	Fees     *FeeCalculator
	Sequence uint64
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	return &State{
		Access:   s.Access.clone(),
		Gate:     NewPauseGate(s.Gate.Paused()),
		Chains:   NewChainRegistry(s.Chains.Chains()...),
		Fees:     &FeeCalculator{rate: s.Fees.Rate()},
		Sequence: s.Sequence,
	}
}

// TransferFilter narrows ListTransfers. Zero fields match everything.
type TransferFilter struct {
	Depositor *common.Address
	Status    bridge.Status
	Limit     int
}

// Store persists ledger state. Every public ledger call runs in exactly one
// RunInTx; an error returned from fn discards all of its writes.
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// View runs fn against a read-only snapshot.
	View(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx is the unit-of-work view of the store.
type Tx interface {
	VaultStore

	// LoadState returns ErrNotDeployed before the first SaveState.
	LoadState(ctx context.Context) (*State, error)
	SaveState(ctx context.Context, state *State) error

	// GetTransfer returns ErrTransferNotFound for an unknown id.
	GetTransfer(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error)
	InsertTransfer(ctx context.Context, t *bridge.Transfer) error
	UpdateTransferStatus(ctx context.Context, id bridge.TransferID, status bridge.Status, at time.Time) error
	SetSettlementTx(ctx context.Context, id bridge.TransferID, hash common.Hash) error
	// ListTransfers returns matching transfers, newest first.
	ListTransfers(ctx context.Context, filter TransferFilter) ([]*bridge.Transfer, error)

	// ConsumeDepositProof records hash as spent by id. It returns
	// ErrDepositProofReused when hash was consumed before.
	ConsumeDepositProof(ctx context.Context, hash common.Hash, id bridge.TransferID) error

	AppendEvents(ctx context.Context, events ...bridge.Event) error
	// ListEvents returns up to limit events, most recent first.
	ListEvents(ctx context.Context, limit int) ([]bridge.Event, error)
}

// Custody moves assets into and out of the bridge's custody.
type Custody interface {
	// Deposit pulls amount into custody and returns once it is held. proof
	// names the chain transaction that carried a native deposit.
	Deposit(ctx context.Context, from, asset common.Address, amount, value *big.Int, proof common.Hash) error
	// Withdraw submits a payout and returns its transaction hash without
	// waiting for it to be mined. A returned error means nothing was sent.
	Withdraw(ctx context.Context, to, asset common.Address, amount *big.Int) (common.Hash, error)
	// Confirm waits for a submitted payout to be mined.
	Confirm(ctx context.Context, hash common.Hash) error
	BalanceOf(ctx context.Context, asset common.Address) (*big.Int, error)
	Receive(ctx context.Context, from common.Address, value *big.Int) error
}

// Publisher receives the events of each committed call.
type Publisher interface {
	Publish(ctx context.Context, events []bridge.Event) error
}
