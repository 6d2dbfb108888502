// Package pg is the PostgreSQL ledger.Store built on bun.
package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

// Store implements ledger.Store on PostgreSQL
type Store struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the ledger store
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// RunInTx runs fn in a serializable transaction. The state row is locked on
// first load so concurrent writers queue behind each other.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &pgTx{db: tx})
	})
}

// View runs fn in a read-only transaction.
func (s *Store) View(ctx context.Context, fn func(ctx context.Context, tx ledger.Tx) error) error {
	return s.db.RunInTx(ctx, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, &pgTx{db: tx, readOnly: true})
	})
}

type pgTx struct {
	db       bun.IDB
	readOnly bool
}

func (t *pgTx) LoadState(ctx context.Context) (*ledger.State, error) {
	row := new(LedgerStateDao)
	q := t.db.NewSelect().Model(row).Where("id = ?", stateRowID)
	if !t.readOnly {
		q = q.For("UPDATE")
	}
	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrNotDeployed
		}
		return nil, fmt.Errorf("failed to load ledger state: %w", err)
	}

	var relayers []RelayerDao
	if err := t.db.NewSelect().Model(&relayers).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load relayers: %w", err)
	}
	var chains []SupportedChainDao
	if err := t.db.NewSelect().Model(&chains).Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to load supported chains: %w", err)
	}

	ids := make([]common.Address, len(relayers))
	for i := range relayers {
		ids[i] = common.HexToAddress(relayers[i].Address)
	}
	chainIDs := make([]uint64, len(chains))
	for i := range chains {
		chainIDs[i] = uint64(chains[i].ChainID)
	}
	fees, err := ledger.NewFeeCalculator(uint64(row.FeeRate))
	if err != nil {
		return nil, fmt.Errorf("stored fee rate: %w", err)
	}

	return &ledger.State{
		Access:   ledger.NewAccessControl(common.HexToAddress(row.Administrator), ids...),
		Gate:     ledger.NewPauseGate(row.Paused),
		Chains:   ledger.NewChainRegistry(chainIDs...),
		Fees:     fees,
		Sequence: uint64(row.Sequence),
	}, nil
}

// SaveState upserts the state row and rewrites the relayer and chain sets.
func (t *pgTx) SaveState(ctx context.Context, state *ledger.State) error {
	row := &LedgerStateDao{
		ID:            stateRowID,
		Administrator: state.Access.Administrator().Hex(),
		FeeRate:       int64(state.Fees.Rate()),
		Paused:        state.Gate.Paused(),
		Sequence:      int64(state.Sequence),
		UpdatedAt:     time.Now().UTC(),
	}
	_, err := t.db.NewInsert().
		Model(row).
		On("CONFLICT (id) DO UPDATE").
		Set("administrator = EXCLUDED.administrator").
		Set("fee_rate = EXCLUDED.fee_rate").
		Set("paused = EXCLUDED.paused").
		Set("sequence = EXCLUDED.sequence").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save ledger state: %w", err)
	}

	if _, err := t.db.NewDelete().Model((*RelayerDao)(nil)).Where("1=1").Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear relayers: %w", err)
	}
	if relayers := state.Access.Relayers(); len(relayers) > 0 {
		daos := make([]RelayerDao, len(relayers))
		for i, r := range relayers {
			daos[i] = RelayerDao{Address: r.Hex()}
		}
		if _, err := t.db.NewInsert().Model(&daos).Exec(ctx); err != nil {
			return fmt.Errorf("failed to save relayers: %w", err)
		}
	}

	if _, err := t.db.NewDelete().Model((*SupportedChainDao)(nil)).Where("1=1").Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear supported chains: %w", err)
	}
	if chains := state.Chains.Chains(); len(chains) > 0 {
		daos := make([]SupportedChainDao, len(chains))
		for i, c := range chains {
			daos[i] = SupportedChainDao{ChainID: int64(c)}
		}
		if _, err := t.db.NewInsert().Model(&daos).Exec(ctx); err != nil {
			return fmt.Errorf("failed to save supported chains: %w", err)
		}
	}
	return nil
}

func (t *pgTx) GetTransfer(ctx context.Context, id bridge.TransferID) (*bridge.Transfer, error) {
	dao := new(TransferDao)
	err := t.db.NewSelect().Model(dao).Where("id = ?", id.Hex()).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrTransferNotFound
		}
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}
	return toTransfer(dao), nil
}

func (t *pgTx) InsertTransfer(ctx context.Context, rec *bridge.Transfer) error {
	if _, err := t.db.NewInsert().Model(toTransferDao(rec)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert transfer: %w", err)
	}
	return nil
}

func (t *pgTx) UpdateTransferStatus(ctx context.Context, id bridge.TransferID, status bridge.Status, at time.Time) error {
	res, err := t.db.NewUpdate().
		Model((*TransferDao)(nil)).
		Set("status = ?", string(status)).
		Set("updated_at = ?", at).
		Where("id = ?", id.Hex()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update transfer status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrTransferNotFound
	}
	return nil
}

func (t *pgTx) SetSettlementTx(ctx context.Context, id bridge.TransferID, hash common.Hash) error {
	res, err := t.db.NewUpdate().
		Model((*TransferDao)(nil)).
		Set("settlement_tx = ?", hashString(hash)).
		Where("id = ?", id.Hex()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set settlement tx: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrTransferNotFound
	}
	return nil
}

// ConsumeDepositProof expects the caller to hold the state row lock taken by LoadState.
func (t *pgTx) ConsumeDepositProof(ctx context.Context, hash common.Hash, id bridge.TransferID) error {
	exists, err := t.db.NewSelect().
		Model((*DepositProofDao)(nil)).
		Where("tx_hash = ?", hash.Hex()).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check deposit proof: %w", err)
	}
	if exists {
		return ledger.ErrDepositProofReused
	}
	_, err = t.db.NewInsert().
		Model(&DepositProofDao{TxHash: hash.Hex(), TransferID: id.Hex(), ConsumedAt: time.Now().UTC()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume deposit proof: %w", err)
	}
	return nil
}

func (t *pgTx) ListTransfers(ctx context.Context, filter ledger.TransferFilter) ([]*bridge.Transfer, error) {
	var daos []TransferDao
	q := t.db.NewSelect().Model(&daos).Order("sequence DESC")
	if filter.Depositor != nil {
		q = q.Where("depositor = ?", filter.Depositor.Hex())
	}
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	out := make([]*bridge.Transfer, len(daos))
	for i := range daos {
		out[i] = toTransfer(&daos[i])
	}
	return out, nil
}

func (t *pgTx) LockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error) {
	dao := new(LockedBalanceDao)
	err := t.db.NewSelect().
		Model(dao).
		Where("depositor = ?", depositor.Hex()).
		Where("asset = ?", asset.Hex()).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return new(big.Int), nil
		}
		return nil, fmt.Errorf("failed to get locked balance: %w", err)
	}
	return toBigInt(dao.Amount), nil
}

func (t *pgTx) SetLockedBalance(ctx context.Context, depositor, asset common.Address, amount *big.Int) error {
	_, err := t.db.NewInsert().
		Model(&LockedBalanceDao{
			Depositor: depositor.Hex(),
			Asset:     asset.Hex(),
			Amount:    toDecimal(amount),
		}).
		On("CONFLICT (depositor, asset) DO UPDATE").
		Set("amount = EXCLUDED.amount").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set locked balance: %w", err)
	}
	return nil
}

func (t *pgTx) AppendEvents(ctx context.Context, events ...bridge.Event) error {
	if len(events) == 0 {
		return nil
	}
	daos := make([]*EventDao, len(events))
	for i, e := range events {
		daos[i] = toEventDao(e)
	}
	if _, err := t.db.NewInsert().Model(&daos).Exec(ctx); err != nil {
		return fmt.Errorf("failed to append events: %w", err)
	}
	return nil
}

func (t *pgTx) ListEvents(ctx context.Context, limit int) ([]bridge.Event, error) {
	var daos []EventDao
	q := t.db.NewSelect().Model(&daos).Order("position DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	out := make([]bridge.Event, len(daos))
	for i := range daos {
		out[i] = toEvent(&daos[i])
	}
	return out, nil
}
