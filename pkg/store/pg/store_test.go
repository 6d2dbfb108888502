package pg_test

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/custody"
	custodymem "github.com/chainsafe/custody-bridge/pkg/custody/memory"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
	"github.com/chainsafe/custody-bridge/pkg/migrations/ledgerdb"
	"github.com/chainsafe/custody-bridge/pkg/pgutil"
	"github.com/chainsafe/custody-bridge/pkg/store/pg"
)

var (
	admin     = common.HexToAddress("0xAD00000000000000000000000000000000000001")
	relayer   = common.HexToAddress("0xAE00000000000000000000000000000000000002")
	depositor = common.HexToAddress("0xD000000000000000000000000000000000000003")
	recipient = common.HexToAddress("0x8E00000000000000000000000000000000000005")
	tokenAddr = common.HexToAddress("0x70C3E00000000000000000000000000000000006")
	vaultAcct = common.HexToAddress("0x00000000000000000000000000000000000b71d6")
)

func setupStore(t *testing.T) (*pg.Store, *bun.DB) {
	t.Helper()
	db := pgutil.SetupTestDB(t)
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, ledgerdb.Migrations)
	require.NoError(t, migrator.Init(ctx))
	_, err := migrator.Migrate(ctx)
	require.NoError(t, err)

	return pg.NewStore(db), db
}

func sampleTransfer(seq uint64, at time.Time) *bridge.Transfer {
	gross, _ := new(big.Int).SetString("1000000000000000000000", 10)
	fee, net := ledger.ComputeFee(gross, 25)
	return &bridge.Transfer{
		ID:               common.BigToHash(new(big.Int).SetUint64(seq)),
		Depositor:        depositor,
		Recipient:        recipient,
		Asset:            tokenAddr,
		GrossAmount:      gross,
		Fee:              fee,
		NetAmount:        net,
		FeeRate:          25,
		SourceChain:      1,
		DestinationChain: 137,
		Sequence:         seq,
		Status:           bridge.StatusPending,
		CreatedAt:        at,
		UpdatedAt:        at,
	}
}

func TestStore_NotDeployed(t *testing.T) {
	store, _ := setupStore(t)

	err := store.View(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.LoadState(ctx)
		return err
	})
	require.ErrorIs(t, err, ledger.ErrNotDeployed)
}

func TestStore_StateRoundTrip(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	fees, err := ledger.NewFeeCalculator(40)
	require.NoError(t, err)
	state := &ledger.State{
		Access:   ledger.NewAccessControl(admin, admin, relayer),
		Gate:     ledger.NewPauseGate(true),
		Chains:   ledger.NewChainRegistry(56, 137),
		Fees:     fees,
		Sequence: 7,
	}
	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.SaveState(ctx, state)
	}))

	// second save replaces the sets rather than merging them
	state.Chains = ledger.NewChainRegistry(137)
	require.NoError(t, state.Access.RemoveRelayer(admin, admin))
	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.SaveState(ctx, state)
	}))
	pgutil.AssertRowCount(t, db, "ledger_state", 1)

	var loaded *ledger.State
	require.NoError(t, store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		loaded, err = tx.LoadState(ctx)
		return err
	}))
	assert.Equal(t, admin, loaded.Access.Administrator())
	assert.Equal(t, []common.Address{relayer}, loaded.Access.Relayers())
	assert.True(t, loaded.Gate.Paused())
	assert.Equal(t, []uint64{137}, loaded.Chains.Chains())
	assert.Equal(t, uint64(40), loaded.Fees.Rate())
	assert.Equal(t, uint64(7), loaded.Sequence)
}

func TestStore_Transfers(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	at := time.Unix(1_700_000_000, 0).UTC()

	first, second := sampleTransfer(1, at), sampleTransfer(2, at)
	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		if err := tx.InsertTransfer(ctx, first); err != nil {
			return err
		}
		return tx.InsertTransfer(ctx, second)
	}))

	later := at.Add(time.Minute)
	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.UpdateTransferStatus(ctx, first.ID, bridge.StatusCompleted, later)
	}))

	err := store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		got, err := tx.GetTransfer(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, bridge.StatusCompleted, got.Status)
		assert.Equal(t, later, got.UpdatedAt)
		assert.Equal(t, at, got.CreatedAt)
		assert.Equal(t, 0, first.GrossAmount.Cmp(got.GrossAmount))
		assert.Equal(t, 0, first.NetAmount.Cmp(got.NetAmount))
		assert.Equal(t, recipient, got.Recipient)

		all, err := tx.ListTransfers(ctx, ledger.TransferFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, second.ID, all[0].ID)

		pending, err := tx.ListTransfers(ctx, ledger.TransferFilter{Depositor: &depositor, Status: bridge.StatusPending})
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, second.ID, pending[0].ID)

		_, err = tx.GetTransfer(ctx, common.HexToHash("0xdead"))
		assert.ErrorIs(t, err, ledger.ErrTransferNotFound)
		return nil
	})
	require.NoError(t, err)

	err = store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.UpdateTransferStatus(ctx, common.HexToHash("0xdead"), bridge.StatusCancelled, later)
	})
	assert.ErrorIs(t, err, ledger.ErrTransferNotFound)
}

func TestStore_DepositProofsAndSettlement(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()
	at := time.Unix(1_700_000_000, 0).UTC()
	proof := common.HexToHash("0xd1")
	settlement := common.HexToHash("0x5e")

	rec := sampleTransfer(1, at)
	rec.Asset = bridge.NativeAsset
	rec.DepositTx = proof
	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		if err := tx.InsertTransfer(ctx, rec); err != nil {
			return err
		}
		if err := tx.ConsumeDepositProof(ctx, proof, rec.ID); err != nil {
			return err
		}
		return tx.SetSettlementTx(ctx, rec.ID, settlement)
	}))
	pgutil.AssertRowCount(t, db, "deposit_proofs", 1)

	err := store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.ConsumeDepositProof(ctx, proof, sampleTransfer(2, at).ID)
	})
	assert.ErrorIs(t, err, ledger.ErrDepositProofReused)

	err = store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.SetSettlementTx(ctx, common.HexToHash("0xdead"), settlement)
	})
	assert.ErrorIs(t, err, ledger.ErrTransferNotFound)

	require.NoError(t, store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		got, err := tx.GetTransfer(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, proof, got.DepositTx)
		assert.Equal(t, settlement, got.SettlementTx)
		return nil
	}))
}

func TestStore_LockedBalances(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		v, err := tx.LockedBalance(ctx, depositor, tokenAddr)
		require.NoError(t, err)
		assert.Zero(t, v.Sign())

		if err := tx.SetLockedBalance(ctx, depositor, tokenAddr, big.NewInt(500)); err != nil {
			return err
		}
		return tx.SetLockedBalance(ctx, depositor, tokenAddr, big.NewInt(300))
	}))

	require.NoError(t, store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		v, err := tx.LockedBalance(ctx, depositor, tokenAddr)
		require.NoError(t, err)
		assert.Equal(t, int64(300), v.Int64())
		return nil
	}))
}

func TestStore_RollbackDiscardsWrites(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	err := store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		require.NoError(t, tx.InsertTransfer(ctx, sampleTransfer(1, time.Now().UTC())))
		return ledger.ErrContractPaused
	})
	require.ErrorIs(t, err, ledger.ErrContractPaused)
	pgutil.AssertRowCount(t, db, "transfers", 0)
}

func TestStore_Events(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	at := time.Unix(1_700_000_000, 0).UTC()

	added := bridge.NewEvent(bridge.EventChainAdded, admin)
	added.ChainID = 137
	added.CreatedAt = at
	initiated := bridge.NewEvent(bridge.EventBridgeInitiated, depositor)
	initiated.Subject = recipient
	initiated.TransferID = common.HexToHash("0x01")
	initiated.Asset = bridge.NativeAsset
	initiated.Amount = big.NewInt(990)
	initiated.CreatedAt = at

	require.NoError(t, store.RunInTx(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.AppendEvents(ctx, added, initiated)
	}))

	require.NoError(t, store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		events, err := tx.ListEvents(ctx, 0)
		require.NoError(t, err)
		require.Len(t, events, 2)

		assert.Equal(t, initiated.ID, events[0].ID)
		assert.Equal(t, recipient, events[0].Subject)
		assert.Equal(t, initiated.TransferID, events[0].TransferID)
		assert.Equal(t, int64(990), events[0].Amount.Int64())

		assert.Equal(t, bridge.EventChainAdded, events[1].Type)
		assert.Equal(t, uint64(137), events[1].ChainID)
		assert.Nil(t, events[1].Amount)
		assert.Equal(t, at, events[1].CreatedAt)

		latest, err := tx.ListEvents(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, latest, 1)
		return nil
	}))
}

func TestLedger_OnPostgres(t *testing.T) {
	store, db := setupStore(t)
	ctx := context.Background()

	chain := custodymem.NewChain(vaultAcct)
	chain.DeployToken(tokenAddr)
	adapter := custody.NewAdapter(vaultAcct, chain, chain, zap.NewNop())

	l := ledger.New(1, store, adapter, zap.NewNop())
	deployed, err := l.Deploy(ctx, ledger.DeployParams{Deployer: admin, FeeRate: 100, Chains: []uint64{137}})
	require.NoError(t, err)
	require.True(t, deployed)

	deployed, err = l.Deploy(ctx, ledger.DeployParams{Deployer: relayer})
	require.NoError(t, err)
	assert.False(t, deployed)

	chain.Mint(tokenAddr, depositor, big.NewInt(2000))
	chain.Approve(tokenAddr, depositor, vaultAcct, big.NewInt(2000))

	req := ledger.InitiateRequest{
		Recipient:        recipient,
		Asset:            tokenAddr,
		Amount:           big.NewInt(1000),
		DestinationChain: 137,
	}
	done, err := l.Initiate(ctx, depositor, req)
	require.NoError(t, err)
	refunded, err := l.Initiate(ctx, depositor, req)
	require.NoError(t, err)

	require.NoError(t, l.Complete(ctx, admin, done))
	require.NoError(t, l.Cancel(ctx, admin, refunded))

	cancelled, err := l.GetTransaction(ctx, refunded)
	require.NoError(t, err)
	assert.NotEqual(t, common.Hash{}, cancelled.SettlementTx)

	// completion keeps the gross locked; cancellation refunds it
	locked, err := l.GetLockedBalance(ctx, depositor, tokenAddr)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), locked.Int64())
	assert.Equal(t, int64(1000), chain.TokenBalance(tokenAddr, depositor).Int64())
	assert.Equal(t, int64(1000), chain.TokenBalance(tokenAddr, vaultAcct).Int64())

	// allowance is spent, so the pull fails and the initiate rolls back
	_, err = l.Initiate(ctx, depositor, req)
	require.ErrorIs(t, err, ledger.ErrTokenTransferFailed)
	pgutil.AssertRowCount(t, db, "transfers", 2)

	cfg, err := l.Config(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), cfg.Sequence)
}
