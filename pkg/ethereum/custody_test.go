package ethereum

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/custody"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
	"github.com/chainsafe/custody-bridge/pkg/store/memory"
)

var (
	ledgerAdmin = common.HexToAddress("0xAD00000000000000000000000000000000000001")
	recipient   = common.HexToAddress("0x8E00000000000000000000000000000000000005")
)

type custodyFixture struct {
	backend *fakeBackend
	client  *Client
	ledger  *ledger.Ledger
	logs    *observer.ObservedLogs
}

// newCustodyFixture runs a ledger whose custody is the EVM client over the fake backend.
func newCustodyFixture(t *testing.T) *custodyFixture {
	t.Helper()
	backend := &fakeBackend{gasPrice: big.NewInt(1)}
	client := newTestClient(t, backend, "")
	core, logs := observer.New(zapcore.InfoLevel)

	adapter := custody.NewAdapter(client.Address(), client, client, zap.NewNop())
	l := ledger.New(1, memory.NewStore(), adapter, zap.New(core))
	_, err := l.Deploy(context.Background(), ledger.DeployParams{
		Deployer: ledgerAdmin,
		Chains:   []uint64{137},
	})
	require.NoError(t, err)
	return &custodyFixture{backend: backend, client: client, ledger: l, logs: logs}
}

func nativeRequest(amount int64, proof common.Hash) ledger.InitiateRequest {
	return ledger.InitiateRequest{
		Recipient:        recipient,
		Asset:            bridge.NativeAsset,
		Amount:           big.NewInt(amount),
		DestinationChain: 137,
		Value:            big.NewInt(amount),
		DepositTx:        proof,
	}
}

func TestLedger_NativeDepositNeedsOnChainTransfer(t *testing.T) {
	ctx := context.Background()
	f := newCustodyFixture(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	depositor := crypto.PubkeyToAddress(key.PublicKey)
	attacker := common.HexToAddress("0x0bad000000000000000000000000000000000000")

	// value typed into the request alone proves nothing
	_, err = f.ledger.Initiate(ctx, attacker, nativeRequest(1_000_000, common.Hash{}))
	require.ErrorIs(t, err, ledger.ErrTokenTransferFailed)

	deposit := signedTransfer(t, key, 0, f.client.Address(), 1_000_000)
	f.backend.mine(deposit)

	// someone else's deposit cannot be claimed
	_, err = f.ledger.Initiate(ctx, attacker, nativeRequest(1_000_000, deposit.Hash()))
	require.ErrorIs(t, err, ledger.ErrTokenTransferFailed)

	_, err = f.ledger.Initiate(ctx, depositor, nativeRequest(2_000_000, deposit.Hash()))
	require.ErrorIs(t, err, ledger.ErrTokenTransferFailed, "amount larger than what was sent")

	id, err := f.ledger.Initiate(ctx, depositor, nativeRequest(1_000_000, deposit.Hash()))
	require.NoError(t, err)

	rec, err := f.ledger.GetTransaction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, deposit.Hash(), rec.DepositTx)

	// a deposit backs one transfer only
	_, err = f.ledger.Initiate(ctx, depositor, nativeRequest(1_000_000, deposit.Hash()))
	require.ErrorIs(t, err, ledger.ErrDepositProofReused)

	locked, err := f.ledger.GetLockedBalance(ctx, depositor, bridge.NativeAsset)
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_000), locked.Int64())

	locked, err = f.ledger.GetLockedBalance(ctx, attacker, bridge.NativeAsset)
	require.NoError(t, err)
	assert.Zero(t, locked.Sign())

	// nothing was paid out while rejecting the forged deposits
	assert.Zero(t, f.backend.sentCount())
	err = f.ledger.Cancel(ctx, attacker, id)
	require.ErrorIs(t, err, ledger.ErrUnauthorized)
	assert.Zero(t, f.backend.sentCount())
}

func TestLedger_CancelCommitsOnceRefundSubmitted(t *testing.T) {
	ctx := context.Background()
	f := newCustodyFixture(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	depositor := crypto.PubkeyToAddress(key.PublicKey)
	deposit := signedTransfer(t, key, 0, f.client.Address(), 1_000_000)
	f.backend.mine(deposit)

	id, err := f.ledger.Initiate(ctx, depositor, nativeRequest(1_000_000, deposit.Hash()))
	require.NoError(t, err)

	// the refund never gets a receipt
	f.client.receiptTimeout = 20 * time.Millisecond
	f.backend.pending = 1 << 30

	require.NoError(t, f.ledger.Cancel(ctx, depositor, id))
	require.Equal(t, 1, f.backend.sentCount())
	refund := f.backend.sent[0]
	assert.Equal(t, depositor, *refund.To())
	assert.Equal(t, int64(1_000_000), refund.Value().Int64())

	rec, err := f.ledger.GetTransaction(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, bridge.StatusCancelled, rec.Status)
	assert.Equal(t, refund.Hash(), rec.SettlementTx)

	unconfirmed := f.logs.FilterMessage("settlement not confirmed").All()
	require.Len(t, unconfirmed, 1)
	assert.Equal(t, refund.Hash().Hex(), unconfirmed[0].ContextMap()["settlement_tx"])

	// a second cancel cannot pay again
	err = f.ledger.Cancel(ctx, depositor, id)
	require.ErrorIs(t, err, ledger.ErrTransactionNotPending)
	assert.Equal(t, 1, f.backend.sentCount())

	locked, err := f.ledger.GetLockedBalance(ctx, depositor, bridge.NativeAsset)
	require.NoError(t, err)
	assert.Zero(t, locked.Sign())
}

func TestLedger_CancelConfirmedRefund(t *testing.T) {
	ctx := context.Background()
	f := newCustodyFixture(t)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	depositor := crypto.PubkeyToAddress(key.PublicKey)
	deposit := signedTransfer(t, key, 0, f.client.Address(), 700)
	f.backend.mine(deposit)

	id, err := f.ledger.Initiate(ctx, depositor, nativeRequest(700, deposit.Hash()))
	require.NoError(t, err)
	require.NoError(t, f.ledger.Cancel(ctx, ledgerAdmin, id))

	assert.Equal(t, 1, f.backend.sentCount())
	assert.Empty(t, f.logs.FilterMessage("settlement not confirmed").All())
}
