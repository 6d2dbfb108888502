package events

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/chainsafe/custody-bridge/internal/metrics"
	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

type publisherFunc func(ctx context.Context, events []bridge.Event) error

func (f publisherFunc) Publish(ctx context.Context, events []bridge.Event) error { return f(ctx, events) }

func initiated(amount int64) bridge.Event {
	e := bridge.NewEvent(bridge.EventBridgeInitiated, common.HexToAddress("0xd0"))
	e.Subject = common.HexToAddress("0x8e")
	e.TransferID = common.Hash{0x01}
	e.Asset = common.HexToAddress("0x70")
	e.ChainID = 137
	e.Amount = big.NewInt(amount)
	return e
}

func TestEncode(t *testing.T) {
	raw, err := Encode(initiated(990))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "BridgeInitiated", got["type"])
	assert.Equal(t, "990", got["amount"])
	assert.Equal(t, common.HexToAddress("0x70").Hex(), got["asset"])
	assert.Equal(t, common.HexToAddress("0x8e").Hex(), got["subject"])

	raw, err = Encode(bridge.NewEvent(bridge.EventPaused, common.HexToAddress("0xad")))
	require.NoError(t, err)
	got = map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.NotContains(t, got, "amount")
	assert.NotContains(t, got, "transfer_id")
	assert.NotContains(t, got, "subject")
}

func TestMulti_DeliversToAllAndJoinsErrors(t *testing.T) {
	var seen []int
	failing := errors.New("sink down")
	m := Multi{
		publisherFunc(func(context.Context, []bridge.Event) error { seen = append(seen, 1); return failing }),
		publisherFunc(func(context.Context, []bridge.Event) error { seen = append(seen, 2); return nil }),
	}

	err := m.Publish(context.Background(), []bridge.Event{initiated(1)})
	require.ErrorIs(t, err, failing)
	assert.Equal(t, []int{1, 2}, seen)

	require.NoError(t, Multi{}.Publish(context.Background(), nil))
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.Publish(context.Background(), []bridge.Event{initiated(5)}))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "Ledger event", entry.Message)
	assert.Equal(t, "BridgeInitiated", entry.ContextMap()["type"])
	assert.Equal(t, "5", entry.ContextMap()["amount"])
}

func TestMetricsPublisher(t *testing.T) {
	p := NewMetricsPublisher()
	pending := testutil.ToFloat64(metrics.TransfersTotal.WithLabelValues("pending"))
	cancelled := testutil.ToFloat64(metrics.TransfersTotal.WithLabelValues("cancelled"))

	paused := bridge.NewEvent(bridge.EventPaused, common.HexToAddress("0xad"))
	fee := bridge.NewEvent(bridge.EventFeeUpdated, common.HexToAddress("0xad"))
	fee.FeeRate = 250
	cancel := bridge.NewEvent(bridge.EventBridgeCancelled, common.HexToAddress("0xd0"))

	require.NoError(t, p.Publish(context.Background(), []bridge.Event{initiated(10), paused, fee, cancel}))

	assert.Equal(t, pending+1, testutil.ToFloat64(metrics.TransfersTotal.WithLabelValues("pending")))
	assert.Equal(t, cancelled+1, testutil.ToFloat64(metrics.TransfersTotal.WithLabelValues("cancelled")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Paused))
	assert.Equal(t, float64(250), testutil.ToFloat64(metrics.FeeRate))

	SyncState(&ledger.Snapshot{Paused: false, FeeRate: 30})
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.Paused))
	assert.Equal(t, float64(30), testutil.ToFloat64(metrics.FeeRate))
}
