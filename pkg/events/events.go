// Package events fans committed ledger events out to logs, metrics and
// external subscribers.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/internal/metrics"
	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

// Message is the wire form of an event. Amounts are base-unit decimal strings.
type Message struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Actor      string    `json:"actor"`
	Subject    string    `json:"subject,omitempty"`
	TransferID string    `json:"transfer_id,omitempty"`
	Asset      string    `json:"asset,omitempty"`
	ChainID    uint64    `json:"chain_id,omitempty"`
	Amount     string    `json:"amount,omitempty"`
	FeeRate    uint64    `json:"fee_rate,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewMessage converts e to its wire form.
func NewMessage(e bridge.Event) Message {
	m := Message{
		ID:        e.ID.String(),
		Type:      string(e.Type),
		Actor:     e.Actor.Hex(),
		ChainID:   e.ChainID,
		FeeRate:   e.FeeRate,
		CreatedAt: e.CreatedAt,
	}
	if e.Subject != (common.Address{}) {
		m.Subject = e.Subject.Hex()
	}
	if e.TransferID != (bridge.TransferID{}) {
		m.TransferID = e.TransferID.Hex()
		m.Asset = e.Asset.Hex()
	}
	if e.Amount != nil {
		m.Amount = e.Amount.String()
	}
	return m
}

// Encode returns the JSON wire form of e.
func Encode(e bridge.Event) ([]byte, error) {
	return json.Marshal(NewMessage(e))
}

// Multi publishes to every publisher in turn. All publishers see the events
// even when an earlier one fails; the errors are joined.
type Multi []ledger.Publisher

func (m Multi) Publish(ctx context.Context, events []bridge.Event) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// LogPublisher writes every event to the structured log.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, events []bridge.Event) error {
	for _, e := range events {
		fields := []zap.Field{
			zap.String("event_id", e.ID.String()),
			zap.String("type", string(e.Type)),
			zap.Stringer("actor", e.Actor),
		}
		if e.TransferID != (bridge.TransferID{}) {
			fields = append(fields,
				zap.Stringer("transfer_id", e.TransferID),
				zap.Stringer("asset", e.Asset),
			)
		}
		if e.Amount != nil {
			fields = append(fields, zap.Stringer("amount", e.Amount))
		}
		if e.ChainID != 0 {
			fields = append(fields, zap.Uint64("chain_id", e.ChainID))
		}
		p.logger.Info("Ledger event", fields...)
	}
	return nil
}

// MetricsPublisher derives Prometheus metrics from the event stream.
type MetricsPublisher struct{}

func NewMetricsPublisher() *MetricsPublisher {
	return &MetricsPublisher{}
}

func (MetricsPublisher) Publish(_ context.Context, events []bridge.Event) error {
	for _, e := range events {
		metrics.EventsPublished.WithLabelValues(string(e.Type)).Inc()

		switch e.Type {
		case bridge.EventBridgeInitiated:
			metrics.TransfersTotal.WithLabelValues(string(bridge.StatusPending)).Inc()
			if e.Amount != nil {
				metrics.TransferAmount.WithLabelValues(e.Asset.Hex()).
					Observe(decimal.NewFromBigInt(e.Amount, 0).InexactFloat64())
			}
		case bridge.EventBridgeCompleted:
			metrics.TransfersTotal.WithLabelValues(string(bridge.StatusCompleted)).Inc()
		case bridge.EventBridgeCancelled:
			metrics.TransfersTotal.WithLabelValues(string(bridge.StatusCancelled)).Inc()
		case bridge.EventPaused:
			metrics.Paused.Set(1)
		case bridge.EventUnpaused:
			metrics.Paused.Set(0)
		case bridge.EventFeeUpdated:
			metrics.FeeRate.Set(float64(e.FeeRate))
		}
	}
	return nil
}

// SyncState sets the state gauges from a snapshot, e.g. at startup.
func SyncState(snap *ledger.Snapshot) {
	if snap.Paused {
		metrics.Paused.Set(1)
	} else {
		metrics.Paused.Set(0)
	}
	metrics.FeeRate.Set(float64(snap.FeeRate))
}
