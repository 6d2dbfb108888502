package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts committed transfer transitions by status
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_transfers_total",
			Help: "Total number of bridge transfer state transitions",
		},
		[]string{"status"},
	)

	// TransferAmount tracks gross amounts entering the ledger, in base units
	TransferAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_transfer_amount",
			Help:    "Amount of assets locked per transfer",
			Buckets: prometheus.ExponentialBuckets(1, 100, 10),
		},
		[]string{"asset"},
	)

	// EventsPublished counts ledger events handed to publishers
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_events_published_total",
			Help: "Total number of ledger events published",
		},
		[]string{"event_type"},
	)

	// OperationDuration tracks service call latency
	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_operation_duration_seconds",
			Help:    "Ledger operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Paused reports whether the ledger currently rejects new transfers
	Paused = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_paused",
			Help: "1 if the bridge is paused, 0 otherwise",
		},
	)

	// FeeRate reports the current bridge fee in basis points
	FeeRate = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bridge_fee_rate_basis_points",
			Help: "Current bridge fee rate in basis points",
		},
	)

	// ErrorsTotal counts failed operations by error kind
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_errors_total",
			Help: "Total number of failed ledger operations",
		},
		[]string{"kind"},
	)
)
