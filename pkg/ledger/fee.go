package ledger

import (
	"fmt"
	"math/big"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
)

const (
	// FeeDenominator is the basis-point scale of fee rates.
	FeeDenominator = 10000
	// MaxFeeRate caps the fee at 10%.
	MaxFeeRate = 1000
)

// FeeCalculator applies the bridge fee rate, in basis points.
type FeeCalculator struct {
	rate uint64
}

// NewFeeCalculator returns a calculator at rate, failing with ErrFeeTooHigh above MaxFeeRate.
func NewFeeCalculator(rate uint64) (*FeeCalculator, error) {
	f := &FeeCalculator{}
	if err := f.SetRate(rate); err != nil {
		return nil, err
	}
	return f, nil
}

// Rate returns the fee rate in basis points.
func (f *FeeCalculator) Rate() uint64 { return f.rate }

// SetRate changes the fee rate. Exactly MaxFeeRate is accepted.
func (f *FeeCalculator) SetRate(rate uint64) error {
	if rate > MaxFeeRate {
		return ErrFeeTooHigh
	}
	f.rate = rate
	return nil
}

// Compute splits gross into fee = floor(gross*rate/10000) and net = gross - fee.
func (f *FeeCalculator) Compute(gross *big.Int) (fee, net *big.Int) {
	return ComputeFee(gross, f.rate)
}

// ComputeFee splits gross at the given rate.
func ComputeFee(gross *big.Int, rate uint64) (fee, net *big.Int) {
	fee = new(big.Int).Mul(gross, new(big.Int).SetUint64(rate))
	fee.Quo(fee, big.NewInt(FeeDenominator))
	net = new(big.Int).Sub(gross, fee)
	return fee, net
}

// RefundFromNet inverts the fee split: net + floor(net*rate/(10000-rate)).
// The result equals the original gross only if rate is the rate applied at initiation.
func RefundFromNet(net *big.Int, rate uint64) *big.Int {
	extra := new(big.Int).Mul(net, new(big.Int).SetUint64(rate))
	extra.Quo(extra, new(big.Int).SetUint64(FeeDenominator-rate))
	return extra.Add(extra, net)
}

// RefundPolicy selects how a cancellation refund is computed.
type RefundPolicy string

const (
	// RefundExact returns the gross amount stored on the record.
	RefundExact RefundPolicy = "exact"
	// RefundLegacy recomputes the refund from the net amount at the current fee rate.
	RefundLegacy RefundPolicy = "legacy"
)

// ParseRefundPolicy maps a configuration value to a policy. Empty selects RefundExact.
func ParseRefundPolicy(s string) (RefundPolicy, error) {
	switch RefundPolicy(s) {
	case "", RefundExact:
		return RefundExact, nil
	case RefundLegacy:
		return RefundLegacy, nil
	default:
		return "", fmt.Errorf("unknown refund policy %q", s)
	}
}

// Refund returns the amount returned to the depositor when t is cancelled.
func (p RefundPolicy) Refund(t *bridge.Transfer, currentRate uint64) *big.Int {
	if p == RefundLegacy || t.GrossAmount == nil {
		return RefundFromNet(t.NetAmount, currentRate)
	}
	return new(big.Int).Set(t.GrossAmount)
}
