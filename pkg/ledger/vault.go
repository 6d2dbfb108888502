package ledger

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// VaultStore persists locked balances keyed by (depositor, asset).
// An absent key reads as zero.
type VaultStore interface {
	LockedBalance(ctx context.Context, depositor, asset common.Address) (*big.Int, error)
	SetLockedBalance(ctx context.Context, depositor, asset common.Address, amount *big.Int) error
}

// BalanceVault tracks the gross amount locked per depositor and asset.
// It records deposits, it is not a redeemable balance.
type BalanceVault struct {
	store VaultStore
}

func NewBalanceVault(store VaultStore) *BalanceVault {
	return &BalanceVault{store: store}
}

// Locked returns the locked balance of depositor in asset.
func (v *BalanceVault) Locked(ctx context.Context, depositor, asset common.Address) (*big.Int, error) {
	return v.store.LockedBalance(ctx, depositor, asset)
}

// Increase adds amount to the locked balance.
func (v *BalanceVault) Increase(ctx context.Context, depositor, asset common.Address, amount *big.Int) error {
	cur, err := v.store.LockedBalance(ctx, depositor, asset)
	if err != nil {
		return err
	}
	return v.store.SetLockedBalance(ctx, depositor, asset, new(big.Int).Add(cur, amount))
}

// Decrease subtracts amount, failing with ErrInsufficientBalance instead of underflowing.
func (v *BalanceVault) Decrease(ctx context.Context, depositor, asset common.Address, amount *big.Int) error {
	cur, err := v.store.LockedBalance(ctx, depositor, asset)
	if err != nil {
		return err
	}
	if cur.Cmp(amount) < 0 {
		return ErrInsufficientBalance
	}
	return v.store.SetLockedBalance(ctx, depositor, asset, new(big.Int).Sub(cur, amount))
}
