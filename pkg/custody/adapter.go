// Package custody moves bridged assets into and out of the custody account,
// uniformly over the native currency and tokens.
package custody

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/ledger"
)

// NativeBank moves the chain's native currency for the custody account.
type NativeBank interface {
	// Accept takes delivery of value sent by from in the transaction proof.
	// A zero proof means the value is attached to the call itself.
	Accept(ctx context.Context, from common.Address, value *big.Int, proof common.Hash) error
	// Send submits a payout and returns its transaction hash.
	Send(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
	Balance(ctx context.Context) (*big.Int, error)
	// Confirm waits until the custody transaction hash is mined.
	Confirm(ctx context.Context, hash common.Hash) error
}

// Token is the fungible-token surface custody relies on. TransferFrom
// returns once the tokens are held; Transfer returns once it is submitted.
type Token interface {
	TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) error
	Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error)
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
}

// TokenResolver returns the token contract at an asset address.
type TokenResolver interface {
	Token(asset common.Address) (Token, error)
}

// Adapter implements ledger.Custody.
type Adapter struct {
	account common.Address
	native  NativeBank
	tokens  TokenResolver
	logger  *zap.Logger
}

var _ ledger.Custody = (*Adapter)(nil)

// NewAdapter creates an adapter holding assets in account.
func NewAdapter(account common.Address, native NativeBank, tokens TokenResolver, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{account: account, native: native, tokens: tokens, logger: logger}
}

// Account returns the custody account address.
func (a *Adapter) Account() common.Address { return a.account }

// Deposit pulls amount of asset from the depositor into custody. For the
// native asset the attached value must equal amount; tokens take neither a
// value nor a deposit proof.
func (a *Adapter) Deposit(ctx context.Context, from, asset common.Address, amount, value *big.Int, proof common.Hash) error {
	if asset == bridge.NativeAsset {
		if value == nil || value.Cmp(amount) != 0 {
			return ledger.ErrInvalidAmount
		}
		if err := a.native.Accept(ctx, from, value, proof); err != nil {
			return a.failed("accept native", asset, err)
		}
		return nil
	}

	if (value != nil && value.Sign() != 0) || proof != (common.Hash{}) {
		return ledger.ErrInvalidAmount
	}
	token, err := a.tokens.Token(asset)
	if err != nil {
		return a.failed("resolve token", asset, err)
	}
	if err := token.TransferFrom(ctx, from, a.account, amount); err != nil {
		return a.failed("transferFrom", asset, err)
	}
	return nil
}

// Withdraw submits a push of amount of asset from custody to the recipient.
func (a *Adapter) Withdraw(ctx context.Context, to, asset common.Address, amount *big.Int) (common.Hash, error) {
	if asset == bridge.NativeAsset {
		hash, err := a.native.Send(ctx, to, amount)
		if err != nil {
			return common.Hash{}, a.failed("send native", asset, err)
		}
		return hash, nil
	}

	token, err := a.tokens.Token(asset)
	if err != nil {
		return common.Hash{}, a.failed("resolve token", asset, err)
	}
	hash, err := token.Transfer(ctx, to, amount)
	if err != nil {
		return common.Hash{}, a.failed("transfer", asset, err)
	}
	return hash, nil
}

// Confirm waits for a submitted withdrawal to be mined.
func (a *Adapter) Confirm(ctx context.Context, hash common.Hash) error {
	if err := a.native.Confirm(ctx, hash); err != nil {
		return fmt.Errorf("confirm %s: %w", hash.Hex(), err)
	}
	return nil
}

// BalanceOf returns what custody holds of asset.
func (a *Adapter) BalanceOf(ctx context.Context, asset common.Address) (*big.Int, error) {
	if asset == bridge.NativeAsset {
		return a.native.Balance(ctx)
	}
	token, err := a.tokens.Token(asset)
	if err != nil {
		return nil, fmt.Errorf("resolve token %s: %w", asset.Hex(), err)
	}
	return token.BalanceOf(ctx, a.account)
}

// Receive accepts native currency sent outside any bridge operation.
func (a *Adapter) Receive(ctx context.Context, from common.Address, value *big.Int) error {
	if value.Sign() == 0 {
		return nil
	}
	if err := a.native.Accept(ctx, from, value, common.Hash{}); err != nil {
		return a.failed("receive native", bridge.NativeAsset, err)
	}
	return nil
}

func (a *Adapter) failed(op string, asset common.Address, err error) error {
	a.logger.Warn("custody transfer failed",
		zap.String("op", op),
		zap.String("asset", asset.Hex()),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %s: %v", ledger.ErrTokenTransferFailed, op, err)
}
