// Package memory simulates a chain holding native and token balances, for
// tests and the simulated custody mode.
package memory

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/custody-bridge/pkg/custody"
)

var (
	ErrInsufficientFunds     = errors.New("insufficient funds")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrUnknownToken          = errors.New("no token at address")
	ErrTransferRejected      = errors.New("transfer rejected")
)

type allowanceKey struct {
	owner, spender common.Address
}

type token struct {
	balances   map[common.Address]*big.Int
	allowances map[allowanceKey]*big.Int
	fail       bool
}

// Chain is a simulated ledger of native and token balances with a single
// custody account acting as token spender.
type Chain struct {
	mu         sync.Mutex
	custody    common.Address
	native     map[common.Address]*big.Int
	tokens     map[common.Address]*token
	failNative bool
	mint       bool
	txs        uint64
}

var (
	_ custody.NativeBank    = (*Chain)(nil)
	_ custody.TokenResolver = (*Chain)(nil)
)

// NewChain creates an empty chain whose custody account is custodyAccount.
func NewChain(custodyAccount common.Address) *Chain {
	return &Chain{
		custody: custodyAccount,
		native:  make(map[common.Address]*big.Int),
		tokens:  make(map[common.Address]*token),
	}
}

// Custody returns the custody account.
func (c *Chain) Custody() common.Address { return c.custody }

// Fund credits account with native currency.
func (c *Chain) Fund(account common.Address, amount *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	credit(c.native, account, amount)
}

// NativeBalance returns the native balance of account.
func (c *Chain) NativeBalance(account common.Address) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return balance(c.native, account)
}

// DeployToken registers a token contract at asset.
func (c *Chain) DeployToken(asset common.Address) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token(asset)
}

// Mint credits account with amount of asset, deploying the token if needed.
func (c *Chain) Mint(asset, account common.Address, amount *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	credit(c.token(asset).balances, account, amount)
}

// Approve sets the allowance of spender over owner's asset balance.
func (c *Chain) Approve(asset, owner, spender common.Address, amount *big.Int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token(asset).allowances[allowanceKey{owner, spender}] = new(big.Int).Set(amount)
}

// TokenBalance returns the asset balance of account.
func (c *Chain) TokenBalance(asset, account common.Address) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tokens[asset]
	if !ok {
		return new(big.Int)
	}
	return balance(t.balances, account)
}

// Allowance returns the remaining allowance of spender over owner's asset.
func (c *Chain) Allowance(asset, owner, spender common.Address) *big.Int {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.tokens[asset]
	if !ok {
		return new(big.Int)
	}
	v, ok := t.allowances[allowanceKey{owner, spender}]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// FailToken makes every transfer of asset revert while fail is set.
func (c *Chain) FailToken(asset common.Address, fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token(asset).fail = fail
}

// FailNativeSends makes outgoing native transfers from custody fail while set.
func (c *Chain) FailNativeSends(fail bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failNative = fail
}

// MintAttached credits native value to the sender before Accept takes it,
// standing in for the value a real transaction carries.
func (c *Chain) MintAttached(mint bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mint = mint
}

// Accept moves value from the sender to custody. The simulated chain has no
// transactions to prove against, so proof is ignored.
func (c *Chain) Accept(_ context.Context, from common.Address, value *big.Int, _ common.Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mint {
		credit(c.native, from, value)
	}
	return move(c.native, from, c.custody, value)
}

func (c *Chain) Send(_ context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failNative {
		return common.Hash{}, ErrTransferRejected
	}
	if err := move(c.native, c.custody, to, amount); err != nil {
		return common.Hash{}, err
	}
	return c.nextTx(), nil
}

// Confirm succeeds for every transaction the chain issued; they settle immediately.
func (c *Chain) Confirm(_ context.Context, hash common.Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n := new(big.Int).SetBytes(hash.Bytes()); !n.IsUint64() || n.Uint64() == 0 || n.Uint64() > c.txs {
		return fmt.Errorf("unknown transaction %s", hash.Hex())
	}
	return nil
}

// nextTx issues a transaction hash. Callers hold c.mu.
func (c *Chain) nextTx() common.Hash {
	c.txs++
	return common.BigToHash(new(big.Int).SetUint64(c.txs))
}

func (c *Chain) Balance(_ context.Context) (*big.Int, error) {
	return c.NativeBalance(c.custody), nil
}

func (c *Chain) Token(asset common.Address) (custody.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.tokens[asset]; !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownToken, asset.Hex())
	}
	return &tokenHandle{chain: c, asset: asset}, nil
}

// token returns the token at asset, creating it. Callers hold c.mu.
func (c *Chain) token(asset common.Address) *token {
	t, ok := c.tokens[asset]
	if !ok {
		t = &token{
			balances:   make(map[common.Address]*big.Int),
			allowances: make(map[allowanceKey]*big.Int),
		}
		c.tokens[asset] = t
	}
	return t
}

// tokenHandle calls a token with the custody account as msg.sender.
type tokenHandle struct {
	chain *Chain
	asset common.Address
}

func (h *tokenHandle) TransferFrom(_ context.Context, from, to common.Address, amount *big.Int) error {
	h.chain.mu.Lock()
	defer h.chain.mu.Unlock()

	t := h.chain.token(h.asset)
	if t.fail {
		return ErrTransferRejected
	}
	key := allowanceKey{from, h.chain.custody}
	allowed := t.allowances[key]
	if allowed == nil || allowed.Cmp(amount) < 0 {
		return ErrInsufficientAllowance
	}
	if err := move(t.balances, from, to, amount); err != nil {
		return err
	}
	t.allowances[key] = new(big.Int).Sub(allowed, amount)
	return nil
}

func (h *tokenHandle) Transfer(_ context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	h.chain.mu.Lock()
	defer h.chain.mu.Unlock()

	t := h.chain.token(h.asset)
	if t.fail {
		return common.Hash{}, ErrTransferRejected
	}
	if err := move(t.balances, h.chain.custody, to, amount); err != nil {
		return common.Hash{}, err
	}
	return h.chain.nextTx(), nil
}

func (h *tokenHandle) BalanceOf(_ context.Context, account common.Address) (*big.Int, error) {
	h.chain.mu.Lock()
	defer h.chain.mu.Unlock()
	return balance(h.chain.token(h.asset).balances, account), nil
}

func move(balances map[common.Address]*big.Int, from, to common.Address, amount *big.Int) error {
	cur := balance(balances, from)
	if cur.Cmp(amount) < 0 {
		return ErrInsufficientFunds
	}
	balances[from] = cur.Sub(cur, amount)
	credit(balances, to, amount)
	return nil
}

func credit(balances map[common.Address]*big.Int, account common.Address, amount *big.Int) {
	balances[account] = new(big.Int).Add(balance(balances, account), amount)
}

func balance(balances map[common.Address]*big.Int, account common.Address) *big.Int {
	v, ok := balances[account]
	if !ok {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}
