// Package ethereum holds bridge custody on an EVM chain: the custody key
// sends the native currency and calls ERC-20 tokens.
package ethereum

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/config"
	"github.com/chainsafe/custody-bridge/pkg/custody"
)

const (
	nativeTransferGas     = 21000
	defaultReceiptTimeout = 2 * time.Minute
	receiptPollInterval   = time.Second
)

var (
	// ErrTransactionReverted is returned when a mined transaction has a failed status.
	ErrTransactionReverted = errors.New("transaction reverted")
	// ErrDepositProofRequired is returned for a native deposit that names no transaction.
	ErrDepositProofRequired = errors.New("native deposit requires its transaction hash")
	// ErrDepositMismatch is returned when the named transaction did not carry the deposit.
	ErrDepositMismatch = errors.New("deposit transaction does not match")
)

// Backend is the RPC surface the custody client needs.
type Backend interface {
	bind.ContractBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client signs custody transactions with a single key.
type Client struct {
	backend        Backend
	closer         func()
	privateKey     *ecdsa.PrivateKey
	address        common.Address
	chainID        *big.Int
	gasLimit       uint64
	maxGasPrice    *big.Int
	receiptTimeout time.Duration
	pollInterval   time.Duration
	logger         *zap.Logger
}

var (
	_ custody.NativeBank    = (*Client)(nil)
	_ custody.TokenResolver = (*Client)(nil)
)

// NewClient dials the configured RPC endpoint.
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	c, err := NewClientWithBackend(client, cfg, logger)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.closer = client.Close

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("custody_address", c.address.Hex()))
	return c, nil
}

// NewClientWithBackend creates a client over an existing backend.
func NewClientWithBackend(backend Backend, cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	privateKey, err := crypto.HexToECDSA(cfg.CustodyPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load private key: %w", err)
	}

	var maxGasPrice *big.Int
	if cfg.MaxGasPrice != "" {
		v, ok := new(big.Int).SetString(cfg.MaxGasPrice, 10)
		if !ok {
			return nil, fmt.Errorf("invalid max gas price %q", cfg.MaxGasPrice)
		}
		maxGasPrice = v
	}

	timeout := cfg.ReceiptTimeout
	if timeout <= 0 {
		timeout = defaultReceiptTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		backend:        backend,
		privateKey:     privateKey,
		address:        crypto.PubkeyToAddress(privateKey.PublicKey),
		chainID:        big.NewInt(cfg.ChainID),
		gasLimit:       cfg.GasLimit,
		maxGasPrice:    maxGasPrice,
		receiptTimeout: timeout,
		pollInterval:   receiptPollInterval,
		logger:         logger,
	}, nil
}

// Close closes the RPC connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Address returns the custody account controlled by the key.
func (c *Client) Address() common.Address { return c.address }

// GetTransactor returns signing options with the pending nonce and a capped
// legacy gas price.
func (c *Client) GetTransactor(ctx context.Context) (*bind.TransactOpts, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(c.privateKey, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := c.gasPrice(ctx)
	if err != nil {
		return nil, err
	}

	auth.Context = ctx
	auth.Nonce = new(big.Int).SetUint64(nonce)
	auth.GasLimit = c.gasLimit
	auth.GasPrice = gasPrice
	return auth, nil
}

func (c *Client) gasPrice(ctx context.Context) (*big.Int, error) {
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas price: %w", err)
	}
	if c.maxGasPrice != nil && gasPrice.Cmp(c.maxGasPrice) > 0 {
		c.logger.Warn("Suggested gas price exceeds maximum",
			zap.String("suggested", gasPrice.String()),
			zap.String("max", c.maxGasPrice.String()))
		return new(big.Int).Set(c.maxGasPrice), nil
	}
	return gasPrice, nil
}

// Accept verifies that proof is a mined, successful transaction in which
// from sent exactly value to the custody account. The value already sits in
// custody; Accept moves nothing.
func (c *Client) Accept(ctx context.Context, from common.Address, value *big.Int, proof common.Hash) error {
	if proof == (common.Hash{}) {
		return ErrDepositProofRequired
	}

	tx, isPending, err := c.backend.TransactionByHash(ctx, proof)
	if err != nil {
		return fmt.Errorf("failed to get deposit transaction %s: %w", proof.Hex(), err)
	}
	if isPending {
		return fmt.Errorf("%w: %s is not mined", ErrDepositMismatch, proof.Hex())
	}
	receipt, err := c.backend.TransactionReceipt(ctx, proof)
	if err != nil {
		return fmt.Errorf("failed to get deposit receipt %s: %w", proof.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: %s", ErrTransactionReverted, proof.Hex())
	}

	if tx.To() == nil || *tx.To() != c.address {
		return fmt.Errorf("%w: %s is not addressed to custody", ErrDepositMismatch, proof.Hex())
	}
	if tx.Value().Cmp(value) != 0 {
		return fmt.Errorf("%w: %s carries %s, want %s", ErrDepositMismatch, proof.Hex(), tx.Value(), value)
	}
	sender, err := types.Sender(types.LatestSignerForChainID(c.chainID), tx)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDepositMismatch, proof.Hex(), err)
	}
	if sender != from {
		return fmt.Errorf("%w: %s was sent by %s", ErrDepositMismatch, proof.Hex(), sender.Hex())
	}

	c.logger.Info("Native deposit verified",
		zap.String("tx_hash", proof.Hex()),
		zap.String("from", from.Hex()),
		zap.String("value", value.String()))
	return nil
}

// Send signs and submits a transfer of amount of the native currency from
// custody. It returns once the node accepted the transaction; Confirm waits
// for it to be mined.
func (c *Client) Send(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	nonce, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}
	gasPrice, err := c.gasPrice(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      nativeTransferGas,
		To:       &to,
		Value:    amount,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.privateKey)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.Info("Native transfer submitted",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("to", to.Hex()),
		zap.String("amount", amount.String()))
	return signed.Hash(), nil
}

// Confirm waits for a custody transaction to be mined successfully.
func (c *Client) Confirm(ctx context.Context, hash common.Hash) error {
	_, err := c.waitMined(ctx, hash)
	return err
}

// Balance returns the native balance of the custody account.
func (c *Client) Balance(ctx context.Context) (*big.Int, error) {
	v, err := c.backend.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return v, nil
}

// Token returns the ERC-20 contract at asset bound to the custody key.
func (c *Client) Token(asset common.Address) (custody.Token, error) {
	return newERC20(c, asset), nil
}

// waitMined polls for the receipt of hash until it is mined or the receipt
// timeout passes.
func (c *Client) waitMined(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, c.receiptTimeout)
	defer cancel()

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		switch {
		case err == nil && receipt != nil:
			if receipt.Status != types.ReceiptStatusSuccessful {
				return receipt, fmt.Errorf("%w: %s", ErrTransactionReverted, hash.Hex())
			}
			return receipt, nil
		case err != nil && !errors.Is(err, goethereum.NotFound):
			c.logger.Warn("Failed to get receipt", zap.String("tx_hash", hash.Hex()), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("waiting for %s: %w", hash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
