package ethereum

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const erc20ABIJSON = `[
{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}]}
]`

var erc20ABI = mustParseABI(erc20ABIJSON)

// ErrTokenRejected is returned when a token reports a failed transfer
// without reverting, or mines one without the matching Transfer event.
var ErrTokenRejected = errors.New("token rejected transfer")

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

// erc20 calls a token contract with the custody key as msg.sender.
type erc20 struct {
	client   *Client
	address  common.Address
	contract *bind.BoundContract
}

func newERC20(c *Client, address common.Address) *erc20 {
	return &erc20{
		client:   c,
		address:  address,
		contract: bind.NewBoundContract(address, erc20ABI, c.backend, c.backend, c.backend),
	}
}

// TransferFrom pulls amount into custody and returns once the tokens
// provably moved: the receipt must hold the token's Transfer event.
func (t *erc20) TransferFrom(ctx context.Context, from, to common.Address, amount *big.Int) error {
	hash, err := t.transact(ctx, "transferFrom", from, to, amount)
	if err != nil {
		return err
	}
	receipt, err := t.client.waitMined(ctx, hash)
	if err != nil {
		return err
	}
	if !t.hasTransferLog(receipt, from, to, amount) {
		return fmt.Errorf("%w: %s emitted no matching Transfer in %s", ErrTokenRejected, t.address.Hex(), hash.Hex())
	}
	return nil
}

// Transfer submits a payout from custody.
func (t *erc20) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	return t.transact(ctx, "transfer", to, amount)
}

func (t *erc20) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	var out []interface{}
	if err := t.contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", account); err != nil {
		return nil, fmt.Errorf("balanceOf %s: %w", t.address.Hex(), err)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

// transact simulates method as the custody account, then submits it.
func (t *erc20) transact(ctx context.Context, method string, params ...interface{}) (common.Hash, error) {
	if err := t.simulate(ctx, method, params...); err != nil {
		return common.Hash{}, err
	}

	opts, err := t.client.GetTransactor(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	tx, err := t.contract.Transact(opts, method, params...)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit %s: %w", method, err)
	}

	t.client.logger.Info("Token transaction submitted",
		zap.String("method", method),
		zap.String("token", t.address.Hex()),
		zap.String("tx_hash", tx.Hash().Hex()))
	return tx.Hash(), nil
}

// simulate runs method against pending state. Tokens that return nothing
// are accepted; a false return is a rejection.
func (t *erc20) simulate(ctx context.Context, method string, params ...interface{}) error {
	input, err := erc20ABI.Pack(method, params...)
	if err != nil {
		return fmt.Errorf("failed to pack %s: %w", method, err)
	}
	out, err := t.client.backend.CallContract(ctx, goethereum.CallMsg{
		From: t.client.address,
		To:   &t.address,
		Data: input,
	}, nil)
	if err != nil {
		return fmt.Errorf("simulate %s on %s: %w", method, t.address.Hex(), err)
	}
	if len(out) == 0 {
		return nil
	}

	values, err := erc20ABI.Unpack(method, out)
	if err != nil {
		return fmt.Errorf("simulate %s on %s: %w", method, t.address.Hex(), err)
	}
	if ok, _ := values[0].(bool); !ok {
		return fmt.Errorf("%w: %s returned false for %s", ErrTokenRejected, t.address.Hex(), method)
	}
	return nil
}

func (t *erc20) hasTransferLog(receipt *types.Receipt, from, to common.Address, amount *big.Int) bool {
	topic := erc20ABI.Events["Transfer"].ID
	for _, log := range receipt.Logs {
		if log.Address != t.address || len(log.Topics) != 3 || log.Topics[0] != topic {
			continue
		}
		if common.BytesToAddress(log.Topics[1].Bytes()) != from || common.BytesToAddress(log.Topics[2].Bytes()) != to {
			continue
		}
		if bytes.Equal(log.Data, common.LeftPadBytes(amount.Bytes(), 32)) {
			return true
		}
	}
	return false
}
