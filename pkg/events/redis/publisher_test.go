package redis

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/events"
)

// fakeConn records commands issued through Do.
type fakeConn struct {
	commands [][]any
	fail     error
	closed   bool
}

func (c *fakeConn) Close() error { c.closed = true; return nil }
func (c *fakeConn) Err() error   { return nil }
func (c *fakeConn) Do(cmd string, args ...any) (any, error) {
	if c.fail != nil {
		return nil, c.fail
	}
	c.commands = append(c.commands, append([]any{cmd}, args...))
	return int64(1), nil
}
func (c *fakeConn) Send(string, ...any) error { return nil }
func (c *fakeConn) Flush() error              { return nil }
func (c *fakeConn) Receive() (any, error)     { return nil, nil }

type fakePool struct {
	conn *fakeConn
	err  error
}

func (p *fakePool) GetContext(context.Context) (redis.Conn, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.conn, nil
}

func TestPublisher_Publish(t *testing.T) {
	conn := &fakeConn{}
	p := NewPublisher(&fakePool{conn: conn}, "bridge:events", zap.NewNop())

	e := bridge.NewEvent(bridge.EventBridgeInitiated, common.HexToAddress("0x01"))
	e.TransferID = common.Hash{0xaa}
	e.Amount = big.NewInt(990)
	e.ChainID = 137

	require.NoError(t, p.Publish(context.Background(), []bridge.Event{e, bridge.NewEvent(bridge.EventPaused, common.HexToAddress("0x02"))}))
	require.Len(t, conn.commands, 2)
	assert.True(t, conn.closed)

	cmd := conn.commands[0]
	assert.Equal(t, "PUBLISH", cmd[0])
	assert.Equal(t, "bridge:events", cmd[1])

	var msg events.Message
	require.NoError(t, json.Unmarshal(cmd[2].([]byte), &msg))
	assert.Equal(t, "BridgeInitiated", msg.Type)
	assert.Equal(t, "990", msg.Amount)
	assert.Equal(t, e.TransferID.Hex(), msg.TransferID)
	assert.Equal(t, uint64(137), msg.ChainID)
}

func TestPublisher_Errors(t *testing.T) {
	e := bridge.NewEvent(bridge.EventPaused, common.HexToAddress("0x02"))

	p := NewPublisher(&fakePool{err: errors.New("dial refused")}, "c", zap.NewNop())
	require.ErrorContains(t, p.Publish(context.Background(), []bridge.Event{e}), "dial refused")

	p = NewPublisher(&fakePool{conn: &fakeConn{fail: errors.New("broken pipe")}}, "c", zap.NewNop())
	require.ErrorContains(t, p.Publish(context.Background(), []bridge.Event{e}), "broken pipe")

	// nothing to send, no connection taken
	p = NewPublisher(&fakePool{err: errors.New("unused")}, "c", zap.NewNop())
	require.NoError(t, p.Publish(context.Background(), nil))
}
