// Package redis publishes ledger events to a Redis pub/sub channel.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"

	"github.com/chainsafe/custody-bridge/pkg/bridge"
	"github.com/chainsafe/custody-bridge/pkg/events"
)

// Pool hands out connections. *redis.Pool satisfies it.
type Pool interface {
	GetContext(ctx context.Context) (redis.Conn, error)
}

// Publisher sends each event as a JSON message with PUBLISH.
type Publisher struct {
	pool    Pool
	channel string
	logger  *zap.Logger
}

func NewPublisher(pool Pool, channel string, logger *zap.Logger) *Publisher {
	return &Publisher{pool: pool, channel: channel, logger: logger}
}

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

// NewPool dials addr lazily, keeping up to maxIdle idle connections.
func NewPool(addr string, maxIdle int) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     maxIdle,
		IdleTimeout: 4 * time.Minute,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", addr, timeoutDialOptions()...)
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, evts []bridge.Event) error {
	if len(evts) == 0 {
		return nil
	}
	conn, err := p.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("redis connection: %w", err)
	}
	defer conn.Close()

	for _, e := range evts {
		payload, err := events.Encode(e)
		if err != nil {
			return fmt.Errorf("encode event %s: %w", e.ID, err)
		}
		receivers, err := redis.Int(conn.Do("PUBLISH", p.channel, payload))
		if err != nil {
			return fmt.Errorf("redis publish %s: %w", e.Type, err)
		}
		p.logger.Debug("Published event",
			zap.String("channel", p.channel),
			zap.String("type", string(e.Type)),
			zap.Int("receivers", receivers),
		)
	}
	return nil
}
