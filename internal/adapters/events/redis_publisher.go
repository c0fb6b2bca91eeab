// Package events delivers committed ledger events to other systems.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the Redis pub/sub channel ledger events are published on.
const DefaultChannel = "ledger_events"

// RedisPublisher publishes ledger events as JSON on a Redis channel.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

var _ portssvc.LedgerEventPublisher = (*RedisPublisher)(nil)

// NewRedisPublisher creates a publisher. An empty channel means DefaultChannel.
func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{rdb: rdb, channel: channel}
}

// NewRedisClient builds a client from a redis:// URL.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

// PublishLedgerEvent publishes a ledger event to Redis
func (p *RedisPublisher) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	payload, err := encodeEvent(event)
	if err != nil {
		return err
	}

	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "Published ledger event",
		slog.String("event_type", string(event.EventType)),
		slog.String("channel", p.channel),
		slog.String("transaction_id", event.TransactionID))
	return nil
}

func encodeEvent(event domain.LedgerEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	return payload, nil
}

// LogPublisher writes ledger events to the structured log.
// It is used when no message broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

var _ portssvc.LedgerEventPublisher = (*LogPublisher)(nil)

// NewLogPublisher creates a LogPublisher; a nil logger means slog.Default().
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error {
	p.logger.InfoContext(ctx, "Ledger event",
		slog.String("event_type", string(event.EventType)),
		slog.String("transaction_id", event.TransactionID),
		slog.String("from_wallet_id", event.FromWalletID),
		slog.String("to_wallet_id", event.ToWalletID),
		slog.String("amount", event.Amount.StringFixed(domain.MoneyScale)),
		slog.String("currency", event.CurrencyCode))
	return nil
}
