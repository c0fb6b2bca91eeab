package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() domain.LedgerEvent {
	return domain.LedgerEvent{
		EventType:     domain.EventPaymentCompleted,
		TransactionID: "t-1",
		FromWalletID:  "w-1",
		ToWalletID:    "w-2",
		Amount:        decimal.RequireFromString("3.00"),
		CurrencyCode:  "USD",
		OccurredAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEncodeEvent(t *testing.T) {
	payload, err := encodeEvent(sampleEvent())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "payment.completed", decoded["eventType"])
	assert.Equal(t, "t-1", decoded["transactionID"])
	assert.Equal(t, "3", decoded["amount"])
}

func TestRedisPublisher_ReportsConnectionErrors(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	p := NewRedisPublisher(rdb, "")
	assert.Equal(t, DefaultChannel, p.channel)

	err := p.PublishLedgerEvent(context.Background(), sampleEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish event")
}

func TestNewRedisClient(t *testing.T) {
	client, err := NewRedisClient("redis://localhost:6379/2")
	require.NoError(t, err)
	assert.Equal(t, 2, client.Options().DB)
	_ = client.Close()

	_, err = NewRedisClient("http://not-redis")
	assert.Error(t, err)
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.PublishLedgerEvent(context.Background(), sampleEvent()))
	assert.Contains(t, buf.String(), `"event_type":"payment.completed"`)
	assert.Contains(t, buf.String(), `"amount":"3.00"`)
}
