package services

import (
	"context"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// LedgerEventPublisher announces committed ledger changes to other systems.
type LedgerEventPublisher interface {
	PublishLedgerEvent(ctx context.Context, event domain.LedgerEvent) error
}
