package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UnitOfWork runs functions inside a database transaction.
type UnitOfWork struct {
	pool   *pgxpool.Pool
	txOpts pgx.TxOptions
}

// UnitOfWorkOption configures a UnitOfWork.
type UnitOfWorkOption func(*UnitOfWork)

// WithIsolationLevel sets the isolation level of every transaction.
func WithIsolationLevel(level pgx.TxIsoLevel) UnitOfWorkOption {
	return func(u *UnitOfWork) {
		u.txOpts.IsoLevel = level
	}
}

// NewUnitOfWork creates a UnitOfWork. The default isolation level is READ COMMITTED;
// wallet rows are locked explicitly so that is enough for balance updates.
func NewUnitOfWork(pool *pgxpool.Pool, opts ...UnitOfWorkOption) *UnitOfWork {
	u := &UnitOfWork{pool: pool, txOpts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted}}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

var _ portsrepo.UnitOfWork = (*UnitOfWork)(nil)

// WithinTx begins a transaction, hands fn repositories bound to it, and commits
// if fn returns nil. Any error or panic rolls the transaction back.
func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) (err error) {
	tx, err := u.pool.BeginTx(ctx, u.txOpts)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
			}
		}
	}()

	if err = fn(ctx, newRepositoryProvider(tx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// ParseIsolationLevel maps a configured name such as "repeatable read" to a pgx level.
func ParseIsolationLevel(name string) (pgx.TxIsoLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "read committed", "read_committed":
		return pgx.ReadCommitted, nil
	case "repeatable read", "repeatable_read":
		return pgx.RepeatableRead, nil
	case "serializable":
		return pgx.Serializable, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction isolation level %q", apperrors.ErrValidation, name)
	}
}
