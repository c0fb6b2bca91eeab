package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
	"github.com/SscSPs/wallet_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db DBTX) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, from_wallet_id, to_wallet_id, amount, currency_code, created_at`

// foreignKeyViolation is the SQLSTATE for foreign_key_violation.
const foreignKeyViolation = "23503"

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.FromWalletID,
		&m.ToWalletID,
		&m.Amount,
		&m.CurrencyCode,
		&m.CreatedAt,
	)
	return m, err
}

// SaveTransaction appends a transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		m.TransactionID,
		m.FromWalletID,
		m.ToWalletID,
		m.Amount,
		m.CurrencyCode,
		m.CreatedAt,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrDuplicate, m.TransactionID)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, pgErr.Detail)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByWalletID returns the wallet's history oldest first using
// keyset pagination on (created_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactionsByWalletID(ctx context.Context, walletID string, filter domain.TransactionFilter) ([]domain.Transaction, *string, error) {
	limit := pagination.ClampLimit(filter.Limit)

	conditions := []string{"(from_wallet_id = $1 OR to_wallet_id = $1)"}
	args := []any{walletID}
	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.After != nil {
		conditions = append(conditions, "created_at >= "+addArg(*filter.After))
	}
	if filter.Before != nil {
		conditions = append(conditions, "created_at <= "+addArg(*filter.Before))
	}
	if filter.NextToken != nil && *filter.NextToken != "" {
		cursorAt, cursorID, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		conditions = append(conditions, fmt.Sprintf("(created_at, transaction_id) > (%s, %s)", addArg(cursorAt), addArg(cursorID)))
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at ASC, transaction_id ASC
		LIMIT ` + addArg(limit+1) + `;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions of wallet %s: %w", walletID, err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		nextToken = &token
	}

	return mapping.ToDomainTransactionSlice(txns), nextToken, nil
}
