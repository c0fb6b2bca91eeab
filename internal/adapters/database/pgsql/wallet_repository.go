package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PgxWalletRepository implements portsrepo.WalletRepositoryFacade.
type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(db DBTX) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

const walletColumns = `wallet_id, owner_id, currency_code, amount, created_at, modified_at`

func scanWallet(row pgx.Row) (models.Wallet, error) {
	var m models.Wallet
	err := row.Scan(
		&m.WalletID,
		&m.OwnerID,
		&m.CurrencyCode,
		&m.Amount,
		&m.CreatedAt,
		&m.ModifiedAt,
	)
	return m, err
}

// SaveWallet inserts a new wallet.
func (r *PgxWalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	query := `
		INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.Exec(ctx, query,
		m.WalletID,
		m.OwnerID,
		m.CurrencyCode,
		m.Amount,
		m.CreatedAt,
		m.ModifiedAt,
	)
	if err != nil {
		if pgErr, ok := isUniqueViolation(err); ok {
			if pgErr.ConstraintName == "wallets_owner_id_key" {
				return fmt.Errorf("%w: user %s already owns a wallet", apperrors.ErrDuplicate, m.OwnerID)
			}
			return fmt.Errorf("%w: wallet %s", apperrors.ErrDuplicate, m.WalletID)
		}
		return fmt.Errorf("failed to save wallet %s: %w", m.WalletID, err)
	}
	return nil
}

// UpdateWalletAmount overwrites a wallet balance.
func (r *PgxWalletRepository) UpdateWalletAmount(ctx context.Context, walletID string, amount decimal.Decimal, modifiedAt time.Time) error {
	query := `
		UPDATE wallets
		SET amount = $2, modified_at = $3
		WHERE wallet_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, walletID, amount, modifiedAt)
	if err != nil {
		return fmt.Errorf("failed to update amount of wallet %s: %w", walletID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, walletID)
	}
	return nil
}

// FindWalletByID retrieves a wallet by its ID.
func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1;`
	m, err := scanWallet(r.db.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrWalletNotFound, walletID)
		}
		return nil, fmt.Errorf("failed to find wallet %s: %w", walletID, err)
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// FindWalletByOwnerID retrieves the wallet of a user.
func (r *PgxWalletRepository) FindWalletByOwnerID(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1;`
	m, err := scanWallet(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no wallet for user %s", apperrors.ErrWalletNotFound, ownerID)
		}
		return nil, fmt.Errorf("failed to find wallet of user %s: %w", ownerID, err)
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// FindWalletsByIDsForUpdate retrieves wallets and locks their rows until the
// surrounding transaction ends. Rows are locked in wallet_id order so two
// payments between the same wallets cannot deadlock.
// Must be called within a unit of work.
func (r *PgxWalletRepository) FindWalletsByIDsForUpdate(ctx context.Context, walletIDs []string) (map[string]domain.Wallet, error) {
	if len(walletIDs) == 0 {
		return map[string]domain.Wallet{}, nil
	}
	ids := uniqueSorted(walletIDs)

	query := `
		SELECT ` + walletColumns + `
		FROM wallets
		WHERE wallet_id = ANY($1)
		ORDER BY wallet_id
		FOR UPDATE;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets for update: %w", err)
	}
	defer rows.Close()

	wallets := make(map[string]domain.Wallet, len(ids))
	for rows.Next() {
		m, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked wallet row: %w", err)
		}
		wallets[m.WalletID] = mapping.ToDomainWallet(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked wallet rows: %w", err)
	}

	if len(wallets) != len(ids) {
		missing := []string{}
		for _, id := range ids {
			if _, found := wallets[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some wallets requested for update lock were not found", "missing_wallets", missing)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrWalletNotFound, missing)
	}

	return wallets, nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
