package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/wallet_ledger/internal/models"
	"github.com/SscSPs/wallet_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(db DBTX) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{db: db}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate appends a rate record. The seq column keeps insertion order
// for records that share a created_at value.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (exchange_rate_id, currency_code, rate, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		modelRate.ExchangeRateID,
		modelRate.CurrencyCode,
		modelRate.Rate,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return fmt.Errorf("%w: exchange rate %s", apperrors.ErrDuplicate, modelRate.ExchangeRateID)
		}
		return fmt.Errorf("failed to save exchange rate for %s: %w", modelRate.CurrencyCode, err)
	}
	return nil
}

// FindLatestExchangeRate returns the most recent rate record for a currency.
func (r *PgxExchangeRateRepository) FindLatestExchangeRate(ctx context.Context, currencyCode string) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, currency_code, rate, created_at, created_by
		FROM exchange_rates
		WHERE currency_code = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.db.QueryRow(ctx, query, currencyCode).Scan(
		&m.ExchangeRateID,
		&m.CurrencyCode,
		&m.Rate,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest exchange rate for %s: %w", currencyCode, err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// ListExchangeRates returns up to limit records for a currency, newest first.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, currencyCode string, limit int) ([]domain.ExchangeRate, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT exchange_rate_id, currency_code, rate, created_at, created_by
		FROM exchange_rates
		WHERE currency_code = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, currencyCode, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates for %s: %w", currencyCode, err)
	}
	defer rows.Close()

	rates := []models.ExchangeRate{}
	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(&m.ExchangeRateID, &m.CurrencyCode, &m.Rate, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(rates), nil
}
