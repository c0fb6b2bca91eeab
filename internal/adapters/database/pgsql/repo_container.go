package pgsql

import (
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider returns repositories that run each statement on the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return newRepositoryProvider(dbPool)
}

func newRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(db),
		WalletRepo:       newPgxWalletRepository(db),
		TransactionRepo:  newPgxTransactionRepository(db),
		UserRepo:         newPgxUserRepository(db),
	}
}
