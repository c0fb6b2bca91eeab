package services

import (
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
)

// NewServiceContainer wires every service against the given repositories.
// repos serve reads outside a unit of work; uow serves ledger mutations.
func NewServiceContainer(cfg *config.Config, registry *domain.CurrencyRegistry, uow portsrepo.UnitOfWork, repos portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(registry, opts...),
		ExchangeRate: NewExchangeRateService(registry, repos.ExchangeRateRepo, opts...),
		Wallet:       NewWalletService(registry, repos.WalletRepo, repos.ExchangeRateRepo, opts...),
		Ledger:       NewLedgerService(registry, uow, opts...),
		Transaction:  NewTransactionService(repos.TransactionRepo, repos.WalletRepo, opts...),
		User:         NewUserService(registry, uow, repos.UserRepo, opts...),
		TokenService: NewTokenService(cfg, repos.UserRepo, opts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.WalletSvcFacade       = (*walletService)(nil)
	_ portssvc.LedgerSvc             = (*ledgerService)(nil)
	_ portssvc.TransactionSvcFacade  = (*transactionService)(nil)
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.TokenSvcFacade        = (*tokenService)(nil)
)
