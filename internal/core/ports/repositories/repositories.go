package repositories

// RepositoryProvider bundles the ledger repositories. A unit of work hands its
// callback a provider whose repositories all share one database transaction.
type RepositoryProvider struct {
	ExchangeRateRepo ExchangeRateRepositoryFacade
	WalletRepo       WalletRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	UserRepo         UserRepositoryFacade
}
