package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/adapters/database/memory"
	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/core/services"
	"github.com/SscSPs/wallet_ledger/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var testEpoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memory.Store
	repos     portsrepo.RepositoryProvider
	registry  *domain.CurrencyRegistry
	publisher *recordingPublisher
	collector *metrics.Collector
	rates     portssvc.ExchangeRateSvcFacade
	wallets   portssvc.WalletSvcFacade
	ledger    portssvc.LedgerSvc
	history   portssvc.TransactionSvcFacade
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.repos = s.store.Repositories()
	s.registry = domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	s.publisher = &recordingPublisher{}
	s.collector = metrics.NewCollector(nil)

	opts := []services.ServiceOption{
		services.WithClock(tickingClock(testEpoch)),
		services.WithEventPublisher(s.publisher),
		services.WithMetrics(s.collector),
	}
	s.rates = services.NewExchangeRateService(s.registry, s.repos.ExchangeRateRepo, opts...)
	s.wallets = services.NewWalletService(s.registry, s.repos.WalletRepo, s.repos.ExchangeRateRepo, opts...)
	s.ledger = services.NewLedgerService(s.registry, s.store, opts...)
	s.history = services.NewTransactionService(s.repos.TransactionRepo, s.repos.WalletRepo, opts...)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) seedWallet(id, currency, amount string) *domain.Wallet {
	wallet := domain.Wallet{
		WalletID:     id,
		OwnerID:      "owner-" + id,
		CurrencyCode: currency,
		Amount:       dec(amount),
		Timestamps:   domain.Timestamps{CreatedAt: testEpoch, ModifiedAt: testEpoch},
	}
	s.Require().NoError(s.repos.WalletRepo.SaveWallet(s.ctx, wallet))
	return &wallet
}

func (s *LedgerServiceTestSuite) setRate(currency, rate string) {
	_, err := s.rates.SetRate(s.ctx, currency, dec(rate), "admin")
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) balance(id string) decimal.Decimal {
	wallet, err := s.repos.WalletRepo.FindWalletByID(s.ctx, id)
	s.Require().NoError(err)
	return wallet.Amount
}

func (s *LedgerServiceTestSuite) assertBalance(id, want string) {
	got := s.balance(id)
	s.True(dec(want).Equal(got), "wallet %s: want %s, got %s", id, want, got)
}

func (s *LedgerServiceTestSuite) TestCharge_ConvertsIntoWalletCurrency() {
	s.setRate(domain.EUR, "2")
	s.seedWallet("a", domain.EUR, "1")

	wallet, err := s.ledger.Charge(s.ctx, domain.WalletID("a"), dec("10"), "usd")
	s.Require().NoError(err)

	s.Equal("21.00", wallet.Amount.StringFixed(2))
	s.assertBalance("a", "21")

	txns, _, err := s.history.ListWalletTransactions(s.ctx, domain.WalletID("a"), domain.TransactionFilter{})
	s.Require().NoError(err)
	s.Empty(txns, "charges do not record transactions")

	events := s.publisher.Events()
	s.Require().Len(events, 2)
	s.Equal(domain.EventWalletCharged, events[1].EventType)
	s.Equal("a", events[1].ToWalletID)
	s.Equal(domain.USD, events[1].CurrencyCode)
}

func (s *LedgerServiceTestSuite) TestCharge_ResolvesByOwnerAndByValue() {
	wallet := s.seedWallet("a", domain.USD, "0")

	_, err := s.ledger.Charge(s.ctx, domain.UserID("owner-a"), dec("5.25"), domain.USD)
	s.Require().NoError(err)

	// A stale value must not overwrite the stored balance.
	updated, err := s.ledger.Charge(s.ctx, wallet, dec("1"), domain.USD)
	s.Require().NoError(err)
	s.Equal("6.25", updated.Amount.StringFixed(2))
}

func (s *LedgerServiceTestSuite) TestCharge_ZeroAmountIsAllowed() {
	s.seedWallet("a", domain.USD, "3")

	wallet, err := s.ledger.Charge(s.ctx, domain.WalletID("a"), decimal.Zero, domain.USD)
	s.Require().NoError(err)
	s.Equal("3.00", wallet.Amount.StringFixed(2))
}

func (s *LedgerServiceTestSuite) TestCharge_RoundsHalfUp() {
	s.setRate(domain.EUR, "0.25")
	s.seedWallet("a", domain.EUR, "0")

	// 0.10 USD * 0.25 = 0.025 EUR
	wallet, err := s.ledger.Charge(s.ctx, domain.WalletID("a"), dec("0.10"), domain.USD)
	s.Require().NoError(err)
	s.Equal("0.03", wallet.Amount.StringFixed(2))
}

func (s *LedgerServiceTestSuite) TestCharge_Failures() {
	s.seedWallet("a", domain.CAD, "1")

	_, err := s.ledger.Charge(s.ctx, domain.WalletID("a"), dec("10"), domain.USD)
	s.ErrorIs(err, apperrors.ErrRateNotSet)
	s.assertBalance("a", "1")

	_, err = s.ledger.Charge(s.ctx, domain.WalletID("missing"), dec("10"), domain.USD)
	s.ErrorIs(err, apperrors.ErrWalletNotFound)

	_, err = s.ledger.Charge(s.ctx, domain.WalletID("a"), dec("10"), "GBP")
	s.ErrorIs(err, apperrors.ErrInvalidCurrency)

	_, err = s.ledger.Charge(s.ctx, domain.WalletID("a"), dec("1.005"), domain.USD)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = s.ledger.Charge(s.ctx, nil, dec("1"), domain.USD)
	s.ErrorIs(err, apperrors.ErrWalletNotFound)

	count, err := testutil.GatherAndCount(s.collector.Registry(), "ledger_operations_total")
	s.Require().NoError(err)
	s.Equal(1, count, "only the charge failure series exists")
}

func (s *LedgerServiceTestSuite) TestMakePayment_SameCurrency() {
	s.setRate(domain.EUR, "2")
	s.seedWallet("a", domain.EUR, "60")
	s.seedWallet("b", domain.EUR, "100")

	txn, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("10"), domain.EUR)
	s.Require().NoError(err)

	s.assertBalance("a", "50")
	s.assertBalance("b", "110")
	s.Require().NotNil(txn.FromWalletID)
	s.Equal("a", *txn.FromWalletID)
	s.Equal("b", txn.ToWalletID)
	s.Equal(domain.EUR, txn.CurrencyCode)
	s.True(dec("10").Equal(txn.Amount))

	stored, err := s.history.GetTransaction(s.ctx, txn.TransactionID)
	s.Require().NoError(err)
	s.Equal(txn.TransactionID, stored.TransactionID)
}

func (s *LedgerServiceTestSuite) TestMakePayment_CrossCurrency() {
	s.setRate(domain.EUR, "2")
	s.seedWallet("a", domain.USD, "10")
	s.seedWallet("b", domain.EUR, "1")

	txn, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("3"), domain.USD)
	s.Require().NoError(err)

	s.assertBalance("a", "7")
	s.assertBalance("b", "7")
	s.Equal(domain.USD, txn.CurrencyCode, "the stated currency is recorded")

	events := s.publisher.Events()
	last := events[len(events)-1]
	s.Equal(domain.EventPaymentCompleted, last.EventType)
	s.Equal(txn.TransactionID, last.TransactionID)
	s.Equal("a", last.FromWalletID)
}

func (s *LedgerServiceTestSuite) TestMakePayment_StatedInThirdCurrency() {
	s.setRate(domain.EUR, "2")
	s.setRate(domain.CAD, "4")
	s.seedWallet("a", domain.EUR, "10")
	s.seedWallet("b", domain.USD, "0")

	// 8 CAD = 4 EUR = 2 USD
	_, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("8"), domain.CAD)
	s.Require().NoError(err)

	s.assertBalance("a", "6")
	s.assertBalance("b", "2")
}

func (s *LedgerServiceTestSuite) TestMakePayment_ToSelfKeepsBalance() {
	s.seedWallet("a", domain.USD, "10")

	_, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.UserID("owner-a"), dec("4"), domain.USD)
	s.Require().NoError(err)
	s.assertBalance("a", "10")
}

func (s *LedgerServiceTestSuite) TestMakePayment_SameCurrencyWalletsConserveMoneyAcrossRounding() {
	s.setRate(domain.EUR, "0.66")
	s.seedWallet("a", domain.EUR, "10")
	s.seedWallet("b", domain.EUR, "0")

	// 2.75 USD is 1.815 EUR, which rounds to 1.82 on both sides.
	_, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("2.75"), domain.USD)
	s.Require().NoError(err)

	s.assertBalance("a", "8.18")
	s.assertBalance("b", "1.82")
	s.True(dec("10").Equal(s.balance("a").Add(s.balance("b"))))
}

func (s *LedgerServiceTestSuite) TestMakePayment_ToSelfInOtherCurrencyKeepsBalance() {
	s.setRate(domain.EUR, "0.66")
	s.seedWallet("a", domain.EUR, "10")

	for i := 0; i < 100; i++ {
		_, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("a"), dec("2.75"), domain.USD)
		s.Require().NoError(err)
	}
	s.assertBalance("a", "10")
}

func (s *LedgerServiceTestSuite) TestMakePayment_NotEnoughMoneyRollsBack() {
	s.setRate(domain.EUR, "2")
	s.seedWallet("a", domain.EUR, "5")
	s.seedWallet("b", domain.USD, "0")

	// 5 EUR is 2.50 USD
	_, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("2.51"), domain.USD)
	s.ErrorIs(err, apperrors.ErrNotEnoughMoney)

	s.assertBalance("a", "5")
	s.assertBalance("b", "0")
	txns, _, err := s.history.ListWalletTransactions(s.ctx, domain.WalletID("a"), domain.TransactionFilter{})
	s.Require().NoError(err)
	s.Empty(txns)

	_, err = s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("2.50"), domain.USD)
	s.Require().NoError(err)
	s.assertBalance("a", "0")
	s.assertBalance("b", "2.5")
}

func (s *LedgerServiceTestSuite) TestMakePayment_Failures() {
	s.seedWallet("a", domain.USD, "10")
	s.seedWallet("c", domain.CAD, "10")

	_, err := s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("missing"), dec("1"), domain.USD)
	s.ErrorIs(err, apperrors.ErrWalletNotFound)

	_, err = s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("c"), dec("1"), domain.USD)
	s.ErrorIs(err, apperrors.ErrRateNotSet)

	_, err = s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("c"), decimal.Zero, domain.USD)
	s.ErrorIs(err, apperrors.ErrInvalidAmount)

	_, err = s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("c"), dec("1"), "XXX")
	s.ErrorIs(err, apperrors.ErrInvalidCurrency)

	s.assertBalance("a", "10")
	s.assertBalance("c", "10")
}

func (s *LedgerServiceTestSuite) TestConcurrentPaymentsConserveMoney() {
	s.seedWallet("a", domain.USD, "100")
	s.seedWallet("b", domain.USD, "100")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.ledger.MakePayment(s.ctx, domain.WalletID("a"), domain.WalletID("b"), dec("7"), domain.USD)
		}()
		go func() {
			defer wg.Done()
			_, _ = s.ledger.MakePayment(s.ctx, domain.WalletID("b"), domain.WalletID("a"), dec("3"), domain.USD)
		}()
	}
	wg.Wait()

	a, b := s.balance("a"), s.balance("b")
	s.False(a.IsNegative())
	s.False(b.IsNegative())
	s.True(dec("200").Equal(a.Add(b)), "total must stay 200, got %s + %s", a, b)
}

func TestLedgerService_RejectsBadAmountBeforeTouchingStorage(t *testing.T) {
	registry := domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	uow := new(MockUnitOfWork)
	ledger := services.NewLedgerService(registry, uow)
	ctx := context.Background()

	_, err := ledger.Charge(ctx, domain.WalletID("a"), dec("-4"), domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = ledger.MakePayment(ctx, domain.WalletID("a"), domain.WalletID("b"), dec("-4"), domain.USD)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	uow.AssertNotCalled(t, "WithinTx", mock.Anything, mock.Anything)
}

func TestLedgerService_PropagatesUnitOfWorkErrors(t *testing.T) {
	registry := domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	uow := new(MockUnitOfWork)
	boom := errors.New("connection refused")
	uow.On("WithinTx", mock.Anything, mock.Anything).Return(boom)
	publisher := &recordingPublisher{}
	ledger := services.NewLedgerService(registry, uow, services.WithEventPublisher(publisher))

	_, err := ledger.MakePayment(context.Background(), domain.WalletID("a"), domain.WalletID("b"), dec("1"), domain.USD)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, publisher.Events(), "nothing is published for a failed unit of work")
	uow.AssertExpectations(t)
}

func TestLedgerService_PublishFailureDoesNotFailTheOperation(t *testing.T) {
	store := memory.NewStore()
	registry := domain.MustCurrencyRegistry(domain.USD, domain.DefaultCurrencies())
	publisher := &recordingPublisher{err: errors.New("redis down")}
	ledger := services.NewLedgerService(registry, store, services.WithEventPublisher(publisher))
	ctx := context.Background()

	require.NoError(t, store.Repositories().WalletRepo.SaveWallet(ctx, domain.Wallet{
		WalletID: "a", OwnerID: "u", CurrencyCode: domain.USD, Amount: decimal.Zero,
	}))

	wallet, err := ledger.Charge(ctx, domain.WalletID("a"), dec("2"), domain.USD)
	require.NoError(t, err)
	assert.Equal(t, "2.00", wallet.Amount.StringFixed(2))
	assert.Len(t, publisher.Events(), 1)
}
