// Package memory implements the repository ports on top of process memory.
// It is used for tests and for running the service without PostgreSQL.
//
// Units of work run one at a time on a private copy of the whole state, so
// every ledger operation costs O(wallets + users + rates + transactions).
// That is fine for tests and local development, not for production volumes.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

// state is everything the store holds. Units of work operate on a private copy.
type state struct {
	rates         map[string][]domain.ExchangeRate // per currency, insertion order
	wallets       map[string]domain.Wallet
	walletByOwner map[string]string
	transactions  []domain.Transaction
	users         map[string]domain.User
	userByName    map[string]string
}

func newState() *state {
	return &state{
		rates:         make(map[string][]domain.ExchangeRate),
		wallets:       make(map[string]domain.Wallet),
		walletByOwner: make(map[string]string),
		users:         make(map[string]domain.User),
		userByName:    make(map[string]string),
	}
}

func (s *state) clone() *state {
	c := &state{
		rates:         make(map[string][]domain.ExchangeRate, len(s.rates)),
		wallets:       make(map[string]domain.Wallet, len(s.wallets)),
		walletByOwner: make(map[string]string, len(s.walletByOwner)),
		transactions:  s.transactions[:len(s.transactions):len(s.transactions)],
		users:         make(map[string]domain.User, len(s.users)),
		userByName:    make(map[string]string, len(s.userByName)),
	}
	for k, v := range s.rates {
		c.rates[k] = v[:len(v):len(v)]
	}
	for k, v := range s.wallets {
		c.wallets[k] = v
	}
	for k, v := range s.walletByOwner {
		c.walletByOwner[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.userByName {
		c.userByName[k] = v
	}
	return c
}

// Store is a thread-safe in-memory database.
//
// Units of work are serialised by writeMu and run against a copy of the data
// that replaces the live state only on success. Writes made outside a unit of
// work also take writeMu so they never interleave with one.
type Store struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	data    *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newState()}
}

var _ portsrepo.UnitOfWork = (*Store)(nil)

// Repositories returns repositories that operate directly on the live data.
func (s *Store) Repositories() portsrepo.RepositoryProvider {
	return s.provider(nil)
}

func (s *Store) provider(work *state) portsrepo.RepositoryProvider {
	b := base{store: s, work: work}
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: &exchangeRateRepository{base: b},
		WalletRepo:       &walletRepository{base: b},
		TransactionRepo:  &transactionRepository{base: b},
		UserRepo:         &userRepository{base: b},
	}
}

// WithinTx runs fn against a private copy of the data and publishes the copy
// only if fn returns nil. Panics discard the copy and are re-raised.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, repos portsrepo.RepositoryProvider) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()

	if err := fn(ctx, s.provider(work)); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("unit of work aborted: %w", err)
	}

	s.mu.Lock()
	s.data = work
	s.mu.Unlock()
	return nil
}

// base gives every repository the same view: the unit of work's copy when
// there is one, otherwise the live data behind the store locks.
type base struct {
	store *Store
	work  *state
}

func (b base) read(fn func(*state) error) error {
	if b.work != nil {
		return fn(b.work)
	}
	b.store.mu.RLock()
	defer b.store.mu.RUnlock()
	return fn(b.store.data)
}

func (b base) write(fn func(*state) error) error {
	if b.work != nil {
		return fn(b.work)
	}
	b.store.writeMu.Lock()
	defer b.store.writeMu.Unlock()
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	return fn(b.store.data)
}
