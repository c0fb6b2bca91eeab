package repositories

import "context"

// UnitOfWork runs a function atomically against the store.
//
// The repositories handed to fn are bound to the unit of work: their reads see
// its writes, and nothing they write is visible to others until fn returns nil.
// If fn returns an error or panics every write is rolled back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos RepositoryProvider) error) error
}
