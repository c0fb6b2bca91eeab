package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
)

type userRepository struct {
	base
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

func (r *userRepository) SaveUser(_ context.Context, user domain.User) error {
	return r.write(func(s *state) error {
		if _, exists := s.users[user.UserID]; exists {
			return fmt.Errorf("%w: user %s", apperrors.ErrDuplicate, user.UserID)
		}
		if _, taken := s.userByName[user.Username]; taken {
			return fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, user.Username)
		}
		s.users[user.UserID] = user
		s.userByName[user.Username] = user.UserID
		return nil
	})
}

func (r *userRepository) UpdateRefreshToken(_ context.Context, userID string, refreshTokenHash string, expiry *time.Time) error {
	return r.write(func(s *state) error {
		user, ok := s.users[userID]
		if !ok {
			return apperrors.ErrNotFound
		}
		user.RefreshTokenHash = refreshTokenHash
		user.RefreshTokenExpiryTime = expiry
		user.ModifiedAt = time.Now().UTC()
		s.users[userID] = user
		return nil
	})
}

func (r *userRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	var found *domain.User
	err := r.read(func(s *state) error {
		if user, ok := s.users[userID]; ok {
			found = &user
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *userRepository) FindUserByUsername(_ context.Context, username string) (*domain.User, error) {
	var found *domain.User
	err := r.read(func(s *state) error {
		if id, ok := s.userByName[username]; ok {
			user := s.users[id]
			found = &user
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}
