package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/wallet_ledger/internal/apperrors"
	"github.com/SscSPs/wallet_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger/internal/dto"
	"github.com/SscSPs/wallet_ledger/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	registry *domain.CurrencyRegistry
	uow      portsrepo.UnitOfWork
	userRepo portsrepo.UserReader
}

// NewUserService creates a new user service. Users and their wallets are
// created together through uow.
func NewUserService(registry *domain.CurrencyRegistry, uow portsrepo.UnitOfWork, userRepo portsrepo.UserReader, opts ...ServiceOption) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(opts...),
		registry:    registry,
		uow:         uow,
		userRepo:    userRepo,
	}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username in service: %w", err)
	}
	return user, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, *domain.Wallet, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}
	if req.Password != req.PasswordConfirm {
		return nil, nil, fmt.Errorf("%w: passwords do not match", apperrors.ErrValidation)
	}
	code, err := s.registry.Normalize(req.CurrencyCode)
	if err != nil {
		return nil, nil, err
	}

	user, wallet, err := s.createUserWithWallet(ctx, domain.User{
		Username: username,
		Name:     req.Name,
		City:     req.City,
		Country:  req.Country,
	}, req.Password, code)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("wallet_id", wallet.WalletID),
		slog.String("currency_code", code))
	return user, wallet, nil
}

// createUserWithWallet stores a user and an empty wallet in one unit of work.
func (s *userService) createUserWithWallet(ctx context.Context, user domain.User, password, currencyCode string) (*domain.User, *domain.Wallet, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	user.UserID = uuid.NewString()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.ModifiedAt = now

	wallet, err := newWallet(s.registry, user.UserID, currencyCode, now)
	if err != nil {
		return nil, nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		if err := repos.UserRepo.SaveUser(ctx, user); err != nil {
			return err
		}
		return repos.WalletRepo.SaveWallet(ctx, *wallet)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, user.Username)
		}
		s.LogError(ctx, err, "Failed to create user", slog.String("username", user.Username))
		return nil, nil, fmt.Errorf("failed to create user in service: %w", err)
	}
	return &user, wallet, nil
}

func (s *userService) EnsureAdmin(ctx context.Context, username, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: admin username and password are required", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		if !existing.IsAdmin {
			s.GetLogger(ctx).Warn("Configured admin username belongs to a regular user", slog.String("username", username))
		}
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	admin, _, err := s.createUserWithWallet(ctx, domain.User{
		Username: username,
		Name:     "Administrator",
		IsAdmin:  true,
	}, password, s.registry.Base())
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Admin user created", slog.String("user_id", admin.UserID), slog.String("username", username))
	return admin, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}
