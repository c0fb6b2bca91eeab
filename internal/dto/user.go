package dto

import (
	"time"

	"github.com/SscSPs/wallet_ledger/internal/core/domain"
)

// RegisterUserRequest defines the data needed to open an account and its wallet.
type RegisterUserRequest struct {
	Username        string `json:"username" binding:"required,min=3,max=150"`
	Name            string `json:"name" binding:"required,max=255"`
	City            string `json:"city" binding:"max=255"`
	Country         string `json:"country" binding:"max=255"`
	Password        string `json:"password" binding:"required,min=8,max=72"`
	PasswordConfirm string `json:"passwordConfirm" binding:"required,eqfield=Password"`
	CurrencyCode    string `json:"currencyCode" binding:"required,len=3"`
}

// UserResponse defines the public view of a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Name:      user.Name,
		City:      user.City,
		Country:   user.Country,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}

// MeResponse combines the caller's profile with their wallet.
type MeResponse struct {
	User   UserResponse   `json:"user"`
	Wallet WalletResponse `json:"wallet"`
}
