package domain

import "time"

// User represents a registered ledger user.
type User struct {
	UserID                 string     `json:"userID"`
	Username               string     `json:"username"`
	Name                   string     `json:"name"`
	City                   string     `json:"city"`
	Country                string     `json:"country"`
	PasswordHash           string     `json:"-"`
	IsAdmin                bool       `json:"isAdmin"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	Timestamps
}
