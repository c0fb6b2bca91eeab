package models

import "time"

// Timestamps mirrors the created_at/modified_at column pair.
type Timestamps struct {
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
}
