package domain

import "time"

// Timestamps holds the creation and last modification time of a mutable entity.
type Timestamps struct {
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}
