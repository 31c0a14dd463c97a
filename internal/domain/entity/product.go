package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item in the catalog. Every product belongs to exactly one
// Provider through ProviderID.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Stock       int
	ProviderID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
