package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a supplier of products. Provider names are unique across the
// catalog; uniqueness is enforced by the database.
type Provider struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
