package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. ProviderID references providers.id
// with ON DELETE RESTRICT so a provider cannot disappear under its products.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(12,2);not null"`
	Stock       int       `gorm:"not null;default:0"`
	ProviderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Provider *ProviderModel `gorm:"foreignKey:ProviderID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
