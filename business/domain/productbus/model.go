package productbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

// Product represents an item a retail store sells.
type Product struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	SKU       string
	Name      name.Name
	Price     decimal.Decimal
	Stock     int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct is what we require from clients when adding a Product.
type NewProduct struct {
	SKU   string
	Name  name.Name
	Price decimal.Decimal
	Stock int
}

// UpdateProduct defines what information may be provided to modify an
// existing Product. All fields are optional.
type UpdateProduct struct {
	SKU    *string
	Name   *name.Name
	Price  *decimal.Decimal
	Stock  *int
	Active *bool
}

// Summary reports the size and value of the catalogue.
type Summary struct {
	Products  int
	Units     int
	Valuation decimal.Decimal
}
