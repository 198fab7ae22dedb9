package ingredientbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/unit"
	"github.com/shopspring/decimal"
)

// Ingredient represents a stocked brewing ingredient. Balance is derived
// from the ledger.
type Ingredient struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         name.Name
	Unit         unit.Unit
	ReorderLevel decimal.Decimal
	Balance      decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LowStock reports whether the balance has reached the reorder level. A zero
// reorder level means the ingredient is not tracked for reordering.
func (i Ingredient) LowStock() bool {
	if i.ReorderLevel.IsZero() {
		return false
	}
	return i.Balance.LessThanOrEqual(i.ReorderLevel)
}

// NewIngredient is what we require from clients when adding an Ingredient.
type NewIngredient struct {
	Name         name.Name
	Unit         unit.Unit
	ReorderLevel decimal.Decimal
	OpeningStock decimal.Decimal
}

// UpdateIngredient defines what information may be provided to modify an
// existing Ingredient. All fields are optional.
type UpdateIngredient struct {
	Name         *name.Name
	Unit         *unit.Unit
	ReorderLevel *decimal.Decimal
}

// Entry is one movement on the inventory ledger. Quantity is signed.
type Entry struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	IngredientID uuid.UUID
	Kind         Kind
	Quantity     decimal.Decimal
	Note         string
	CreatedAt    time.Time
}

// NewMovement is a stock movement requested by a client. Quantity is
// positive except for adjustments, which may be negative.
type NewMovement struct {
	Kind     Kind
	Quantity decimal.Decimal
	Note     string
}
