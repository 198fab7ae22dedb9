package ingredientdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/unit"
	"github.com/shopspring/decimal"
)

type ingredientDB struct {
	ID           uuid.UUID       `db:"ingredient_id"`
	TenantID     uuid.UUID       `db:"tenant_id"`
	Name         string          `db:"name"`
	Unit         string          `db:"unit"`
	ReorderLevel decimal.Decimal `db:"reorder_level"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (i ingredientDB) OwnerTenant() uuid.UUID {
	return i.TenantID
}

func toDBRow(bus ingredientbus.Ingredient) tenancy.Row {
	return tenancy.Row{
		"ingredient_id": bus.ID.String(),
		"tenant_id":     bus.TenantID.String(),
		"name":          bus.Name.String(),
		"unit":          bus.Unit.String(),
		"reorder_level": bus.ReorderLevel.String(),
		"created_at":    bus.CreatedAt.UTC(),
		"updated_at":    bus.UpdatedAt.UTC(),
	}
}

func toBusIngredient(db ingredientDB) (ingredientbus.Ingredient, error) {
	n, err := name.Parse(db.Name)
	if err != nil {
		return ingredientbus.Ingredient{}, fmt.Errorf("parse name: %w", err)
	}

	u, err := unit.Parse(db.Unit)
	if err != nil {
		return ingredientbus.Ingredient{}, fmt.Errorf("parse unit: %w", err)
	}

	bus := ingredientbus.Ingredient{
		ID:           db.ID,
		TenantID:     db.TenantID,
		Name:         n,
		Unit:         u,
		ReorderLevel: db.ReorderLevel,
		Balance:      decimal.Zero,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusIngredients(dbs []ingredientDB) ([]ingredientbus.Ingredient, error) {
	bus := make([]ingredientbus.Ingredient, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusIngredient(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}

// =============================================================================

type entryDB struct {
	ID           uuid.UUID       `db:"entry_id"`
	TenantID     uuid.UUID       `db:"tenant_id"`
	IngredientID uuid.UUID       `db:"ingredient_id"`
	Kind         string          `db:"kind"`
	Quantity     decimal.Decimal `db:"quantity"`
	Note         string          `db:"note"`
	CreatedAt    time.Time       `db:"created_at"`
}

func toDBEntryRow(bus ingredientbus.Entry) tenancy.Row {
	return tenancy.Row{
		"entry_id":      bus.ID.String(),
		"tenant_id":     bus.TenantID.String(),
		"ingredient_id": bus.IngredientID.String(),
		"kind":          bus.Kind.String(),
		"quantity":      bus.Quantity.String(),
		"note":          bus.Note,
		"created_at":    bus.CreatedAt.UTC(),
	}
}

func toBusEntries(dbs []entryDB) ([]ingredientbus.Entry, error) {
	bus := make([]ingredientbus.Entry, len(dbs))

	for i, db := range dbs {
		k, err := ingredientbus.ParseKind(db.Kind)
		if err != nil {
			return nil, fmt.Errorf("parse kind: %w", err)
		}

		bus[i] = ingredientbus.Entry{
			ID:           db.ID,
			TenantID:     db.TenantID,
			IngredientID: db.IngredientID,
			Kind:         k,
			Quantity:     db.Quantity,
			Note:         db.Note,
			CreatedAt:    db.CreatedAt.In(time.Local),
		}
	}

	return bus, nil
}

type balanceDB struct {
	IngredientID uuid.UUID       `db:"ingredient_id"`
	Balance      decimal.Decimal `db:"balance"`
}
