package productdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

type productDB struct {
	ID        uuid.UUID       `db:"product_id"`
	TenantID  uuid.UUID       `db:"tenant_id"`
	SKU       string          `db:"sku"`
	Name      string          `db:"name"`
	Price     decimal.Decimal `db:"price"`
	Stock     int             `db:"stock"`
	Active    bool            `db:"active"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

func (p productDB) OwnerTenant() uuid.UUID {
	return p.TenantID
}

func toDBRow(bus productbus.Product) tenancy.Row {
	return tenancy.Row{
		"product_id": bus.ID.String(),
		"tenant_id":  bus.TenantID.String(),
		"sku":        bus.SKU,
		"name":       bus.Name.String(),
		"price":      bus.Price.String(),
		"stock":      bus.Stock,
		"active":     bus.Active,
		"created_at": bus.CreatedAt.UTC(),
		"updated_at": bus.UpdatedAt.UTC(),
	}
}

func toBusProduct(db productDB) (productbus.Product, error) {
	n, err := name.Parse(db.Name)
	if err != nil {
		return productbus.Product{}, fmt.Errorf("parse name: %w", err)
	}

	bus := productbus.Product{
		ID:        db.ID,
		TenantID:  db.TenantID,
		SKU:       db.SKU,
		Name:      n,
		Price:     db.Price,
		Stock:     db.Stock,
		Active:    db.Active,
		CreatedAt: db.CreatedAt.In(time.Local),
		UpdatedAt: db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusProducts(dbs []productDB) ([]productbus.Product, error) {
	bus := make([]productbus.Product, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusProduct(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}

type summaryDB struct {
	Products  int             `db:"products"`
	Units     int             `db:"units"`
	Valuation decimal.Decimal `db:"valuation"`
}
