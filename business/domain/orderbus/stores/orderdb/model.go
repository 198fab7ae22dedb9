package orderdb

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/shopspring/decimal"
)

type orderDB struct {
	ID          uuid.UUID       `db:"order_id"`
	TenantID    uuid.UUID       `db:"tenant_id"`
	TableNumber int             `db:"table_number"`
	Status      string          `db:"status"`
	Total       decimal.Decimal `db:"total"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

func (o orderDB) OwnerTenant() uuid.UUID {
	return o.TenantID
}

func toDBRow(bus orderbus.Order) tenancy.Row {
	return tenancy.Row{
		"order_id":     bus.ID.String(),
		"tenant_id":    bus.TenantID.String(),
		"table_number": bus.TableNumber,
		"status":       bus.Status.String(),
		"total":        bus.Total.String(),
		"created_at":   bus.CreatedAt.UTC(),
		"updated_at":   bus.UpdatedAt.UTC(),
	}
}

func toBusOrder(db orderDB) (orderbus.Order, error) {
	st, err := orderbus.ParseStatus(db.Status)
	if err != nil {
		return orderbus.Order{}, fmt.Errorf("parse status: %w", err)
	}

	bus := orderbus.Order{
		ID:          db.ID,
		TenantID:    db.TenantID,
		TableNumber: db.TableNumber,
		Status:      st,
		Total:       db.Total,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusOrders(dbs []orderDB) ([]orderbus.Order, error) {
	bus := make([]orderbus.Order, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusOrder(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}

// =============================================================================

type itemDB struct {
	ID        uuid.UUID       `db:"item_id"`
	TenantID  uuid.UUID       `db:"tenant_id"`
	OrderID   uuid.UUID       `db:"order_id"`
	Name      string          `db:"name"`
	Quantity  int             `db:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	LineTotal decimal.Decimal `db:"line_total"`
}

func toDBItemRow(bus orderbus.Item) tenancy.Row {
	return tenancy.Row{
		"item_id":    bus.ID.String(),
		"tenant_id":  bus.TenantID.String(),
		"order_id":   bus.OrderID.String(),
		"name":       bus.Name,
		"quantity":   bus.Quantity,
		"unit_price": bus.UnitPrice.String(),
		"line_total": bus.LineTotal.String(),
	}
}

func toBusItems(dbs []itemDB) []orderbus.Item {
	bus := make([]orderbus.Item, len(dbs))

	for i, db := range dbs {
		bus[i] = orderbus.Item{
			ID:        db.ID,
			TenantID:  db.TenantID,
			OrderID:   db.OrderID,
			Name:      db.Name,
			Quantity:  db.Quantity,
			UnitPrice: db.UnitPrice,
			LineTotal: db.LineTotal,
		}
	}

	return bus
}
