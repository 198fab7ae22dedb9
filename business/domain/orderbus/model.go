package orderbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a table's tab.
type Order struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	TableNumber int
	Status      Status
	Total       decimal.Decimal
	Items       []Item
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is a line on an order.
type Item struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	OrderID   uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// NewOrder is what we require from clients when adding an Order.
type NewOrder struct {
	TableNumber int
	Items       []NewItem
}

// NewItem is a line requested on a new order.
type NewItem struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}
