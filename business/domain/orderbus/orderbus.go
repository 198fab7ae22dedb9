// Package orderbus provides business access to restaurant orders.
package orderbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
	"github.com/shopspring/decimal"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound   = errors.New("order not found")
	ErrNoItems    = errors.New("an order needs at least one item")
	ErrTransition = errors.New("order status change not allowed")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, scope tenancy.Scope, o Order) error
	CreateItems(ctx context.Context, scope tenancy.Scope, items []Item) error
	UpdateStatus(ctx context.Context, scope tenancy.Scope, o Order) error
	Delete(ctx context.Context, scope tenancy.Scope, o Order) error
	Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Order, error)
	Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, scope tenancy.Scope, orderID uuid.UUID) (Order, error)
	QueryItems(ctx context.Context, scope tenancy.Scope, orderID uuid.UUID) ([]Item, error)
}

// Core manages the set of APIs for order access.
type Core struct {
	storer Storer
}

// NewCore constructs an order core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new core value that will use the
// specified transaction in any store related calls.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return NewCore(storer), nil
}

// Create opens an order with its items and computes the total. Run it
// inside a transaction to keep the order and its items together.
func (c *Core) Create(ctx context.Context, scope tenancy.Scope, no NewOrder) (Order, error) {
	ctx, span := otel.AddSpan(ctx, "business.orderbus.create")
	defer span.End()

	if len(no.Items) == 0 {
		return Order{}, ErrNoItems
	}

	now := time.Now()

	o := Order{
		ID:          uuid.New(),
		TenantID:    scope.TenantID(),
		TableNumber: no.TableNumber,
		Status:      StatusOpen,
		Total:       decimal.Zero,
		Items:       make([]Item, len(no.Items)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for i, ni := range no.Items {
		line := ni.UnitPrice.Mul(decimal.NewFromInt(int64(ni.Quantity)))

		o.Items[i] = Item{
			ID:        uuid.New(),
			TenantID:  scope.TenantID(),
			OrderID:   o.ID,
			Name:      ni.Name,
			Quantity:  ni.Quantity,
			UnitPrice: ni.UnitPrice,
			LineTotal: line,
		}

		o.Total = o.Total.Add(line)
	}

	if err := c.storer.Create(ctx, scope, o); err != nil {
		return Order{}, fmt.Errorf("create: %w", err)
	}

	if err := c.storer.CreateItems(ctx, scope, o.Items); err != nil {
		return Order{}, fmt.Errorf("createitems: %w", err)
	}

	return o, nil
}

// ChangeStatus moves the order along OPEN, SERVED, PAID or to CANCELLED.
func (c *Core) ChangeStatus(ctx context.Context, scope tenancy.Scope, o Order, next Status) (Order, error) {
	ctx, span := otel.AddSpan(ctx, "business.orderbus.changestatus")
	defer span.End()

	if !o.Status.CanMoveTo(next) {
		return Order{}, fmt.Errorf("%s to %s: %w", o.Status, next, ErrTransition)
	}

	o.Status = next
	o.UpdatedAt = time.Now()

	if err := c.storer.UpdateStatus(ctx, scope, o); err != nil {
		return Order{}, fmt.Errorf("updatestatus: %w", err)
	}

	return o, nil
}

// Delete removes the order and its items.
func (c *Core) Delete(ctx context.Context, scope tenancy.Scope, o Order) error {
	ctx, span := otel.AddSpan(ctx, "business.orderbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, scope, o); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing orders without their items.
func (c *Core) Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Order, error) {
	ctx, span := otel.AddSpan(ctx, "business.orderbus.query")
	defer span.End()

	orders, err := c.storer.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return orders, nil
}

// Count returns the total number of orders.
func (c *Core) Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.orderbus.count")
	defer span.End()

	return c.storer.Count(ctx, scope, filter)
}

// QueryByID finds the order by the specified ID and loads its items.
func (c *Core) QueryByID(ctx context.Context, scope tenancy.Scope, orderID uuid.UUID) (Order, error) {
	ctx, span := otel.AddSpan(ctx, "business.orderbus.querybyid")
	defer span.End()

	o, err := c.storer.QueryByID(ctx, scope, orderID)
	if err != nil {
		return Order{}, fmt.Errorf("query: orderID[%s]: %w", orderID, err)
	}

	items, err := c.storer.QueryItems(ctx, scope, orderID)
	if err != nil {
		return Order{}, fmt.Errorf("queryitems: orderID[%s]: %w", orderID, err)
	}

	o.Items = items

	return o, nil
}
