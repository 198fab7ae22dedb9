// Package productbus provides business access to the retail catalogue.
package productbus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound  = errors.New("product not found")
	ErrUniqueSKU = errors.New("sku is not unique")
	ErrStock     = errors.New("stock cannot be negative")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, scope tenancy.Scope, prd Product) error
	Update(ctx context.Context, scope tenancy.Scope, prd Product) error
	Delete(ctx context.Context, scope tenancy.Scope, prd Product) error
	Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Product, error)
	Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, scope tenancy.Scope, productID uuid.UUID) (Product, error)
	Summary(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (Summary, error)
}

// Core manages the set of APIs for product access.
type Core struct {
	storer Storer
}

// NewCore constructs a product core API for use.
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

// Create adds a new product to the catalogue. SKUs are stored upper case.
func (c *Core) Create(ctx context.Context, scope tenancy.Scope, np NewProduct) (Product, error) {
	ctx, span := otel.AddSpan(ctx, "business.productbus.create")
	defer span.End()

	if np.Stock < 0 {
		return Product{}, ErrStock
	}

	now := time.Now()

	prd := Product{
		ID:        uuid.New(),
		TenantID:  scope.TenantID(),
		SKU:       strings.ToUpper(np.SKU),
		Name:      np.Name,
		Price:     np.Price,
		Stock:     np.Stock,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, scope, prd); err != nil {
		return Product{}, fmt.Errorf("create: %w", err)
	}

	return prd, nil
}

// Update modifies information about a product.
func (c *Core) Update(ctx context.Context, scope tenancy.Scope, prd Product, up UpdateProduct) (Product, error) {
	ctx, span := otel.AddSpan(ctx, "business.productbus.update")
	defer span.End()

	if up.SKU != nil {
		prd.SKU = strings.ToUpper(*up.SKU)
	}

	if up.Name != nil {
		prd.Name = *up.Name
	}

	if up.Price != nil {
		prd.Price = *up.Price
	}

	if up.Stock != nil {
		if *up.Stock < 0 {
			return Product{}, ErrStock
		}
		prd.Stock = *up.Stock
	}

	if up.Active != nil {
		prd.Active = *up.Active
	}

	prd.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, scope, prd); err != nil {
		return Product{}, fmt.Errorf("update: %w", err)
	}

	return prd, nil
}

// Delete removes the specified product.
func (c *Core) Delete(ctx context.Context, scope tenancy.Scope, prd Product) error {
	ctx, span := otel.AddSpan(ctx, "business.productbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, scope, prd); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing products.
func (c *Core) Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Product, error) {
	ctx, span := otel.AddSpan(ctx, "business.productbus.query")
	defer span.End()

	prds, err := c.storer.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return prds, nil
}

// Count returns the total number of products.
func (c *Core) Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.productbus.count")
	defer span.End()

	return c.storer.Count(ctx, scope, filter)
}

// QueryByID finds the product by the specified ID.
func (c *Core) QueryByID(ctx context.Context, scope tenancy.Scope, productID uuid.UUID) (Product, error) {
	ctx, span := otel.AddSpan(ctx, "business.productbus.querybyid")
	defer span.End()

	prd, err := c.storer.QueryByID(ctx, scope, productID)
	if err != nil {
		return Product{}, fmt.Errorf("query: productID[%s]: %w", productID, err)
	}

	return prd, nil
}

// Summary returns the product count, units in stock and stock valuation of
// the products matching filter.
func (c *Core) Summary(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (Summary, error) {
	ctx, span := otel.AddSpan(ctx, "business.productbus.summary")
	defer span.End()

	sum, err := c.storer.Summary(ctx, scope, filter)
	if err != nil {
		return Summary{}, fmt.Errorf("summary: %w", err)
	}

	return sum, nil
}
