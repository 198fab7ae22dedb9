// Package tenantbus provides business access to the tenant domain.
package tenantbus

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
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound   = errors.New("tenant not found")
	ErrDisabled   = errors.New("tenant is disabled")
	ErrUniqueCode = errors.New("code is not unique")
)

// Storer defines the behavior required by the tenantbus to interact with the database.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, t Tenant) error
	Update(ctx context.Context, t Tenant) error
	Delete(ctx context.Context, t Tenant) error
	Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Tenant, error)
	Count(ctx context.Context, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error)
	QueryByCode(ctx context.Context, c code.Code) (Tenant, error)
	CountRows(ctx context.Context, scope tenancy.Scope) (map[string]int, error)
}

// Core manages the set of APIs for tenant access.
type Core struct {
	storer Storer
	log    *logger.Logger
}

// NewCore constructs a core for tenant api access.
func NewCore(log *logger.Logger, storer Storer) *Core {
	return &Core{
		storer: storer,
		log:    log,
	}
}

// NewWithTx constructs a new Core value replacing the Storer
// value with a Storer value that is currently inside a transaction.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, fmt.Errorf("newwithtx: %w", err)
	}

	return NewCore(c.log, storer), nil
}

// Create adds a new tenant to the system.
func (c *Core) Create(ctx context.Context, nt NewTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.create")
	defer span.End()

	var tc code.Code
	switch nt.Code {
	case nil:
		var err error
		if tc, err = code.FromName(nt.Name); err != nil {
			return Tenant{}, fmt.Errorf("derive code: %w", err)
		}
	default:
		tc = *nt.Code
	}

	now := time.Now()

	t := Tenant{
		ID:        uuid.New(),
		Name:      nt.Name,
		Code:      tc,
		Vertical:  nt.Vertical,
		Enabled:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storer.Create(ctx, t); err != nil {
		return Tenant{}, fmt.Errorf("create: %w", err)
	}

	return t, nil
}

// Update modifies data about a tenant.
func (c *Core) Update(ctx context.Context, t Tenant, ut UpdateTenant) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.update")
	defer span.End()

	if ut.Name != nil {
		t.Name = *ut.Name
	}

	if ut.Vertical != nil {
		t.Vertical = *ut.Vertical
	}

	if ut.Enabled != nil {
		t.Enabled = *ut.Enabled
	}

	t.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, t); err != nil {
		return Tenant{}, fmt.Errorf("update: %w", err)
	}

	return t, nil
}

// Delete removes the specified tenant and, through the schema, every row
// it owns.
func (c *Core) Delete(ctx context.Context, t Tenant) error {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, t); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing tenants.
func (c *Core) Query(ctx context.Context, filter QueryFilter, orderBy order.By, page page.Page) ([]Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.query")
	defer span.End()

	tenants, err := c.storer.Query(ctx, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return tenants, nil
}

// Count returns the total number of tenants.
func (c *Core) Count(ctx context.Context, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.count")
	defer span.End()

	return c.storer.Count(ctx, filter)
}

// QueryByID finds the tenant by the specified ID.
func (c *Core) QueryByID(ctx context.Context, tenantID uuid.UUID) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.querybyid")
	defer span.End()

	tenant, err := c.storer.QueryByID(ctx, tenantID)
	if err != nil {
		return Tenant{}, fmt.Errorf("query: tenantID[%s]: %w", tenantID, err)
	}

	return tenant, nil
}

// QueryByCode finds the tenant by its human-facing code.
func (c *Core) QueryByCode(ctx context.Context, tc code.Code) (Tenant, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.querybycode")
	defer span.End()

	tenant, err := c.storer.QueryByCode(ctx, tc)
	if err != nil {
		return Tenant{}, fmt.Errorf("query: code[%s]: %w", tc, err)
	}

	return tenant, nil
}

// Active returns the tenant when it exists and is enabled.
func (c *Core) Active(ctx context.Context, tenantID uuid.UUID) (Tenant, error) {
	t, err := c.QueryByID(ctx, tenantID)
	if err != nil {
		return Tenant{}, err
	}

	if !t.Enabled {
		return Tenant{}, fmt.Errorf("tenantID[%s]: %w", tenantID, ErrDisabled)
	}

	return t, nil
}

// Stats counts the rows a single tenant owns in every scoped table.
func (c *Core) Stats(ctx context.Context, t Tenant) (Stats, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.stats")
	defer span.End()

	scope, err := tenancy.New(t.ID, uuid.Nil)
	if err != nil {
		return Stats{}, err
	}

	rows, err := c.storer.CountRows(ctx, scope)
	if err != nil {
		return Stats{}, fmt.Errorf("countrows: %w", err)
	}

	return Stats{Tenants: 1, Rows: rows}, nil
}

// PlatformStats counts every row across all tenants.
func (c *Core) PlatformStats(ctx context.Context) (Stats, error) {
	ctx, span := otel.AddSpan(ctx, "business.tenantbus.platformstats")
	defer span.End()

	rows, err := c.storer.CountRows(ctx, tenancy.Bypass("platform stats"))
	if err != nil {
		return Stats{}, fmt.Errorf("countrows: %w", err)
	}

	n, err := c.storer.Count(ctx, QueryFilter{})
	if err != nil {
		return Stats{}, fmt.Errorf("count: %w", err)
	}

	return Stats{Tenants: n, Rows: rows}, nil
}
