// Package tenantcache caches tenant lookups made by the tenant resolver on
// every request.
package tenantcache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/viccon/sturdyc"
)

// Store manages the set of APIs for tenant data and caching.
type Store struct {
	log    *logger.Logger
	storer tenantbus.Storer
	cache  *sturdyc.Client[tenantbus.Tenant]
}

// NewStore constructs the api for data and caching access.
func NewStore(log *logger.Logger, storer tenantbus.Storer, ttl time.Duration) *Store {
	const capacity = 1000
	const numShards = 10
	const evictionPercentage = 10

	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[tenantbus.Tenant](capacity, numShards, ttl, evictionPercentage),
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (tenantbus.Storer, error) {
	storer, err := s.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return &Store{
		log:    s.log,
		storer: storer,
		cache:  s.cache,
	}, nil
}

// Create inserts a new tenant into the database.
func (s *Store) Create(ctx context.Context, t tenantbus.Tenant) error {
	if err := s.storer.Create(ctx, t); err != nil {
		return err
	}

	s.writeCache(t)

	return nil
}

// Update replaces a tenant document in the database.
func (s *Store) Update(ctx context.Context, t tenantbus.Tenant) error {
	s.deleteCache(t)

	return s.storer.Update(ctx, t)
}

// Delete removes a tenant from the database.
func (s *Store) Delete(ctx context.Context, t tenantbus.Tenant) error {
	s.deleteCache(t)

	return s.storer.Delete(ctx, t)
}

// Query retrieves a list of existing tenants from the database.
func (s *Store) Query(ctx context.Context, filter tenantbus.QueryFilter, orderBy order.By, page page.Page) ([]tenantbus.Tenant, error) {
	return s.storer.Query(ctx, filter, orderBy, page)
}

// Count returns the total number of tenants in the DB.
func (s *Store) Count(ctx context.Context, filter tenantbus.QueryFilter) (int, error) {
	return s.storer.Count(ctx, filter)
}

// QueryByID gets the specified tenant from the cache or database.
func (s *Store) QueryByID(ctx context.Context, tenantID uuid.UUID) (tenantbus.Tenant, error) {
	if t, ok := s.cache.Get("id:" + tenantID.String()); ok {
		return t, nil
	}

	t, err := s.storer.QueryByID(ctx, tenantID)
	if err != nil {
		return tenantbus.Tenant{}, err
	}

	s.writeCache(t)

	return t, nil
}

// QueryByCode gets the tenant with the specified code from the cache or
// database.
func (s *Store) QueryByCode(ctx context.Context, tc code.Code) (tenantbus.Tenant, error) {
	if t, ok := s.cache.Get("code:" + tc.String()); ok {
		return t, nil
	}

	t, err := s.storer.QueryByCode(ctx, tc)
	if err != nil {
		return tenantbus.Tenant{}, err
	}

	s.writeCache(t)

	return t, nil
}

// CountRows is never cached.
func (s *Store) CountRows(ctx context.Context, scope tenancy.Scope) (map[string]int, error) {
	return s.storer.CountRows(ctx, scope)
}

// =============================================================================

func (s *Store) writeCache(t tenantbus.Tenant) {
	s.cache.Set("id:"+t.ID.String(), t)
	s.cache.Set("code:"+t.Code.String(), t)
}

func (s *Store) deleteCache(t tenantbus.Tenant) {
	s.cache.Delete("id:" + t.ID.String())
	s.cache.Delete("code:" + t.Code.String())
}
