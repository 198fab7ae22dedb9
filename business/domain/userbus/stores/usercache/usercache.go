// Package usercache contains user related CRUD functionality with caching.
package usercache

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/viccon/sturdyc"
)

// Store manages the set of APIs for user data and caching. Entries are
// keyed by id and email; a hit is only returned when the caller's scope
// owns the cached user.
type Store struct {
	log    *logger.Logger
	storer userbus.Storer
	cache  *sturdyc.Client[userbus.User]
}

// NewStore constructs the api for data and caching access.
func NewStore(log *logger.Logger, storer userbus.Storer, ttl time.Duration) *Store {
	const capacity = 10000
	const numShards = 10
	const evictionPercentage = 10

	return &Store{
		log:    log,
		storer: storer,
		cache:  sturdyc.New[userbus.User](capacity, numShards, ttl, evictionPercentage),
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
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

// Create inserts a new user into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, usr userbus.User) error {
	if err := s.storer.Create(ctx, scope, usr); err != nil {
		return err
	}

	s.writeCache(usr)

	return nil
}

// Update replaces a user document in the database.
func (s *Store) Update(ctx context.Context, scope tenancy.Scope, usr userbus.User) error {
	if old, ok := s.readCache(usr.ID.String()); ok {
		s.deleteCache(old)
	}
	s.deleteCache(usr)

	if err := s.storer.Update(ctx, scope, usr); err != nil {
		return err
	}

	return nil
}

// Delete removes a user from the database.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, usr userbus.User) error {
	s.deleteCache(usr)

	if err := s.storer.Delete(ctx, scope, usr); err != nil {
		return err
	}

	return nil
}

// Query retrieves a list of existing users from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter userbus.QueryFilter, orderBy order.By, page page.Page) ([]userbus.User, error) {
	return s.storer.Query(ctx, scope, filter, orderBy, page)
}

// Count returns the total number of users in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter userbus.QueryFilter) (int, error) {
	return s.storer.Count(ctx, scope, filter)
}

// QueryByID gets the specified user from the cache or database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, userID uuid.UUID) (userbus.User, error) {
	if usr, ok := s.readCache(userID.String()); ok {
		if !scope.Owns(usr.TenantID) {
			return userbus.User{}, userbus.ErrNotFound
		}
		return usr, nil
	}

	usr, err := s.storer.QueryByID(ctx, scope, userID)
	if err != nil {
		return userbus.User{}, err
	}

	s.writeCache(usr)

	return usr, nil
}

// QueryByEmail gets the specified user from the cache or database.
func (s *Store) QueryByEmail(ctx context.Context, scope tenancy.Scope, email mail.Address) (userbus.User, error) {
	if usr, ok := s.readCache(email.Address); ok {
		if !scope.Owns(usr.TenantID) {
			return userbus.User{}, userbus.ErrNotFound
		}
		return usr, nil
	}

	usr, err := s.storer.QueryByEmail(ctx, scope, email)
	if err != nil {
		return userbus.User{}, err
	}

	s.writeCache(usr)

	return usr, nil
}

// =============================================================================

// readCache performs a safe search in the cache for the specified key.
func (s *Store) readCache(key string) (userbus.User, bool) {
	return s.cache.Get(key)
}

// writeCache performs a safe write to the cache for the specified user.
func (s *Store) writeCache(bus userbus.User) {
	s.cache.Set(bus.ID.String(), bus)
	s.cache.Set(bus.Email.Address, bus)
}

// deleteCache performs a safe removal from the cache for the specified user.
func (s *Store) deleteCache(bus userbus.User) {
	s.cache.Delete(bus.ID.String())
	s.cache.Delete(bus.Email.Address)
}
