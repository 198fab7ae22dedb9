// Package userdb contains user related CRUD functionality.
package userdb

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

const table = "users"

// Store manages the set of APIs for user database access.
type Store struct {
	log *logger.Logger
	db  sqlx.ExtContext
}

// NewStore constructs the api for data access.
func NewStore(log *logger.Logger, db *sqlx.DB) *Store {
	return &Store{
		log: log,
		db:  db,
	}
}

// NewWithTx constructs a new Store value replacing the sqlx DB
// value with a sqlx DB value that is currently inside a transaction.
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (userbus.Storer, error) {
	ec, err := sqldb.GetExtContext(tx)
	if err != nil {
		return nil, err
	}

	store := Store{
		log: s.log,
		db:  ec,
	}

	return &store, nil
}

// Create inserts a new user into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, usr userbus.User) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if err := tdb.Create(ctx, table, toDBRow(usr)); err != nil {
		if isUniqueEmail(err) {
			return fmt.Errorf("create: %w", userbus.ErrUniqueEmail)
		}
		return fmt.Errorf("create: %w", err)
	}

	return nil
}

// Update replaces a user document in the database.
func (s *Store) Update(ctx context.Context, scope tenancy.Scope, usr userbus.User) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	row := toDBRow(usr)
	delete(row, "user_id")
	delete(row, "created_at")

	if _, err := tdb.Update(ctx, table, row, sq.Eq{"user_id": usr.ID.String()}); err != nil {
		if isUniqueEmail(err) {
			return fmt.Errorf("update: %w", userbus.ErrUniqueEmail)
		}
		return fmt.Errorf("update: %w", err)
	}

	return nil
}

// Delete removes a user from the database.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, usr userbus.User) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if _, err := tdb.Delete(ctx, table, sq.Eq{"user_id": usr.ID.String()}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing users from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter userbus.QueryFilter, orderBy order.By, page page.Page) ([]userbus.User, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	orderByClause, err := orderBy.Clause(orderByFields)
	if err != nil {
		return nil, err
	}

	q := tenancy.Query{
		Where:   applyFilter(filter),
		OrderBy: orderByClause,
		Limit:   page.RowsPerPage(),
		Offset:  page.Offset(),
	}

	var dbUsrs []userDB
	if err := tdb.FindMany(ctx, table, q, &dbUsrs); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusUsers(dbUsrs)
}

// Count returns the total number of users in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter userbus.QueryFilter) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, table, applyFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

// QueryByID gets the specified user from the database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, userID uuid.UUID) (userbus.User, error) {
	return s.queryUnique(ctx, scope, sq.Eq{"user_id": userID.String()})
}

// QueryByEmail gets the specified user from the database by email.
func (s *Store) QueryByEmail(ctx context.Context, scope tenancy.Scope, email mail.Address) (userbus.User, error) {
	return s.queryUnique(ctx, scope, sq.Eq{"email": email.Address})
}

func (s *Store) queryUnique(ctx context.Context, scope tenancy.Scope, key sq.Sqlizer) (userbus.User, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	var dbUsr userDB
	if err := tdb.FindUnique(ctx, table, key, &dbUsr); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return userbus.User{}, fmt.Errorf("db: %w", userbus.ErrNotFound)
		}
		return userbus.User{}, fmt.Errorf("db: %w", err)
	}

	return toBusUser(dbUsr)
}

func isUniqueEmail(err error) bool {
	var dupErr sqldb.ErrDBDuplicatedEntry
	if errors.As(err, &dupErr) {
		switch dupErr.Column {
		case "email", "uq_user_email":
			return true
		}
	}
	return false
}
