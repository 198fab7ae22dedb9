// Package orderdb contains order and order item CRUD functionality.
package orderdb

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

const (
	table      = "orders"
	itemsTable = "order_items"
)

// Store manages the set of APIs for order database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (orderbus.Storer, error) {
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

// Create inserts a new order into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, o orderbus.Order) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if err := tdb.Create(ctx, table, toDBRow(o)); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	return nil
}

// CreateItems inserts the order lines with one statement.
func (s *Store) CreateItems(ctx context.Context, scope tenancy.Scope, items []orderbus.Item) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	rows := make([]tenancy.Row, len(items))
	for i, item := range items {
		rows[i] = toDBItemRow(item)
	}

	if err := tdb.CreateMany(ctx, itemsTable, rows); err != nil {
		return fmt.Errorf("createmany: %w", err)
	}

	return nil
}

// UpdateStatus writes the order's status.
func (s *Store) UpdateStatus(ctx context.Context, scope tenancy.Scope, o orderbus.Order) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	set := tenancy.Row{
		"status":     o.Status.String(),
		"updated_at": o.UpdatedAt.UTC(),
	}

	if _, err := tdb.Update(ctx, table, set, sq.Eq{"order_id": o.ID.String()}); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	return nil
}

// Delete removes the order lines and then the order.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, o orderbus.Order) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if _, err := tdb.DeleteMany(ctx, itemsTable, sq.Eq{"order_id": o.ID.String()}); err != nil {
		return fmt.Errorf("deletemany: %w", err)
	}

	if _, err := tdb.Delete(ctx, table, sq.Eq{"order_id": o.ID.String()}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing orders from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter orderbus.QueryFilter, orderBy order.By, page page.Page) ([]orderbus.Order, error) {
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

	var dbOrders []orderDB
	if err := tdb.FindMany(ctx, table, q, &dbOrders); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusOrders(dbOrders)
}

// Count returns the total number of orders in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter orderbus.QueryFilter) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, table, applyFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

// QueryByID gets the specified order from the database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, orderID uuid.UUID) (orderbus.Order, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	var dbOrder orderDB
	if err := tdb.FindUnique(ctx, table, sq.Eq{"order_id": orderID.String()}, &dbOrder); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return orderbus.Order{}, fmt.Errorf("db: %w", orderbus.ErrNotFound)
		}
		return orderbus.Order{}, fmt.Errorf("db: %w", err)
	}

	return toBusOrder(dbOrder)
}

// QueryItems returns the lines of the order.
func (s *Store) QueryItems(ctx context.Context, scope tenancy.Scope, orderID uuid.UUID) ([]orderbus.Item, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	q := tenancy.Query{
		Where:   sq.Eq{"order_id": orderID.String()},
		OrderBy: "name ASC",
	}

	var dbItems []itemDB
	if err := tdb.FindMany(ctx, itemsTable, q, &dbItems); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusItems(dbItems), nil
}
