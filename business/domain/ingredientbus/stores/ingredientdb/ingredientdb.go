// Package ingredientdb contains ingredient and inventory ledger CRUD
// functionality.
package ingredientdb

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	table       = "ingredients"
	ledgerTable = "inventory_ledger"
)

// Store manages the set of APIs for ingredient database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (ingredientbus.Storer, error) {
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

// Create inserts a new ingredient into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, ing ingredientbus.Ingredient) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if err := tdb.Create(ctx, table, toDBRow(ing)); err != nil {
		if isUniqueName(err) {
			return fmt.Errorf("create: %w", ingredientbus.ErrUniqueName)
		}
		return fmt.Errorf("create: %w", err)
	}

	return nil
}

// Update replaces an ingredient document in the database.
func (s *Store) Update(ctx context.Context, scope tenancy.Scope, ing ingredientbus.Ingredient) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	row := toDBRow(ing)
	delete(row, "ingredient_id")
	delete(row, "created_at")

	if _, err := tdb.Update(ctx, table, row, sq.Eq{"ingredient_id": ing.ID.String()}); err != nil {
		if isUniqueName(err) {
			return fmt.Errorf("update: %w", ingredientbus.ErrUniqueName)
		}
		return fmt.Errorf("update: %w", err)
	}

	return nil
}

// Delete removes an ingredient from the database.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, ing ingredientbus.Ingredient) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if _, err := tdb.Delete(ctx, table, sq.Eq{"ingredient_id": ing.ID.String()}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Lock takes the write lock on the ingredient row for the rest of the
// transaction. The update leaves the row unchanged.
func (s *Store) Lock(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	n, err := tdb.Update(ctx, table, tenancy.Row{"updated_at": sq.Expr("updated_at")}, sq.Eq{"ingredient_id": ingredientID.String()})
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if n == 0 {
		return ingredientbus.ErrNotFound
	}

	return nil
}

// Query retrieves a list of existing ingredients from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter ingredientbus.QueryFilter, orderBy order.By, page page.Page) ([]ingredientbus.Ingredient, error) {
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

	var dbIngs []ingredientDB
	if err := tdb.FindMany(ctx, table, q, &dbIngs); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusIngredients(dbIngs)
}

// Count returns the total number of ingredients in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter ingredientbus.QueryFilter) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, table, applyFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

// QueryByID gets the specified ingredient from the database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (ingredientbus.Ingredient, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	var dbIng ingredientDB
	if err := tdb.FindUnique(ctx, table, sq.Eq{"ingredient_id": ingredientID.String()}, &dbIng); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return ingredientbus.Ingredient{}, fmt.Errorf("db: %w", ingredientbus.ErrNotFound)
		}
		return ingredientbus.Ingredient{}, fmt.Errorf("db: %w", err)
	}

	return toBusIngredient(dbIng)
}

// Balances sums the ledger for each of the ingredients. Ingredients without
// movements are missing from the map.
func (s *Store) Balances(ctx context.Context, scope tenancy.Scope, ingredientIDs []uuid.UUID) (map[uuid.UUID]decimal.Decimal, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	ids := make([]string, len(ingredientIDs))
	for i, id := range ingredientIDs {
		ids[i] = id.String()
	}

	q := tenancy.Query{
		Columns: []string{"ingredient_id", "ROUND(SUM(CAST(quantity AS NUMERIC)), 6) AS balance"},
		Where:   sq.Eq{"ingredient_id": ids},
		GroupBy: []string{"ingredient_id"},
	}

	var dbBals []balanceDB
	if err := tdb.Aggregate(ctx, ledgerTable, q, &dbBals); err != nil {
		return nil, fmt.Errorf("aggregate: %w", err)
	}

	balances := make(map[uuid.UUID]decimal.Decimal, len(dbBals))
	for _, b := range dbBals {
		balances[b.IngredientID] = b.Balance
	}

	return balances, nil
}

// CreateEntries books ledger entries with one statement.
func (s *Store) CreateEntries(ctx context.Context, scope tenancy.Scope, entries []ingredientbus.Entry) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	rows := make([]tenancy.Row, len(entries))
	for i, e := range entries {
		rows[i] = toDBEntryRow(e)
	}

	if err := tdb.CreateMany(ctx, ledgerTable, rows); err != nil {
		return fmt.Errorf("createmany: %w", err)
	}

	return nil
}

// DeleteEntries removes every ledger entry of the ingredient.
func (s *Store) DeleteEntries(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (int64, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	n, err := tdb.DeleteMany(ctx, ledgerTable, sq.Eq{"ingredient_id": ingredientID.String()})
	if err != nil {
		return 0, fmt.Errorf("deletemany: %w", err)
	}

	return n, nil
}

// QueryEntries returns a page of the ingredient's ledger, newest first.
func (s *Store) QueryEntries(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID, page page.Page) ([]ingredientbus.Entry, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	q := tenancy.Query{
		Where:   sq.Eq{"ingredient_id": ingredientID.String()},
		OrderBy: "created_at DESC, entry_id",
		Limit:   page.RowsPerPage(),
		Offset:  page.Offset(),
	}

	var dbEntries []entryDB
	if err := tdb.FindMany(ctx, ledgerTable, q, &dbEntries); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusEntries(dbEntries)
}

// CountEntries returns the number of ledger entries of the ingredient.
func (s *Store) CountEntries(ctx context.Context, scope tenancy.Scope, ingredientID uuid.UUID) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, ledgerTable, sq.Eq{"ingredient_id": ingredientID.String()})
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

func isUniqueName(err error) bool {
	var dupErr sqldb.ErrDBDuplicatedEntry
	if errors.As(err, &dupErr) {
		switch dupErr.Column {
		case "name", "uq_ingredient_name":
			return true
		}
	}
	return false
}
