// Package productdb contains product related CRUD functionality.
package productdb

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

const table = "products"

// Store manages the set of APIs for product database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (productbus.Storer, error) {
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

// Create inserts a new product into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, prd productbus.Product) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if err := tdb.Create(ctx, table, toDBRow(prd)); err != nil {
		if isUniqueSKU(err) {
			return fmt.Errorf("create: %w", productbus.ErrUniqueSKU)
		}
		return fmt.Errorf("create: %w", err)
	}

	return nil
}

// Update replaces a product document in the database.
func (s *Store) Update(ctx context.Context, scope tenancy.Scope, prd productbus.Product) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	row := toDBRow(prd)
	delete(row, "product_id")
	delete(row, "created_at")

	if _, err := tdb.Update(ctx, table, row, sq.Eq{"product_id": prd.ID.String()}); err != nil {
		if isUniqueSKU(err) {
			return fmt.Errorf("update: %w", productbus.ErrUniqueSKU)
		}
		return fmt.Errorf("update: %w", err)
	}

	return nil
}

// Delete removes a product from the database.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, prd productbus.Product) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if _, err := tdb.Delete(ctx, table, sq.Eq{"product_id": prd.ID.String()}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing products from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter productbus.QueryFilter, orderBy order.By, page page.Page) ([]productbus.Product, error) {
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

	var dbPrds []productDB
	if err := tdb.FindMany(ctx, table, q, &dbPrds); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusProducts(dbPrds)
}

// Count returns the total number of products in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter productbus.QueryFilter) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, table, applyFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

// QueryByID gets the specified product from the database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, productID uuid.UUID) (productbus.Product, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	var dbPrd productDB
	if err := tdb.FindUnique(ctx, table, sq.Eq{"product_id": productID.String()}, &dbPrd); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return productbus.Product{}, fmt.Errorf("db: %w", productbus.ErrNotFound)
		}
		return productbus.Product{}, fmt.Errorf("db: %w", err)
	}

	return toBusProduct(dbPrd)
}

// Summary aggregates the products matching filter.
func (s *Store) Summary(ctx context.Context, scope tenancy.Scope, filter productbus.QueryFilter) (productbus.Summary, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	q := tenancy.Query{
		Columns: []string{
			"COUNT(*) AS products",
			"COALESCE(SUM(stock), 0) AS units",
			"COALESCE(ROUND(SUM(CAST(price AS NUMERIC) * stock), 2), 0) AS valuation",
		},
		Where: applyFilter(filter),
	}

	var dbSums []summaryDB
	if err := tdb.Aggregate(ctx, table, q, &dbSums); err != nil {
		return productbus.Summary{}, fmt.Errorf("aggregate: %w", err)
	}

	if len(dbSums) == 0 {
		return productbus.Summary{}, nil
	}

	sum := productbus.Summary{
		Products:  dbSums[0].Products,
		Units:     dbSums[0].Units,
		Valuation: dbSums[0].Valuation,
	}

	return sum, nil
}

func isUniqueSKU(err error) bool {
	var dupErr sqldb.ErrDBDuplicatedEntry
	if errors.As(err, &dupErr) {
		switch dupErr.Column {
		case "sku", "uq_product_sku":
			return true
		}
	}
	return false
}
