package tenancy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// ErrNoScope is returned when a scoped table is used with the zero Scope.
var ErrNoScope = errors.New("tenancy: scope required for scoped table")

// Row holds column values for inserts and updates.
type Row map[string]any

// Owned is implemented by database models of scoped tables so FindUnique
// can check who owns the row it loaded.
type Owned interface {
	OwnerTenant() uuid.UUID
}

// Query describes a select against a single table.
type Query struct {
	Columns []string
	Where   sq.Sqlizer
	GroupBy []string
	OrderBy string
	Limit   int
	Offset  int
}

// DB runs statements for a single scope.
type DB struct {
	log   *logger.Logger
	db    sqlx.ExtContext
	scope Scope
	sb    sq.StatementBuilderType
}

// NewDB constructs a DB that applies scope to every statement.
func NewDB(log *logger.Logger, db sqlx.ExtContext, scope Scope) *DB {
	var ph sq.PlaceholderFormat = sq.Question
	if sqlx.BindType(db.DriverName()) == sqlx.DOLLAR {
		ph = sq.Dollar
	}

	return &DB{
		log:   log,
		db:    db,
		scope: scope,
		sb:    sq.StatementBuilder.PlaceholderFormat(ph),
	}
}

// Scope returns the scope the DB applies.
func (d *DB) Scope() Scope {
	return d.scope
}

// FindMany selects every row matching q into dest, a pointer to a slice.
func (d *DB) FindMany(ctx context.Context, table string, q Query, dest any) error {
	stmt, err := d.selectStmt(ctx, "find-many", table, q)
	if err != nil {
		return err
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("tosql: %w", err)
	}

	return sqldb.Select(ctx, d.log, d.db, query, args, dest)
}

// FindFirst loads the first row matching q into dest. It returns
// sqldb.ErrDBNotFound when nothing matches.
func (d *DB) FindFirst(ctx context.Context, table string, q Query, dest any) error {
	q.Limit = 1

	stmt, err := d.selectStmt(ctx, "find-first", table, q)
	if err != nil {
		return err
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("tosql: %w", err)
	}

	return sqldb.QueryStruct(ctx, d.log, d.db, query, args, dest)
}

// FindUnique loads a row by a unique key without adding the tenant filter,
// then reports sqldb.ErrDBNotFound when the row belongs to another tenant.
// For scoped tables dest must implement Owned.
func (d *DB) FindUnique(ctx context.Context, table string, key sq.Sqlizer, dest any) error {
	if err := d.check(ctx, "find-unique", table); err != nil {
		return err
	}

	query, args, err := d.sb.Select("*").From(table).Where(key).Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("tosql: %w", err)
	}

	if err := sqldb.QueryStruct(ctx, d.log, d.db, query, args, dest); err != nil {
		return err
	}

	if !IsScoped(table) {
		return nil
	}

	owned, ok := dest.(Owned)
	if !ok {
		return fmt.Errorf("tenancy: %T does not report its tenant", dest)
	}

	if !d.scope.Owns(owned.OwnerTenant()) {
		return sqldb.ErrDBNotFound
	}

	return nil
}

// Count returns the number of rows matching where.
func (d *DB) Count(ctx context.Context, table string, where sq.Sqlizer) (int, error) {
	q := Query{
		Columns: []string{"COUNT(*) AS count"},
		Where:   where,
	}

	stmt, err := d.selectStmt(ctx, "count", table, q)
	if err != nil {
		return 0, err
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("tosql: %w", err)
	}

	var count struct {
		Count int `db:"count"`
	}

	if err := sqldb.QueryStruct(ctx, d.log, d.db, query, args, &count); err != nil {
		return 0, err
	}

	return count.Count, nil
}

// Aggregate runs the aggregate expressions in q.Columns, optionally grouped,
// and scans the result rows into dest, a pointer to a slice.
func (d *DB) Aggregate(ctx context.Context, table string, q Query, dest any) error {
	if len(q.Columns) == 0 {
		return errors.New("tenancy: aggregate requires at least one expression")
	}

	stmt, err := d.selectStmt(ctx, "aggregate", table, q)
	if err != nil {
		return err
	}

	query, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("tosql: %w", err)
	}

	return sqldb.Select(ctx, d.log, d.db, query, args, dest)
}

// Create inserts row. For scoped tables the tenant column is always set to
// the scope's tenant, whatever row carried.
func (d *DB) Create(ctx context.Context, table string, row Row) error {
	return d.CreateMany(ctx, table, []Row{row})
}

// CreateMany inserts rows with a single statement. Columns missing from a
// row are inserted as NULL.
func (d *DB) CreateMany(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	if err := d.check(ctx, "create", table); err != nil {
		return err
	}

	stamped := make([]Row, len(rows))
	colSet := make(map[string]struct{})
	for i, row := range rows {
		stamped[i] = d.stamp(table, row)
		for col := range stamped[i] {
			colSet[col] = struct{}{}
		}
	}

	cols := make([]string, 0, len(colSet))
	for col := range colSet {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	ins := d.sb.Insert(table).Columns(cols...)
	for _, row := range stamped {
		vals := make([]any, len(cols))
		for i, col := range cols {
			vals[i] = row[col]
		}
		ins = ins.Values(vals...)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("tosql: %w", err)
	}

	if _, err := sqldb.ExecContext(ctx, d.log, d.db, query, args); err != nil {
		return err
	}

	return nil
}

// Update sets the values in set on the row matched by where and returns the
// number of rows changed. A row owned by another tenant is left alone and
// zero is returned.
func (d *DB) Update(ctx context.Context, table string, set Row, where sq.Sqlizer) (int64, error) {
	return d.update(ctx, "update", table, set, where)
}

// UpdateMany is Update for filters that match several rows.
func (d *DB) UpdateMany(ctx context.Context, table string, set Row, where sq.Sqlizer) (int64, error) {
	return d.update(ctx, "update-many", table, set, where)
}

// Delete removes the row matched by where and returns the number of rows
// removed. A row owned by another tenant is left alone and zero is returned.
func (d *DB) Delete(ctx context.Context, table string, where sq.Sqlizer) (int64, error) {
	return d.delete(ctx, "delete", table, where)
}

// DeleteMany is Delete for filters that match several rows.
func (d *DB) DeleteMany(ctx context.Context, table string, where sq.Sqlizer) (int64, error) {
	return d.delete(ctx, "delete-many", table, where)
}

// =============================================================================

func (d *DB) update(ctx context.Context, op string, table string, set Row, where sq.Sqlizer) (int64, error) {
	if err := d.check(ctx, op, table); err != nil {
		return 0, err
	}

	clauses := make(map[string]any, len(set))
	for col, v := range set {
		if IsScoped(table) && strings.EqualFold(col, Column) {
			continue
		}
		clauses[col] = v
	}

	if len(clauses) == 0 {
		return 0, nil
	}

	query, args, err := d.sb.Update(table).SetMap(clauses).Where(d.filter(table, where)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("tosql: %w", err)
	}

	return sqldb.ExecContext(ctx, d.log, d.db, query, args)
}

func (d *DB) delete(ctx context.Context, op string, table string, where sq.Sqlizer) (int64, error) {
	if err := d.check(ctx, op, table); err != nil {
		return 0, err
	}

	query, args, err := d.sb.Delete(table).Where(d.filter(table, where)).ToSql()
	if err != nil {
		return 0, fmt.Errorf("tosql: %w", err)
	}

	return sqldb.ExecContext(ctx, d.log, d.db, query, args)
}

func (d *DB) selectStmt(ctx context.Context, op string, table string, q Query) (sq.SelectBuilder, error) {
	if err := d.check(ctx, op, table); err != nil {
		return sq.SelectBuilder{}, err
	}

	cols := q.Columns
	if len(cols) == 0 {
		cols = []string{"*"}
	}

	stmt := d.sb.Select(cols...).From(table).Where(d.filter(table, q.Where))

	if len(q.GroupBy) > 0 {
		stmt = stmt.GroupBy(q.GroupBy...)
	}

	if q.OrderBy != "" {
		stmt = stmt.OrderBy(q.OrderBy)
	}

	if q.Limit > 0 {
		stmt = stmt.Limit(uint64(q.Limit))
	}

	if q.Offset > 0 {
		stmt = stmt.Offset(uint64(q.Offset))
	}

	return stmt, nil
}

// check rejects the zero scope on scoped tables and logs bypass use.
func (d *DB) check(ctx context.Context, op string, table string) error {
	if !IsScoped(table) {
		return nil
	}

	if !d.scope.Valid() {
		return fmt.Errorf("%s %s: %w", op, table, ErrNoScope)
	}

	if d.scope.IsBypass() {
		d.log.Info(ctx, "tenancy bypass", "op", op, "table", table, "reason", d.scope.Reason())
	}

	return nil
}

// filter ANDs the tenant predicate into where for scoped tables.
func (d *DB) filter(table string, where sq.Sqlizer) sq.Sqlizer {
	if !IsScoped(table) || d.scope.IsBypass() {
		if where == nil {
			return sq.And{}
		}
		return where
	}

	tenant := sq.Eq{Column: d.scope.TenantID().String()}
	if where == nil {
		return tenant
	}

	return sq.And{where, tenant}
}

// stamp copies row and forces the tenant column on scoped tables.
func (d *DB) stamp(table string, row Row) Row {
	out := make(Row, len(row)+1)
	for col, v := range row {
		if IsScoped(table) && !d.scope.IsBypass() && strings.EqualFold(col, Column) {
			continue
		}
		out[col] = v
	}

	if IsScoped(table) && !d.scope.IsBypass() {
		out[Column] = d.scope.TenantID().String()
	}

	return out
}
