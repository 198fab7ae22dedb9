// Package sqldb provides support for access the database.
package sqldb

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
	"github.com/jmoiron/sqlx"
	"go.opentelemetry.io/otel/attribute"
)

// ErrDBNotFound is returned when a query matches no rows.
var ErrDBNotFound = errors.New("not found")

// ErrDBDuplicatedEntry is returned when a unique constraint is violated.
// Column holds the constraint name (postgres) or the last column named by
// the constraint (sqlite).
type ErrDBDuplicatedEntry struct {
	Column string
}

func (e ErrDBDuplicatedEntry) Error() string {
	return fmt.Sprintf("duplicated entry: %s", e.Column)
}

// Config is the required properties to use the database.
type Config struct {
	User         string
	Password     string
	Host         string
	Name         string
	Schema       string
	MaxIdleConns int
	MaxOpenConns int
	DisableTLS   bool
}

// URL builds the postgres connection string for the configuration.
func URL(cfg Config) string {
	sslMode := "require"
	if cfg.DisableTLS {
		sslMode = "disable"
	}

	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")
	if cfg.Schema != "" {
		q.Set("search_path", cfg.Schema)
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host,
		Path:     cfg.Name,
		RawQuery: q.Encode(),
	}

	return u.String()
}

// Open knows how to open a database connection based on the configuration.
func Open(cfg Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("pgx", URL(cfg))
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	return db, nil
}

// StatusCheck returns nil if it can successfully talk to the database. It
// returns a non-nil error otherwise.
func StatusCheck(ctx context.Context, db *sqlx.DB) error {

	// If the user doesn't give us a deadline set 1 second.
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Second)
		defer cancel()
	}

	ping := func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	}

	if _, err := backoff.Retry(ctx, ping, backoff.WithBackOff(backoff.NewExponentialBackOff())); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	// Run a simple query to determine connectivity.
	// Running this query forces a round trip through the database.
	const q = `SELECT true`
	var tmp bool
	return db.QueryRowContext(ctx, q).Scan(&tmp)
}

// =============================================================================

// ExecContext is a helper function to execute a CUD operation with
// positional arguments, returning the number of rows affected.
func ExecContext(ctx context.Context, log *logger.Logger, db sqlx.ExtContext, query string, args []any) (int64, error) {
	ctx, span := otel.AddSpan(ctx, "business.sdk.sqldb.exec", attribute.String("query", query))
	defer span.End()

	log.Debugc(ctx, 4, "database.ExecContext", "query", query, "args", len(args))

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Infoc(ctx, 4, "database.ExecContext", "query", query, "ERROR", err)
		return 0, mapError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return n, nil
}

// QueryStruct is a helper function for executing queries that return a
// single value to be unmarshalled into a struct type.
func QueryStruct(ctx context.Context, log *logger.Logger, db sqlx.ExtContext, query string, args []any, dest any) error {
	ctx, span := otel.AddSpan(ctx, "business.sdk.sqldb.querystruct", attribute.String("query", query))
	defer span.End()

	log.Debugc(ctx, 4, "database.QueryStruct", "query", query, "args", len(args))

	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return mapError(err)
		}
		return ErrDBNotFound
	}

	if err := rows.StructScan(dest); err != nil {
		return err
	}

	return nil
}

// Select executes a query and scans every row into dest, which must be a
// pointer to a slice.
func Select(ctx context.Context, log *logger.Logger, db sqlx.ExtContext, query string, args []any, dest any) error {
	ctx, span := otel.AddSpan(ctx, "business.sdk.sqldb.select", attribute.String("query", query))
	defer span.End()

	log.Debugc(ctx, 4, "database.Select", "query", query, "args", len(args))

	if err := sqlx.SelectContext(ctx, db, dest, query, args...); err != nil {
		log.Infoc(ctx, 4, "database.Select", "query", query, "ERROR", err)
		return mapError(err)
	}

	return nil
}

// =============================================================================

// NamedExecContext is a helper function to execute a CUD operation with
// logging and tracing where field replacement is necessary.
func NamedExecContext(ctx context.Context, log *logger.Logger, db sqlx.ExtContext, query string, data any) (err error) {
	q := queryString(query, data)

	defer func() {
		if err != nil {
			log.Infoc(ctx, 5, "database.NamedExecContext", "query", q, "ERROR", err)
		}
	}()

	ctx, span := otel.AddSpan(ctx, "business.sdk.sqldb.exec", attribute.String("query", q))
	defer span.End()

	if _, err := sqlx.NamedExecContext(ctx, db, query, data); err != nil {
		return mapError(err)
	}

	return nil
}

// NamedQuerySlice is a helper function for executing queries that return a
// collection of data to be unmarshalled into a slice where field replacement
// is necessary.
func NamedQuerySlice[T any](ctx context.Context, log *logger.Logger, db sqlx.ExtContext, query string, data any, dest *[]T) (err error) {
	q := queryString(query, data)

	defer func() {
		if err != nil {
			log.Infoc(ctx, 6, "database.NamedQuerySlice", "query", q, "ERROR", err)
		}
	}()

	ctx, span := otel.AddSpan(ctx, "business.sdk.sqldb.queryslice", attribute.String("query", q))
	defer span.End()

	rows, err := sqlx.NamedQueryContext(ctx, db, query, data)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	var slice []T
	for rows.Next() {
		v := new(T)
		if err := rows.StructScan(v); err != nil {
			return err
		}
		slice = append(slice, *v)
	}

	if err := rows.Err(); err != nil {
		return mapError(err)
	}

	*dest = slice

	return nil
}

// NamedQueryStruct is a helper function for executing queries that return a
// single value to be unmarshalled into a struct type where field replacement
// is necessary.
func NamedQueryStruct(ctx context.Context, log *logger.Logger, db sqlx.ExtContext, query string, data any, dest any) (err error) {
	q := queryString(query, data)

	defer func() {
		if err != nil && !errors.Is(err, ErrDBNotFound) {
			log.Infoc(ctx, 6, "database.NamedQueryStruct", "query", q, "ERROR", err)
		}
	}()

	ctx, span := otel.AddSpan(ctx, "business.sdk.sqldb.query", attribute.String("query", q))
	defer span.End()

	rows, err := sqlx.NamedQueryContext(ctx, db, query, data)
	if err != nil {
		return mapError(err)
	}
	defer rows.Close()

	if !rows.Next() {
		return ErrDBNotFound
	}

	if err := rows.StructScan(dest); err != nil {
		return err
	}

	return nil
}

// =============================================================================

const sqliteUnique = "UNIQUE constraint failed: "

// mapError translates driver errors into the package error set. Postgres
// errors come through pgconn; sqlite errors are matched on their message so
// the production binary does not link the sqlite driver.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrDBDuplicatedEntry{Column: pgErr.ConstraintName}
		}
		return err
	}

	if msg := err.Error(); strings.HasPrefix(msg, sqliteUnique) {
		cols := strings.Split(strings.TrimPrefix(msg, sqliteUnique), ",")
		col := strings.TrimSpace(cols[len(cols)-1])
		if i := strings.LastIndex(col, "."); i >= 0 {
			col = col[i+1:]
		}
		return ErrDBDuplicatedEntry{Column: col}
	}

	return err
}

// queryString provides a pretty print version of the query and parameters.
func queryString(query string, args any) string {
	query, params, err := sqlx.Named(query, args)
	if err != nil {
		return err.Error()
	}

	for _, param := range params {
		var value string
		switch v := param.(type) {
		case string:
			value = fmt.Sprintf("'%s'", v)
		case []byte:
			value = "'[bytes]'"
		default:
			value = fmt.Sprintf("%v", v)
		}
		query = strings.Replace(query, "?", value, 1)
	}

	query = strings.ReplaceAll(query, "\t", "")
	query = strings.ReplaceAll(query, "\n", " ")

	return strings.Trim(query, " ")
}
