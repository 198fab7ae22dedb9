// Package reservationdb contains reservation related CRUD functionality.
package reservationdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

const table = "reservations"

// Store manages the set of APIs for reservation database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (reservationbus.Storer, error) {
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

// Create inserts a new reservation into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, r reservationbus.Reservation) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if err := tdb.Create(ctx, table, toDBRow(r)); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	return nil
}

// Update replaces a reservation document in the database.
func (s *Store) Update(ctx context.Context, scope tenancy.Scope, r reservationbus.Reservation) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	row := toDBRow(r)
	delete(row, "reservation_id")
	delete(row, "confirmation_code")
	delete(row, "created_at")

	if _, err := tdb.Update(ctx, table, row, sq.Eq{"reservation_id": r.ID.String()}); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	return nil
}

// Delete removes a reservation from the database.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, r reservationbus.Reservation) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if _, err := tdb.Delete(ctx, table, sq.Eq{"reservation_id": r.ID.String()}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing reservations from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter reservationbus.QueryFilter, orderBy order.By, page page.Page) ([]reservationbus.Reservation, error) {
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

	var dbRs []reservationDB
	if err := tdb.FindMany(ctx, table, q, &dbRs); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusReservations(dbRs)
}

// Count returns the total number of reservations in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter reservationbus.QueryFilter) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, table, applyFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

// QueryByID gets the specified reservation from the database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, reservationID uuid.UUID) (reservationbus.Reservation, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	var dbR reservationDB
	if err := tdb.FindUnique(ctx, table, sq.Eq{"reservation_id": reservationID.String()}, &dbR); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return reservationbus.Reservation{}, fmt.Errorf("db: %w", reservationbus.ErrNotFound)
		}
		return reservationbus.Reservation{}, fmt.Errorf("db: %w", err)
	}

	return toBusReservation(dbR)
}

// QueryOverlap returns the first live reservation of room whose stay
// intersects [checkIn, checkOut), ignoring exclude.
func (s *Store) QueryOverlap(ctx context.Context, scope tenancy.Scope, room string, checkIn time.Time, checkOut time.Time, exclude uuid.UUID) (reservationbus.Reservation, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	where := sq.And{
		sq.Eq{"room_number": room},
		sq.NotEq{"status": reservationbus.StatusCancelled.String()},
		sq.Lt{"check_in": checkOut.UTC()},
		sq.Gt{"check_out": checkIn.UTC()},
	}

	if exclude != uuid.Nil {
		where = append(where, sq.NotEq{"reservation_id": exclude.String()})
	}

	q := tenancy.Query{
		Where:   where,
		OrderBy: "check_in ASC",
	}

	var dbR reservationDB
	if err := tdb.FindFirst(ctx, table, q, &dbR); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return reservationbus.Reservation{}, reservationbus.ErrNotFound
		}
		return reservationbus.Reservation{}, fmt.Errorf("findfirst: %w", err)
	}

	return toBusReservation(dbR)
}

// QueryStays returns the live reservations overlapping [from, to).
func (s *Store) QueryStays(ctx context.Context, scope tenancy.Scope, from time.Time, to time.Time) ([]reservationbus.Reservation, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	q := tenancy.Query{
		Where: sq.And{
			sq.NotEq{"status": reservationbus.StatusCancelled.String()},
			sq.Lt{"check_in": to.UTC()},
			sq.Gt{"check_out": from.UTC()},
		},
		OrderBy: "check_in ASC",
	}

	var dbRs []reservationDB
	if err := tdb.FindMany(ctx, table, q, &dbRs); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusReservations(dbRs)
}
