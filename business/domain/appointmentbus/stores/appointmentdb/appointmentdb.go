// Package appointmentdb contains appointment related CRUD functionality.
package appointmentdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

const table = "appointments"

// Store manages the set of APIs for appointment database access.
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
func (s *Store) NewWithTx(tx sqldb.CommitRollbacker) (appointmentbus.Storer, error) {
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

// Create inserts a new appointment into the database.
func (s *Store) Create(ctx context.Context, scope tenancy.Scope, a appointmentbus.Appointment) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if err := tdb.Create(ctx, table, toDBRow(a)); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	return nil
}

// Update replaces an appointment document in the database.
func (s *Store) Update(ctx context.Context, scope tenancy.Scope, a appointmentbus.Appointment) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	row := toDBRow(a)
	delete(row, "appointment_id")
	delete(row, "created_at")

	if _, err := tdb.Update(ctx, table, row, sq.Eq{"appointment_id": a.ID.String()}); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	return nil
}

// Delete removes an appointment from the database.
func (s *Store) Delete(ctx context.Context, scope tenancy.Scope, a appointmentbus.Appointment) error {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	if _, err := tdb.Delete(ctx, table, sq.Eq{"appointment_id": a.ID.String()}); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing appointments from the database.
func (s *Store) Query(ctx context.Context, scope tenancy.Scope, filter appointmentbus.QueryFilter, orderBy order.By, page page.Page) ([]appointmentbus.Appointment, error) {
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

	var dbAs []appointmentDB
	if err := tdb.FindMany(ctx, table, q, &dbAs); err != nil {
		return nil, fmt.Errorf("findmany: %w", err)
	}

	return toBusAppointments(dbAs)
}

// Count returns the total number of appointments in the DB.
func (s *Store) Count(ctx context.Context, scope tenancy.Scope, filter appointmentbus.QueryFilter) (int, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	count, err := tdb.Count(ctx, table, applyFilter(filter))
	if err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}

	return count, nil
}

// QueryByID gets the specified appointment from the database.
func (s *Store) QueryByID(ctx context.Context, scope tenancy.Scope, appointmentID uuid.UUID) (appointmentbus.Appointment, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	var dbA appointmentDB
	if err := tdb.FindUnique(ctx, table, sq.Eq{"appointment_id": appointmentID.String()}, &dbA); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return appointmentbus.Appointment{}, fmt.Errorf("db: %w", appointmentbus.ErrNotFound)
		}
		return appointmentbus.Appointment{}, fmt.Errorf("db: %w", err)
	}

	return toBusAppointment(dbA)
}

// QueryOverlap returns the first appointment of staff that holds time inside
// [start, end), ignoring exclude.
func (s *Store) QueryOverlap(ctx context.Context, scope tenancy.Scope, staff name.Name, start time.Time, end time.Time, exclude uuid.UUID) (appointmentbus.Appointment, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	where := sq.And{
		sq.Eq{"staff_name": staff.String()},
		sq.Eq{"status": []string{
			appointmentbus.StatusScheduled.String(),
			appointmentbus.StatusCompleted.String(),
		}},
		sq.Lt{"starts_at": end.UTC()},
		sq.Gt{"ends_at": start.UTC()},
	}

	if exclude != uuid.Nil {
		where = append(where, sq.NotEq{"appointment_id": exclude.String()})
	}

	q := tenancy.Query{
		Where:   where,
		OrderBy: "starts_at ASC",
	}

	var dbA appointmentDB
	if err := tdb.FindFirst(ctx, table, q, &dbA); err != nil {
		if errors.Is(err, sqldb.ErrDBNotFound) {
			return appointmentbus.Appointment{}, appointmentbus.ErrNotFound
		}
		return appointmentbus.Appointment{}, fmt.Errorf("findfirst: %w", err)
	}

	return toBusAppointment(dbA)
}

// CancelMany marks the scheduled appointments of the window cancelled.
func (s *Store) CancelMany(ctx context.Context, scope tenancy.Scope, w appointmentbus.CancelWindow, now time.Time) (int64, error) {
	tdb := tenancy.NewDB(s.log, s.db, scope)

	set := tenancy.Row{
		"status":     appointmentbus.StatusCancelled.String(),
		"updated_at": now.UTC(),
	}

	where := sq.And{
		sq.Eq{"staff_name": w.StaffName.String()},
		sq.Eq{"status": appointmentbus.StatusScheduled.String()},
		sq.GtOrEq{"starts_at": w.From.UTC()},
		sq.Lt{"starts_at": w.To.UTC()},
	}

	n, err := tdb.UpdateMany(ctx, table, set, where)
	if err != nil {
		return 0, fmt.Errorf("updatemany: %w", err)
	}

	return n, nil
}
