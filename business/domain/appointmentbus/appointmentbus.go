// Package appointmentbus provides business access to salon appointments.
package appointmentbus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound = errors.New("appointment not found")
	ErrOverlap  = errors.New("staff member is already booked at this time")
	ErrDuration = errors.New("duration must be between 1 minute and 12 hours")
	ErrWindow   = errors.New("window end must be after its start")
)

const maxDuration = 12 * time.Hour

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, scope tenancy.Scope, a Appointment) error
	Update(ctx context.Context, scope tenancy.Scope, a Appointment) error
	Delete(ctx context.Context, scope tenancy.Scope, a Appointment) error
	Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Appointment, error)
	Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, scope tenancy.Scope, appointmentID uuid.UUID) (Appointment, error)
	QueryOverlap(ctx context.Context, scope tenancy.Scope, staff name.Name, start time.Time, end time.Time, exclude uuid.UUID) (Appointment, error)
	CancelMany(ctx context.Context, scope tenancy.Scope, w CancelWindow, now time.Time) (int64, error)
}

// Core manages the set of APIs for appointment access.
type Core struct {
	storer Storer
}

// NewCore constructs an appointment core API for use.
func NewCore(storer Storer) *Core {
	return &Core{
		storer: storer,
	}
}

// NewWithTx constructs a new core value that will use the
// specified transaction in any store related calls.
func (c *Core) NewWithTx(tx sqldb.CommitRollbacker) (*Core, error) {
	storer, err := c.storer.NewWithTx(tx)
	if err != nil {
		return nil, err
	}

	return NewCore(storer), nil
}

// Create books an appointment when the staff member is free.
func (c *Core) Create(ctx context.Context, scope tenancy.Scope, na NewAppointment) (Appointment, error) {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.create")
	defer span.End()

	if err := checkDuration(na.Duration); err != nil {
		return Appointment{}, err
	}

	now := time.Now()

	a := Appointment{
		ID:          uuid.New(),
		TenantID:    scope.TenantID(),
		ClientName:  na.ClientName,
		ClientPhone: na.ClientPhone,
		Service:     na.Service,
		StaffName:   na.StaffName,
		StartsAt:    Minute(na.StartsAt),
		Duration:    na.Duration,
		Price:       na.Price,
		Status:      StatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.checkOverlap(ctx, scope, a); err != nil {
		return Appointment{}, err
	}

	if err := c.storer.Create(ctx, scope, a); err != nil {
		return Appointment{}, fmt.Errorf("create: %w", err)
	}

	return a, nil
}

// Update modifies an appointment. Moving it re-checks the staff member's
// calendar.
func (c *Core) Update(ctx context.Context, scope tenancy.Scope, a Appointment, ua UpdateAppointment) (Appointment, error) {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.update")
	defer span.End()

	moved := false

	if ua.ClientName != nil {
		a.ClientName = *ua.ClientName
	}

	if ua.ClientPhone != nil {
		a.ClientPhone = *ua.ClientPhone
	}

	if ua.Service != nil {
		a.Service = *ua.Service
	}

	if ua.StaffName != nil && !ua.StaffName.Equal(a.StaffName) {
		a.StaffName = *ua.StaffName
		moved = true
	}

	if ua.StartsAt != nil {
		a.StartsAt = Minute(*ua.StartsAt)
		moved = true
	}

	if ua.Duration != nil {
		if err := checkDuration(*ua.Duration); err != nil {
			return Appointment{}, err
		}
		a.Duration = *ua.Duration
		moved = true
	}

	if ua.Price != nil {
		a.Price = *ua.Price
	}

	if ua.Status != nil {
		if !a.Status.Holds() && ua.Status.Holds() {
			moved = true
		}
		a.Status = *ua.Status
	}

	if moved && a.Status.Holds() {
		if err := c.checkOverlap(ctx, scope, a); err != nil {
			return Appointment{}, err
		}
	}

	a.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, scope, a); err != nil {
		return Appointment{}, fmt.Errorf("update: %w", err)
	}

	return a, nil
}

// Delete removes the specified appointment.
func (c *Core) Delete(ctx context.Context, scope tenancy.Scope, a Appointment) error {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, scope, a); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing appointments.
func (c *Core) Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Appointment, error) {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.query")
	defer span.End()

	as, err := c.storer.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return as, nil
}

// Count returns the total number of appointments.
func (c *Core) Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.count")
	defer span.End()

	return c.storer.Count(ctx, scope, filter)
}

// QueryByID finds the appointment by the specified ID.
func (c *Core) QueryByID(ctx context.Context, scope tenancy.Scope, appointmentID uuid.UUID) (Appointment, error) {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.querybyid")
	defer span.End()

	a, err := c.storer.QueryByID(ctx, scope, appointmentID)
	if err != nil {
		return Appointment{}, fmt.Errorf("query: appointmentID[%s]: %w", appointmentID, err)
	}

	return a, nil
}

// CancelMany cancels every scheduled appointment of the staff member that
// starts inside the window and returns how many were cancelled.
func (c *Core) CancelMany(ctx context.Context, scope tenancy.Scope, w CancelWindow) (int64, error) {
	ctx, span := otel.AddSpan(ctx, "business.appointmentbus.cancelmany")
	defer span.End()

	w.From = Minute(w.From)
	w.To = Minute(w.To)

	if !w.To.After(w.From) {
		return 0, ErrWindow
	}

	n, err := c.storer.CancelMany(ctx, scope, w, time.Now())
	if err != nil {
		return 0, fmt.Errorf("cancelmany: %w", err)
	}

	return n, nil
}

// =============================================================================

func (c *Core) checkOverlap(ctx context.Context, scope tenancy.Scope, a Appointment) error {
	other, err := c.storer.QueryOverlap(ctx, scope, a.StaffName, a.StartsAt, a.EndsAt(), a.ID)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil

	case err != nil:
		return fmt.Errorf("queryoverlap: %w", err)
	}

	return fmt.Errorf("staff[%s] booked at %s: %w", a.StaffName, other.StartsAt.Format(time.RFC3339), ErrOverlap)
}

func checkDuration(d time.Duration) error {
	if d < time.Minute || d > maxDuration || d%time.Minute != 0 {
		return ErrDuration
	}
	return nil
}

// Minute truncates t to the minute in UTC.
func Minute(t time.Time) time.Time {
	return t.UTC().Truncate(time.Minute)
}
