// Package reservationbus provides business access to hotel reservations.
package reservationbus

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
	"github.com/mr-tron/base58"
)

// Set of error variables for CRUD operations.
var (
	ErrNotFound   = errors.New("reservation not found")
	ErrOverlap    = errors.New("room is already booked for these dates")
	ErrStayDates  = errors.New("check-out must be after check-in")
	ErrTransition = errors.New("reservation status change not allowed")
)

// Storer interface declares the behavior this package needs to persist and
// retrieve data.
type Storer interface {
	NewWithTx(tx sqldb.CommitRollbacker) (Storer, error)
	Create(ctx context.Context, scope tenancy.Scope, r Reservation) error
	Update(ctx context.Context, scope tenancy.Scope, r Reservation) error
	Delete(ctx context.Context, scope tenancy.Scope, r Reservation) error
	Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Reservation, error)
	Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error)
	QueryByID(ctx context.Context, scope tenancy.Scope, reservationID uuid.UUID) (Reservation, error)
	QueryOverlap(ctx context.Context, scope tenancy.Scope, room string, checkIn time.Time, checkOut time.Time, exclude uuid.UUID) (Reservation, error)
	QueryStays(ctx context.Context, scope tenancy.Scope, from time.Time, to time.Time) ([]Reservation, error)
}

// Core manages the set of APIs for reservation access.
type Core struct {
	storer Storer
}

// NewCore constructs a reservation core API for use.
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

// Create books a room for the scope's tenant.
func (c *Core) Create(ctx context.Context, scope tenancy.Scope, nr NewReservation) (Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.create")
	defer span.End()

	checkIn := Day(nr.CheckIn)
	checkOut := Day(nr.CheckOut)

	if !checkOut.After(checkIn) {
		return Reservation{}, ErrStayDates
	}

	if err := c.checkOverlap(ctx, scope, nr.RoomNumber, checkIn, checkOut, uuid.Nil); err != nil {
		return Reservation{}, err
	}

	cc, err := confirmationCode()
	if err != nil {
		return Reservation{}, fmt.Errorf("confirmation code: %w", err)
	}

	now := time.Now()

	r := Reservation{
		ID:               uuid.New(),
		TenantID:         scope.TenantID(),
		ConfirmationCode: cc,
		GuestName:        nr.GuestName,
		GuestEmail:       nr.GuestEmail,
		RoomNumber:       nr.RoomNumber,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           nr.Guests,
		Status:           StatusBooked,
		Total:            nr.Total,
		Notes:            nr.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := c.storer.Create(ctx, scope, r); err != nil {
		return Reservation{}, fmt.Errorf("create: %w", err)
	}

	return r, nil
}

// Update modifies a reservation. Moving the stay re-checks the room for
// overlapping bookings.
func (c *Core) Update(ctx context.Context, scope tenancy.Scope, r Reservation, ur UpdateReservation) (Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.update")
	defer span.End()

	moved := false

	if ur.GuestName != nil {
		r.GuestName = *ur.GuestName
	}

	if ur.GuestEmail != nil {
		r.GuestEmail = *ur.GuestEmail
	}

	if ur.RoomNumber != nil && *ur.RoomNumber != r.RoomNumber {
		r.RoomNumber = *ur.RoomNumber
		moved = true
	}

	if ur.CheckIn != nil {
		r.CheckIn = Day(*ur.CheckIn)
		moved = true
	}

	if ur.CheckOut != nil {
		r.CheckOut = Day(*ur.CheckOut)
		moved = true
	}

	if ur.Guests != nil {
		r.Guests = *ur.Guests
	}

	if ur.Status != nil {
		if !r.Status.CanMoveTo(*ur.Status) {
			return Reservation{}, fmt.Errorf("%s to %s: %w", r.Status, *ur.Status, ErrTransition)
		}
		r.Status = *ur.Status
	}

	if ur.Total != nil {
		r.Total = *ur.Total
	}

	if ur.Notes != nil {
		r.Notes = *ur.Notes
	}

	if !r.CheckOut.After(r.CheckIn) {
		return Reservation{}, ErrStayDates
	}

	if moved && r.Status != StatusCancelled {
		if err := c.checkOverlap(ctx, scope, r.RoomNumber, r.CheckIn, r.CheckOut, r.ID); err != nil {
			return Reservation{}, err
		}
	}

	r.UpdatedAt = time.Now()

	if err := c.storer.Update(ctx, scope, r); err != nil {
		return Reservation{}, fmt.Errorf("update: %w", err)
	}

	return r, nil
}

// Delete removes the specified reservation.
func (c *Core) Delete(ctx context.Context, scope tenancy.Scope, r Reservation) error {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.delete")
	defer span.End()

	if err := c.storer.Delete(ctx, scope, r); err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	return nil
}

// Query retrieves a list of existing reservations.
func (c *Core) Query(ctx context.Context, scope tenancy.Scope, filter QueryFilter, orderBy order.By, page page.Page) ([]Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.query")
	defer span.End()

	rs, err := c.storer.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return rs, nil
}

// Count returns the total number of reservations.
func (c *Core) Count(ctx context.Context, scope tenancy.Scope, filter QueryFilter) (int, error) {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.count")
	defer span.End()

	return c.storer.Count(ctx, scope, filter)
}

// QueryByID finds the reservation by the specified ID.
func (c *Core) QueryByID(ctx context.Context, scope tenancy.Scope, reservationID uuid.UUID) (Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.querybyid")
	defer span.End()

	r, err := c.storer.QueryByID(ctx, scope, reservationID)
	if err != nil {
		return Reservation{}, fmt.Errorf("query: reservationID[%s]: %w", reservationID, err)
	}

	return r, nil
}

// Calendar returns the stays that are not cancelled and overlap the window,
// ordered by check-in.
func (c *Core) Calendar(ctx context.Context, scope tenancy.Scope, from time.Time, to time.Time) ([]Reservation, error) {
	ctx, span := otel.AddSpan(ctx, "business.reservationbus.calendar")
	defer span.End()

	rs, err := c.storer.QueryStays(ctx, scope, Day(from), Day(to))
	if err != nil {
		return nil, fmt.Errorf("querystays: %w", err)
	}

	return rs, nil
}

// =============================================================================

func (c *Core) checkOverlap(ctx context.Context, scope tenancy.Scope, room string, checkIn time.Time, checkOut time.Time, exclude uuid.UUID) error {
	other, err := c.storer.QueryOverlap(ctx, scope, room, checkIn, checkOut, exclude)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil

	case err != nil:
		return fmt.Errorf("queryoverlap: %w", err)
	}

	return fmt.Errorf("room[%s] taken by %s: %w", room, other.ConfirmationCode, ErrOverlap)
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func confirmationCode() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base58.Encode(b), nil
}
