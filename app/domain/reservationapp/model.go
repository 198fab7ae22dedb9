package reservationapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/foundation/ical"
	"github.com/shopspring/decimal"
)

const dateLayout = time.DateOnly

// Reservation represents information about an individual stay.
type Reservation struct {
	ID               string `json:"id"`
	ConfirmationCode string `json:"confirmationCode"`
	GuestName        string `json:"guestName"`
	GuestEmail       string `json:"guestEmail"`
	RoomNumber       string `json:"roomNumber"`
	CheckIn          string `json:"checkIn"`
	CheckOut         string `json:"checkOut"`
	Nights           int    `json:"nights"`
	Guests           int    `json:"guests"`
	Status           string `json:"status"`
	Total            string `json:"total"`
	Notes            string `json:"notes"`
	DateCreated      string `json:"dateCreated"`
	DateUpdated      string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app Reservation) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppReservation(bus reservationbus.Reservation) Reservation {
	return Reservation{
		ID:               bus.ID.String(),
		ConfirmationCode: bus.ConfirmationCode,
		GuestName:        bus.GuestName.String(),
		GuestEmail:       bus.GuestEmail.Address,
		RoomNumber:       bus.RoomNumber,
		CheckIn:          bus.CheckIn.Format(dateLayout),
		CheckOut:         bus.CheckOut.Format(dateLayout),
		Nights:           bus.Nights(),
		Guests:           bus.Guests,
		Status:           bus.Status.String(),
		Total:            bus.Total.StringFixed(2),
		Notes:            bus.Notes,
		DateCreated:      bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:      bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppReservations(rs []reservationbus.Reservation) []Reservation {
	app := make([]Reservation, len(rs))
	for i, r := range rs {
		app[i] = toAppReservation(r)
	}
	return app
}

// =============================================================================

// NewReservation defines the data needed to book a room.
type NewReservation struct {
	GuestName  string `json:"guestName" validate:"required"`
	GuestEmail string `json:"guestEmail" validate:"required,email"`
	RoomNumber string `json:"roomNumber" validate:"required,max=16"`
	CheckIn    string `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests     int    `json:"guests" validate:"required,gte=1,lte=20"`
	Total      string `json:"total" validate:"required,numeric"`
	Notes      string `json:"notes" validate:"max=1000"`
}

// Decode implements the decoder interface.
func (app *NewReservation) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewReservation) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewReservation(app NewReservation) (reservationbus.NewReservation, error) {
	var fieldErrors errs.FieldErrors

	guest, err := name.Parse(app.GuestName)
	if err != nil {
		fieldErrors.Add("guestName", err)
	}

	email, err := mail.ParseAddress(app.GuestEmail)
	if err != nil {
		fieldErrors.Add("guestEmail", err)
	}

	checkIn, err := time.Parse(dateLayout, app.CheckIn)
	if err != nil {
		fieldErrors.Add("checkIn", err)
	}

	checkOut, err := time.Parse(dateLayout, app.CheckOut)
	if err != nil {
		fieldErrors.Add("checkOut", err)
	}

	total, err := parseMoney(app.Total)
	if err != nil {
		fieldErrors.Add("total", err)
	}

	if fieldErrors != nil {
		return reservationbus.NewReservation{}, fieldErrors.ToError()
	}

	bus := reservationbus.NewReservation{
		GuestName:  guest,
		GuestEmail: *email,
		RoomNumber: app.RoomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     app.Guests,
		Total:      total,
		Notes:      app.Notes,
	}

	return bus, nil
}

// =============================================================================

// UpdateReservation defines the data needed to update a stay.
type UpdateReservation struct {
	GuestName  *string `json:"guestName"`
	GuestEmail *string `json:"guestEmail" validate:"omitempty,email"`
	RoomNumber *string `json:"roomNumber" validate:"omitempty,max=16"`
	CheckIn    *string `json:"checkIn" validate:"omitempty,datetime=2006-01-02"`
	CheckOut   *string `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
	Guests     *int    `json:"guests" validate:"omitempty,gte=1,lte=20"`
	Status     *string `json:"status"`
	Total      *string `json:"total" validate:"omitempty,numeric"`
	Notes      *string `json:"notes" validate:"omitempty,max=1000"`
}

// Decode implements the decoder interface.
func (app *UpdateReservation) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateReservation) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateReservation(app UpdateReservation) (reservationbus.UpdateReservation, error) {
	var fieldErrors errs.FieldErrors
	var bus reservationbus.UpdateReservation

	if app.GuestName != nil {
		guest, err := name.Parse(*app.GuestName)
		switch err {
		case nil:
			bus.GuestName = &guest
		default:
			fieldErrors.Add("guestName", err)
		}
	}

	if app.GuestEmail != nil {
		email, err := mail.ParseAddress(*app.GuestEmail)
		switch err {
		case nil:
			bus.GuestEmail = email
		default:
			fieldErrors.Add("guestEmail", err)
		}
	}

	if app.CheckIn != nil {
		t, err := time.Parse(dateLayout, *app.CheckIn)
		switch err {
		case nil:
			bus.CheckIn = &t
		default:
			fieldErrors.Add("checkIn", err)
		}
	}

	if app.CheckOut != nil {
		t, err := time.Parse(dateLayout, *app.CheckOut)
		switch err {
		case nil:
			bus.CheckOut = &t
		default:
			fieldErrors.Add("checkOut", err)
		}
	}

	if app.Status != nil {
		st, err := reservationbus.ParseStatus(*app.Status)
		switch err {
		case nil:
			bus.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if app.Total != nil {
		total, err := parseMoney(*app.Total)
		switch err {
		case nil:
			bus.Total = &total
		default:
			fieldErrors.Add("total", err)
		}
	}

	if fieldErrors != nil {
		return reservationbus.UpdateReservation{}, fieldErrors.ToError()
	}

	bus.RoomNumber = app.RoomNumber
	bus.Guests = app.Guests
	bus.Notes = app.Notes

	return bus, nil
}

// =============================================================================

// Calendar is an iCalendar feed of stays.
type Calendar struct {
	cal ical.Calendar
}

// Encode implements the encoder interface.
func (app Calendar) Encode() ([]byte, string, error) {
	data, err := app.cal.Bytes()
	return data, "text/calendar; charset=utf-8", err
}

func toAppCalendar(tenantName string, host string, rs []reservationbus.Reservation) Calendar {
	now := time.Now()

	cal := ical.Calendar{
		ProdID: "-//vertical-suite//reservations//EN",
		Name:   tenantName,
		Events: make([]ical.Event, len(rs)),
	}

	for i, r := range rs {
		cal.Events[i] = ical.Event{
			UID:         fmt.Sprintf("%s@%s", r.ID, host),
			Summary:     fmt.Sprintf("Room %s: %s", r.RoomNumber, r.GuestName),
			Description: fmt.Sprintf("Confirmation %s, %d guest(s). %s", r.ConfirmationCode, r.Guests, r.Notes),
			Location:    "Room " + r.RoomNumber,
			Status:      "CONFIRMED",
			Start:       r.CheckIn,
			End:         r.CheckOut,
			AllDay:      true,
			Stamp:       now,
		}
	}

	return Calendar{cal: cal}
}

// =============================================================================

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %s is negative", s)
	}

	return d.Round(2), nil
}
