package appointmentapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/shopspring/decimal"
)

// Appointment represents a salon booking.
type Appointment struct {
	ID              string `json:"id"`
	ClientName      string `json:"clientName"`
	ClientPhone     string `json:"clientPhone,omitempty"`
	Service         string `json:"service"`
	StaffName       string `json:"staffName"`
	StartsAt        string `json:"startsAt"`
	EndsAt          string `json:"endsAt"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           string `json:"price"`
	Status          string `json:"status"`
	DateCreated     string `json:"dateCreated"`
	DateUpdated     string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app Appointment) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppAppointment(bus appointmentbus.Appointment) Appointment {
	return Appointment{
		ID:              bus.ID.String(),
		ClientName:      bus.ClientName.String(),
		ClientPhone:     bus.ClientPhone.String(),
		Service:         bus.Service,
		StaffName:       bus.StaffName.String(),
		StartsAt:        bus.StartsAt.Format(time.RFC3339),
		EndsAt:          bus.EndsAt().Format(time.RFC3339),
		DurationMinutes: int(bus.Duration / time.Minute),
		Price:           bus.Price.StringFixed(2),
		Status:          bus.Status.String(),
		DateCreated:     bus.CreatedAt.Format(time.RFC3339),
		DateUpdated:     bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppAppointments(as []appointmentbus.Appointment) []Appointment {
	app := make([]Appointment, len(as))
	for i, a := range as {
		app[i] = toAppAppointment(a)
	}
	return app
}

// =============================================================================

// NewAppointment defines the data needed to book an appointment.
type NewAppointment struct {
	ClientName      string `json:"clientName" validate:"required"`
	ClientPhone     string `json:"clientPhone"`
	Service         string `json:"service" validate:"required,max=120"`
	StaffName       string `json:"staffName" validate:"required"`
	StartsAt        string `json:"startsAt" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required"`
	Price           string `json:"price" validate:"required,numeric"`
}

// Decode implements the decoder interface.
func (app *NewAppointment) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewAppointment) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewAppointment(app NewAppointment) (appointmentbus.NewAppointment, error) {
	var fieldErrors errs.FieldErrors

	client, err := name.Parse(app.ClientName)
	if err != nil {
		fieldErrors.Add("clientName", err)
	}

	ph, err := phone.ParseNull(app.ClientPhone)
	if err != nil {
		fieldErrors.Add("clientPhone", err)
	}

	staff, err := name.Parse(app.StaffName)
	if err != nil {
		fieldErrors.Add("staffName", err)
	}

	startsAt, err := time.Parse(time.RFC3339, app.StartsAt)
	if err != nil {
		fieldErrors.Add("startsAt", err)
	}

	price, err := parseMoney(app.Price)
	if err != nil {
		fieldErrors.Add("price", err)
	}

	if fieldErrors != nil {
		return appointmentbus.NewAppointment{}, fieldErrors.ToError()
	}

	bus := appointmentbus.NewAppointment{
		ClientName:  client,
		ClientPhone: ph,
		Service:     app.Service,
		StaffName:   staff,
		StartsAt:    startsAt,
		Duration:    time.Duration(app.DurationMinutes) * time.Minute,
		Price:       price,
	}

	return bus, nil
}

// =============================================================================

// UpdateAppointment defines the data needed to change an appointment.
type UpdateAppointment struct {
	ClientName      *string `json:"clientName"`
	ClientPhone     *string `json:"clientPhone"`
	Service         *string `json:"service" validate:"omitempty,max=120"`
	StaffName       *string `json:"staffName"`
	StartsAt        *string `json:"startsAt"`
	DurationMinutes *int    `json:"durationMinutes"`
	Price           *string `json:"price" validate:"omitempty,numeric"`
	Status          *string `json:"status"`
}

// Decode implements the decoder interface.
func (app *UpdateAppointment) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateAppointment) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateAppointment(app UpdateAppointment) (appointmentbus.UpdateAppointment, error) {
	var fieldErrors errs.FieldErrors
	var bus appointmentbus.UpdateAppointment

	if app.ClientName != nil {
		n, err := name.Parse(*app.ClientName)
		switch err {
		case nil:
			bus.ClientName = &n
		default:
			fieldErrors.Add("clientName", err)
		}
	}

	if app.ClientPhone != nil {
		ph, err := phone.ParseNull(*app.ClientPhone)
		switch err {
		case nil:
			bus.ClientPhone = &ph
		default:
			fieldErrors.Add("clientPhone", err)
		}
	}

	if app.StaffName != nil {
		n, err := name.Parse(*app.StaffName)
		switch err {
		case nil:
			bus.StaffName = &n
		default:
			fieldErrors.Add("staffName", err)
		}
	}

	if app.StartsAt != nil {
		t, err := time.Parse(time.RFC3339, *app.StartsAt)
		switch err {
		case nil:
			bus.StartsAt = &t
		default:
			fieldErrors.Add("startsAt", err)
		}
	}

	if app.DurationMinutes != nil {
		d := time.Duration(*app.DurationMinutes) * time.Minute
		bus.Duration = &d
	}

	if app.Price != nil {
		p, err := parseMoney(*app.Price)
		switch err {
		case nil:
			bus.Price = &p
		default:
			fieldErrors.Add("price", err)
		}
	}

	if app.Status != nil {
		st, err := appointmentbus.ParseStatus(*app.Status)
		switch err {
		case nil:
			bus.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if fieldErrors != nil {
		return appointmentbus.UpdateAppointment{}, fieldErrors.ToError()
	}

	bus.Service = app.Service

	return bus, nil
}

// =============================================================================

// CancelRequest names a staff member and the window of their schedule to
// clear.
type CancelRequest struct {
	StaffName string `json:"staffName" validate:"required"`
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
}

// Decode implements the decoder interface.
func (app *CancelRequest) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app CancelRequest) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusCancelWindow(app CancelRequest) (appointmentbus.CancelWindow, error) {
	var fieldErrors errs.FieldErrors

	staff, err := name.Parse(app.StaffName)
	if err != nil {
		fieldErrors.Add("staffName", err)
	}

	from, err := time.Parse(time.RFC3339, app.From)
	if err != nil {
		fieldErrors.Add("from", err)
	}

	to, err := time.Parse(time.RFC3339, app.To)
	if err != nil {
		fieldErrors.Add("to", err)
	}

	if fieldErrors != nil {
		return appointmentbus.CancelWindow{}, fieldErrors.ToError()
	}

	return appointmentbus.CancelWindow{StaffName: staff, From: from, To: to}, nil
}

// CancelResult reports how many appointments were cancelled.
type CancelResult struct {
	Cancelled int64 `json:"cancelled"`
}

// Encode implements the encoder interface.
func (app CancelResult) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
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
