package appointmentbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/shopspring/decimal"
)

// Appointment represents a salon booking with one staff member.
type Appointment struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	ClientName  name.Name
	ClientPhone phone.Null
	Service     string
	StaffName   name.Name
	StartsAt    time.Time
	Duration    time.Duration
	Price       decimal.Decimal
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EndsAt returns the time the appointment finishes.
func (a Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(a.Duration)
}

// NewAppointment is what we require from clients when adding an Appointment.
type NewAppointment struct {
	ClientName  name.Name
	ClientPhone phone.Null
	Service     string
	StaffName   name.Name
	StartsAt    time.Time
	Duration    time.Duration
	Price       decimal.Decimal
}

// UpdateAppointment defines what information may be provided to modify an
// existing Appointment. All fields are optional.
type UpdateAppointment struct {
	ClientName  *name.Name
	ClientPhone *phone.Null
	Service     *string
	StaffName   *name.Name
	StartsAt    *time.Time
	Duration    *time.Duration
	Price       *decimal.Decimal
	Status      *Status
}

// CancelWindow selects the scheduled appointments of one staff member that
// start inside [From, To).
type CancelWindow struct {
	StaffName name.Name
	From      time.Time
	To        time.Time
}
