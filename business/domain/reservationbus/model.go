package reservationbus

import (
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

// Reservation represents a guest stay in a room.
type Reservation struct {
	ID               uuid.UUID
	TenantID         uuid.UUID
	ConfirmationCode string
	GuestName        name.Name
	GuestEmail       mail.Address
	RoomNumber       string
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	Status           Status
	Total            decimal.Decimal
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Nights returns the number of nights of the stay.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// NewReservation is what we require from clients when adding a Reservation.
type NewReservation struct {
	GuestName  name.Name
	GuestEmail mail.Address
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Total      decimal.Decimal
	Notes      string
}

// UpdateReservation defines what information may be provided to modify an
// existing Reservation. All fields are optional.
type UpdateReservation struct {
	GuestName  *name.Name
	GuestEmail *mail.Address
	RoomNumber *string
	CheckIn    *time.Time
	CheckOut   *time.Time
	Guests     *int
	Status     *Status
	Total      *decimal.Decimal
	Notes      *string
}
