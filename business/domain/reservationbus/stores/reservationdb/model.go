package reservationdb

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

type reservationDB struct {
	ID               uuid.UUID       `db:"reservation_id"`
	TenantID         uuid.UUID       `db:"tenant_id"`
	ConfirmationCode string          `db:"confirmation_code"`
	GuestName        string          `db:"guest_name"`
	GuestEmail       string          `db:"guest_email"`
	RoomNumber       string          `db:"room_number"`
	CheckIn          time.Time       `db:"check_in"`
	CheckOut         time.Time       `db:"check_out"`
	Guests           int             `db:"guests"`
	Status           string          `db:"status"`
	Total            decimal.Decimal `db:"total"`
	Notes            string          `db:"notes"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

func (r reservationDB) OwnerTenant() uuid.UUID {
	return r.TenantID
}

func toDBRow(bus reservationbus.Reservation) tenancy.Row {
	return tenancy.Row{
		"reservation_id":    bus.ID.String(),
		"tenant_id":         bus.TenantID.String(),
		"confirmation_code": bus.ConfirmationCode,
		"guest_name":        bus.GuestName.String(),
		"guest_email":       bus.GuestEmail.Address,
		"room_number":       bus.RoomNumber,
		"check_in":          bus.CheckIn.UTC(),
		"check_out":         bus.CheckOut.UTC(),
		"guests":            bus.Guests,
		"status":            bus.Status.String(),
		"total":             bus.Total.String(),
		"notes":             bus.Notes,
		"created_at":        bus.CreatedAt.UTC(),
		"updated_at":        bus.UpdatedAt.UTC(),
	}
}

func toBusReservation(db reservationDB) (reservationbus.Reservation, error) {
	gn, err := name.Parse(db.GuestName)
	if err != nil {
		return reservationbus.Reservation{}, fmt.Errorf("parse guest name: %w", err)
	}

	st, err := reservationbus.ParseStatus(db.Status)
	if err != nil {
		return reservationbus.Reservation{}, fmt.Errorf("parse status: %w", err)
	}

	bus := reservationbus.Reservation{
		ID:               db.ID,
		TenantID:         db.TenantID,
		ConfirmationCode: db.ConfirmationCode,
		GuestName:        gn,
		GuestEmail:       mail.Address{Address: db.GuestEmail},
		RoomNumber:       db.RoomNumber,
		CheckIn:          reservationbus.Day(db.CheckIn),
		CheckOut:         reservationbus.Day(db.CheckOut),
		Guests:           db.Guests,
		Status:           st,
		Total:            db.Total,
		Notes:            db.Notes,
		CreatedAt:        db.CreatedAt.In(time.Local),
		UpdatedAt:        db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusReservations(dbs []reservationDB) ([]reservationbus.Reservation, error) {
	bus := make([]reservationbus.Reservation, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusReservation(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
