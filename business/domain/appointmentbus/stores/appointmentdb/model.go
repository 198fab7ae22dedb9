package appointmentdb

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/shopspring/decimal"
)

type appointmentDB struct {
	ID              uuid.UUID       `db:"appointment_id"`
	TenantID        uuid.UUID       `db:"tenant_id"`
	ClientName      string          `db:"client_name"`
	ClientPhone     sql.NullString  `db:"client_phone"`
	Service         string          `db:"service"`
	StaffName       string          `db:"staff_name"`
	StartsAt        time.Time       `db:"starts_at"`
	EndsAt          time.Time       `db:"ends_at"`
	DurationMinutes int             `db:"duration_minutes"`
	Price           decimal.Decimal `db:"price"`
	Status          string          `db:"status"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

func (a appointmentDB) OwnerTenant() uuid.UUID {
	return a.TenantID
}

func toDBRow(bus appointmentbus.Appointment) tenancy.Row {
	return tenancy.Row{
		"appointment_id":   bus.ID.String(),
		"tenant_id":        bus.TenantID.String(),
		"client_name":      bus.ClientName.String(),
		"client_phone":     phone.ToSQLNullString(bus.ClientPhone),
		"service":          bus.Service,
		"staff_name":       bus.StaffName.String(),
		"starts_at":        bus.StartsAt.UTC(),
		"ends_at":          bus.EndsAt().UTC(),
		"duration_minutes": int(bus.Duration / time.Minute),
		"price":            bus.Price.String(),
		"status":           bus.Status.String(),
		"created_at":       bus.CreatedAt.UTC(),
		"updated_at":       bus.UpdatedAt.UTC(),
	}
}

func toBusAppointment(db appointmentDB) (appointmentbus.Appointment, error) {
	cn, err := name.Parse(db.ClientName)
	if err != nil {
		return appointmentbus.Appointment{}, fmt.Errorf("parse client name: %w", err)
	}

	sn, err := name.Parse(db.StaffName)
	if err != nil {
		return appointmentbus.Appointment{}, fmt.Errorf("parse staff name: %w", err)
	}

	ph, err := phone.ParseNull(db.ClientPhone.String)
	if err != nil {
		return appointmentbus.Appointment{}, fmt.Errorf("parse client phone: %w", err)
	}

	st, err := appointmentbus.ParseStatus(db.Status)
	if err != nil {
		return appointmentbus.Appointment{}, fmt.Errorf("parse status: %w", err)
	}

	bus := appointmentbus.Appointment{
		ID:          db.ID,
		TenantID:    db.TenantID,
		ClientName:  cn,
		ClientPhone: ph,
		Service:     db.Service,
		StaffName:   sn,
		StartsAt:    db.StartsAt.UTC(),
		Duration:    time.Duration(db.DurationMinutes) * time.Minute,
		Price:       db.Price,
		Status:      st,
		CreatedAt:   db.CreatedAt.In(time.Local),
		UpdatedAt:   db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusAppointments(dbs []appointmentDB) ([]appointmentbus.Appointment, error) {
	bus := make([]appointmentbus.Appointment, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusAppointment(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
