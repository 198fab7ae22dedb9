package userdb

import (
	"database/sql"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
)

type userDB struct {
	ID           uuid.UUID      `db:"user_id"`
	TenantID     uuid.NullUUID  `db:"tenant_id"`
	Name         string         `db:"name"`
	Email        string         `db:"email"`
	Role         string         `db:"role"`
	PasswordHash []byte         `db:"password_hash"`
	Phone        sql.NullString `db:"phone"`
	Enabled      bool           `db:"enabled"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// OwnerTenant implements tenancy.Owned. Platform users report the zero
// uuid, which no tenant scope owns.
func (u userDB) OwnerTenant() uuid.UUID {
	if !u.TenantID.Valid {
		return uuid.Nil
	}
	return u.TenantID.UUID
}

func toDBRow(bus userbus.User) tenancy.Row {
	var tenantID any
	if bus.TenantID != uuid.Nil {
		tenantID = bus.TenantID.String()
	}

	return tenancy.Row{
		"user_id":       bus.ID.String(),
		"tenant_id":     tenantID,
		"name":          bus.Name.String(),
		"email":         bus.Email.Address,
		"role":          bus.Role.String(),
		"password_hash": bus.PasswordHash,
		"phone":         phone.ToSQLNullString(bus.Phone),
		"enabled":       bus.Enabled,
		"created_at":    bus.CreatedAt.UTC(),
		"updated_at":    bus.UpdatedAt.UTC(),
	}
}

func toBusUser(db userDB) (userbus.User, error) {
	usrRole, err := role.Parse(db.Role)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse role: %w", err)
	}

	nme, err := name.Parse(db.Name)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse name: %w", err)
	}

	ph, err := phone.ParseNull(db.Phone.String)
	if err != nil {
		return userbus.User{}, fmt.Errorf("parse phone: %w", err)
	}

	bus := userbus.User{
		ID:           db.ID,
		TenantID:     db.OwnerTenant(),
		Name:         nme,
		Email:        mail.Address{Address: db.Email},
		Role:         usrRole,
		PasswordHash: db.PasswordHash,
		Phone:        ph,
		Enabled:      db.Enabled,
		CreatedAt:    db.CreatedAt.In(time.Local),
		UpdatedAt:    db.UpdatedAt.In(time.Local),
	}

	return bus, nil
}

func toBusUsers(dbs []userDB) ([]userbus.User, error) {
	bus := make([]userbus.User, len(dbs))

	for i, db := range dbs {
		var err error
		bus[i], err = toBusUser(db)
		if err != nil {
			return nil, err
		}
	}

	return bus, nil
}
