package userapp

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/password"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
)

// User is a member of a tenant's staff.
type User struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenantId,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Enabled     bool   `json:"enabled"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app User) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppUser(bus userbus.User) User {
	var tenantID string
	if bus.TenantID != uuid.Nil {
		tenantID = bus.TenantID.String()
	}

	return User{
		ID:          bus.ID.String(),
		TenantID:    tenantID,
		Name:        bus.Name.String(),
		Email:       bus.Email.Address,
		Role:        bus.Role.String(),
		Phone:       bus.Phone.String(),
		Enabled:     bus.Enabled,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppUsers(usrs []userbus.User) []User {
	app := make([]User, len(usrs))
	for i, usr := range usrs {
		app[i] = toAppUser(usr)
	}
	return app
}

// =============================================================================

// NewUser defines the data an admin sends to add staff to the tenant.
type NewUser struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required"`
	Phone           string `json:"phone"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"passwordConfirm" validate:"eqfield=Password"`
}

// Decode implements the decoder interface.
func (app *NewUser) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewUser) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewUser(app NewUser) (userbus.NewUser, error) {
	var fieldErrors errs.FieldErrors

	nme, err := name.Parse(app.Name)
	if err != nil {
		fieldErrors.Add("name", err)
	}

	addr, err := mail.ParseAddress(app.Email)
	if err != nil {
		fieldErrors.Add("email", err)
	}

	rle, err := role.Parse(app.Role)
	if err != nil {
		fieldErrors.Add("role", err)
	}

	ph, err := phone.ParseNull(app.Phone)
	if err != nil {
		fieldErrors.Add("phone", err)
	}

	pass, err := password.ParseConfirm(app.Password, app.PasswordConfirm)
	if err != nil {
		fieldErrors.Add("password", err)
	}

	if fieldErrors != nil {
		return userbus.NewUser{}, fieldErrors.ToError()
	}

	bus := userbus.NewUser{
		Name:     nme,
		Email:    *addr,
		Role:     rle,
		Phone:    ph,
		Password: pass,
	}

	return bus, nil
}

// =============================================================================

// UpdateUserRole moves a user between ADMIN and STAFF.
type UpdateUserRole struct {
	Role string `json:"role" validate:"required"`
}

// Decode implements the decoder interface.
func (app *UpdateUserRole) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateUserRole) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateUserRole(app UpdateUserRole) (userbus.UpdateUser, error) {
	rle, err := role.Parse(app.Role)
	if err != nil {
		return userbus.UpdateUser{}, errs.NewFieldErrors("role", err).ToError()
	}

	return userbus.UpdateUser{Role: &rle}, nil
}

// =============================================================================

// UpdateUser defines the data needed to update a user. Role changes go
// through UpdateUserRole.
type UpdateUser struct {
	Name            *string `json:"name"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Phone           *string `json:"phone"`
	Password        *string `json:"password"`
	PasswordConfirm *string `json:"passwordConfirm" validate:"omitempty,eqfield=Password"`
	Enabled         *bool   `json:"enabled"`
}

// Decode implements the decoder interface.
func (app *UpdateUser) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateUser) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateUser(app UpdateUser) (userbus.UpdateUser, error) {
	var fieldErrors errs.FieldErrors
	var bus userbus.UpdateUser

	if app.Name != nil {
		nme, err := name.Parse(*app.Name)
		switch err {
		case nil:
			bus.Name = &nme
		default:
			fieldErrors.Add("name", err)
		}
	}

	if app.Email != nil {
		addr, err := mail.ParseAddress(*app.Email)
		switch err {
		case nil:
			bus.Email = addr
		default:
			fieldErrors.Add("email", err)
		}
	}

	if app.Phone != nil {
		ph, err := phone.ParseNull(*app.Phone)
		switch err {
		case nil:
			bus.Phone = &ph
		default:
			fieldErrors.Add("phone", err)
		}
	}

	if app.Password != nil {
		var confirm string
		if app.PasswordConfirm != nil {
			confirm = *app.PasswordConfirm
		}

		pass, err := password.ParseConfirm(*app.Password, confirm)
		switch err {
		case nil:
			bus.Password = &pass
		default:
			fieldErrors.Add("password", err)
		}
	}

	if fieldErrors != nil {
		return userbus.UpdateUser{}, fieldErrors.ToError()
	}

	bus.Enabled = app.Enabled

	return bus, nil
}
