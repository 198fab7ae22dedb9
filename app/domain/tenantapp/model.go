package tenantapp

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
)

// Tenant represents a customer organization.
type Tenant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Vertical    string `json:"vertical"`
	Enabled     bool   `json:"enabled"`
	DateCreated string `json:"dateCreated"`
	DateUpdated string `json:"dateUpdated"`
}

// Encode implements the encoder interface.
func (app Tenant) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppTenant(bus tenantbus.Tenant) Tenant {
	return Tenant{
		ID:          bus.ID.String(),
		Name:        bus.Name,
		Code:        bus.Code.String(),
		Vertical:    bus.Vertical.String(),
		Enabled:     bus.Enabled,
		DateCreated: bus.CreatedAt.Format(time.RFC3339),
		DateUpdated: bus.UpdatedAt.Format(time.RFC3339),
	}
}

func toAppTenants(tenants []tenantbus.Tenant) []Tenant {
	app := make([]Tenant, len(tenants))
	for i, t := range tenants {
		app[i] = toAppTenant(t)
	}
	return app
}

// =============================================================================

// NewTenant defines the data needed to onboard a tenant. Code is derived
// from the name when empty.
type NewTenant struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Code     string `json:"code"`
	Vertical string `json:"vertical" validate:"required"`
}

// Decode implements the decoder interface.
func (app *NewTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app NewTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusNewTenant(app NewTenant) (tenantbus.NewTenant, error) {
	var fieldErrors errs.FieldErrors

	vert, err := vertical.Parse(app.Vertical)
	if err != nil {
		fieldErrors.Add("vertical", err)
	}

	var tc *code.Code
	if app.Code != "" {
		c, err := code.Parse(app.Code)
		switch err {
		case nil:
			tc = &c
		default:
			fieldErrors.Add("code", err)
		}
	}

	if fieldErrors != nil {
		return tenantbus.NewTenant{}, fieldErrors.ToError()
	}

	bus := tenantbus.NewTenant{
		Name:     app.Name,
		Code:     tc,
		Vertical: vert,
	}

	return bus, nil
}

// =============================================================================

// UpdateTenant defines the data needed to change a tenant.
type UpdateTenant struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=120"`
	Vertical *string `json:"vertical"`
	Enabled  *bool   `json:"enabled"`
}

// Decode implements the decoder interface.
func (app *UpdateTenant) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app UpdateTenant) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

func toBusUpdateTenant(app UpdateTenant) (tenantbus.UpdateTenant, error) {
	var bus tenantbus.UpdateTenant

	if app.Vertical != nil {
		vert, err := vertical.Parse(*app.Vertical)
		if err != nil {
			return tenantbus.UpdateTenant{}, errs.NewFieldErrors("vertical", err).ToError()
		}
		bus.Vertical = &vert
	}

	bus.Name = app.Name
	bus.Enabled = app.Enabled

	return bus, nil
}

// =============================================================================

// Stats holds row counts per scoped table.
type Stats struct {
	Tenants int            `json:"tenants"`
	Rows    map[string]int `json:"rows"`
}

// Encode implements the encoder interface.
func (app Stats) Encode() ([]byte, string, error) {
	data, err := json.Marshal(app)
	return data, "application/json", err
}

func toAppStats(bus tenantbus.Stats) Stats {
	rows := bus.Rows
	if rows == nil {
		rows = map[string]int{}
	}

	return Stats{
		Tenants: bus.Tenants,
		Rows:    rows,
	}
}
