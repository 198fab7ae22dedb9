package tenantbus

import (
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
)

// Tenant represents a customer organization, the unit of data isolation.
type Tenant struct {
	ID        uuid.UUID
	Name      string
	Code      code.Code
	Vertical  vertical.Vertical
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTenant contains information needed to create a new tenant. When Code
// is nil it is derived from Name.
type NewTenant struct {
	Name     string
	Code     *code.Code
	Vertical vertical.Vertical
}

// UpdateTenant contains information needed to update a tenant.
type UpdateTenant struct {
	Name     *string
	Vertical *vertical.Vertical
	Enabled  *bool
}

// Stats holds row counts for the scoped tables.
type Stats struct {
	Tenants int
	Rows    map[string]int
}
