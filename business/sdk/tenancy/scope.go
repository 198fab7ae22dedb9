// Package tenancy isolates tenant data. A Scope names the acting tenant and
// a DB built from it filters and stamps every statement that touches a table
// on the scoped allow-list.
package tenancy

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNoTenant is returned when a scope is requested without a tenant.
var ErrNoTenant = errors.New("tenant id is required")

// Scope identifies the tenant (and organization) a request acts for. The
// zero value is not usable against scoped tables.
type Scope struct {
	tenantID uuid.UUID
	orgID    uuid.UUID
	bypass   string
}

// New constructs a scope for the tenant. The organization defaults to the
// tenant when orgID is the zero uuid.
func New(tenantID uuid.UUID, orgID uuid.UUID) (Scope, error) {
	if tenantID == uuid.Nil {
		return Scope{}, ErrNoTenant
	}

	if orgID == uuid.Nil {
		orgID = tenantID
	}

	return Scope{
		tenantID: tenantID,
		orgID:    orgID,
	}, nil
}

// Bypass returns a scope that passes every statement through unmodified.
// Each statement run with it is logged together with the reason.
func Bypass(reason string) Scope {
	if reason == "" {
		reason = "unspecified"
	}

	return Scope{bypass: reason}
}

// TenantID returns the acting tenant. It is the zero uuid for a bypass.
func (s Scope) TenantID() uuid.UUID {
	return s.tenantID
}

// OrgID returns the acting organization.
func (s Scope) OrgID() uuid.UUID {
	return s.orgID
}

// IsBypass reports whether the scope was built by Bypass.
func (s Scope) IsBypass() bool {
	return s.bypass != ""
}

// Reason returns the bypass reason.
func (s Scope) Reason() string {
	return s.bypass
}

// Valid reports whether the scope can be used against scoped tables.
func (s Scope) Valid() bool {
	return s.IsBypass() || s.tenantID != uuid.Nil
}

// Owns reports whether a row stamped with tenantID is visible to the scope.
func (s Scope) Owns(tenantID uuid.UUID) bool {
	if s.IsBypass() {
		return true
	}

	return s.tenantID != uuid.Nil && s.tenantID == tenantID
}

// String implements the fmt.Stringer interface.
func (s Scope) String() string {
	if s.IsBypass() {
		return fmt.Sprintf("bypass(%s)", s.bypass)
	}

	return fmt.Sprintf("tenant(%s) org(%s)", s.tenantID, s.orgID)
}
