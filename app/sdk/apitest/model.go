package apitest

import (
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
)

// User extends the bus user with a signed token for api calls.
type User struct {
	userbus.User
	Token string
}

// Tenant is a seeded tenant with one user per role.
type Tenant struct {
	tenantbus.Tenant
	Admin User
	Staff User
}

// Table represents fields needed for running an api test.
type Table struct {
	Name       string
	URL        string
	Token      string
	Method     string
	Headers    map[string]string
	StatusCode int
	Input      any
	GotResp    any
	ExpResp    any
	CmpFunc    func(got any, exp any) string
}
