package mid_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/reservationapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/tenantapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/stretchr/testify/require"
)

func Test_Authenticate(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Authenticate", all.Routes())

	tnt := at.SeedTenant(t, vertical.Hotel)

	// Every case below must be refused before the database is touched.
	require.NoError(t, at.DB.DB.Close())

	table := []apitest.Table{
		{
			Name:       "no-header",
			URL:        "/api/v1/reservations",
			Method:     http.MethodGet,
			StatusCode: http.StatusUnauthorized,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Unauthenticated},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "not-bearer",
			URL:        "/api/v1/reservations",
			Method:     http.MethodGet,
			Headers:    map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			StatusCode: http.StatusUnauthorized,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Unauthenticated},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "garbage-token",
			URL:        "/api/v1/reservations",
			Token:      "not.a.token",
			Method:     http.MethodGet,
			StatusCode: http.StatusUnauthorized,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Unauthenticated},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "tampered-token",
			URL:        "/api/v1/reservations",
			Token:      tnt.Admin.Token + "x",
			Method:     http.MethodGet,
			StatusCode: http.StatusUnauthorized,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Unauthenticated},
			CmpFunc:    cmpCode,
		},
	}

	at.Run(t, table, "authenticate")
}

func Test_TenantResolution(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_TenantResolution", all.Routes())
	ctx := context.Background()

	a := at.SeedTenant(t, vertical.Hotel)
	b := at.SeedTenant(t, vertical.Hotel)
	root := at.SeedUser(t, tenantbus.Tenant{}, role.SuperAdmin)

	start := reservationbus.Day(time.Now().AddDate(0, 0, 7))

	scopeA, err := tenancy.New(a.ID, uuid.Nil)
	require.NoError(t, err)
	_, err = reservationbus.TestSeedReservations(ctx, scopeA, 1, start, at.DB.BusDomain.Reservation)
	require.NoError(t, err)

	scopeB, err := tenancy.New(b.ID, uuid.Nil)
	require.NoError(t, err)
	_, err = reservationbus.TestSeedReservations(ctx, scopeB, 2, start, at.DB.BusDomain.Reservation)
	require.NoError(t, err)

	disabled := false

	table := []apitest.Table{
		{
			Name:       "own-tenant",
			URL:        "/api/v1/reservations",
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &query.Result[reservationapp.Reservation]{},
			ExpResp:    &query.Result[reservationapp.Reservation]{Total: 1},
			CmpFunc:    cmpTotal,
		},
		{
			Name:       "own-tenant-header",
			URL:        "/api/v1/reservations",
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantID: a.ID.String()},
			StatusCode: http.StatusOK,
			GotResp:    &query.Result[reservationapp.Reservation]{},
			ExpResp:    &query.Result[reservationapp.Reservation]{Total: 1},
			CmpFunc:    cmpTotal,
		},
		{
			Name:       "other-tenant-id",
			URL:        "/api/v1/reservations",
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantID: b.ID.String()},
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "other-tenant-code",
			URL:        "/api/v1/reservations",
			Token:      a.Staff.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantCode: b.Code.String()},
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "superadmin-no-tenant",
			URL:        "/api/v1/reservations",
			Token:      root.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusUnauthorized,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Unauthenticated},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "superadmin-tenant-id",
			URL:        "/api/v1/reservations",
			Token:      root.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantID: b.ID.String()},
			StatusCode: http.StatusOK,
			GotResp:    &query.Result[reservationapp.Reservation]{},
			ExpResp:    &query.Result[reservationapp.Reservation]{Total: 2},
			CmpFunc:    cmpTotal,
		},
		{
			Name:       "superadmin-tenant-code",
			URL:        "/api/v1/reservations",
			Token:      root.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantCode: a.Code.String()},
			StatusCode: http.StatusOK,
			GotResp:    &query.Result[reservationapp.Reservation]{},
			ExpResp:    &query.Result[reservationapp.Reservation]{Total: 1},
			CmpFunc:    cmpTotal,
		},
		{
			Name:       "superadmin-bad-id",
			URL:        "/api/v1/reservations",
			Token:      root.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantID: "room-101"},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "superadmin-unknown-tenant",
			URL:        "/api/v1/reservations",
			Token:      root.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantID: uuid.NewString()},
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "staff-cannot-delete-users",
			URL:        "/api/v1/users/" + a.Admin.ID.String(),
			Token:      a.Staff.Token,
			Method:     http.MethodDelete,
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "admin-cannot-reach-console",
			URL:        "/api/v1/admin/tenants",
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "disable-tenant",
			URL:        "/api/v1/admin/tenants/" + b.ID.String(),
			Token:      root.Token,
			Method:     http.MethodPut,
			Input:      &tenantapp.UpdateTenant{Enabled: &disabled},
			StatusCode: http.StatusOK,
			GotResp:    &tenantapp.Tenant{},
			ExpResp:    &tenantapp.Tenant{ID: b.ID.String(), Enabled: false},
			CmpFunc: func(got any, exp any) string {
				g := got.(*tenantapp.Tenant)
				e := exp.(*tenantapp.Tenant)
				if g.ID != e.ID || g.Enabled != e.Enabled {
					return "tenant not disabled"
				}
				return ""
			},
		},
		{
			Name:       "disabled-tenant-user",
			URL:        "/api/v1/reservations",
			Token:      b.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "disabled-tenant-superadmin",
			URL:        "/api/v1/reservations",
			Token:      root.Token,
			Method:     http.MethodGet,
			Headers:    map[string]string{mid.HeaderTenantID: b.ID.String()},
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
	}

	at.Run(t, table, "tenant")
}

func cmpCode(got any, exp any) string {
	g := got.(*errs.Error)
	e := exp.(*errs.Error)

	if g.Code != e.Code {
		return "got code " + g.Code.String() + ", expected " + e.Code.String()
	}

	return ""
}

func cmpTotal(got any, exp any) string {
	g := got.(*query.Result[reservationapp.Reservation])
	e := exp.(*query.Result[reservationapp.Reservation])

	if g.Total != e.Total || len(g.Items) != e.Total {
		return "unexpected number of reservations"
	}

	return ""
}
