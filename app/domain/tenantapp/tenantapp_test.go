package tenantapp_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/tenantapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/stretchr/testify/require"
)

func Test_Tenant(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Tenant", all.Routes())
	ctx := context.Background()

	hotel := at.SeedTenant(t, vertical.Hotel)
	root := at.SeedUser(t, tenantbus.Tenant{}, role.SuperAdmin)

	scope, err := tenancy.New(hotel.ID, uuid.Nil)
	require.NoError(t, err)

	_, err = reservationbus.TestSeedReservations(ctx, scope, 3, reservationbus.Day(time.Now().AddDate(0, 0, 5)), at.DB.BusDomain.Reservation)
	require.NoError(t, err)

	var created tenantapp.Tenant

	at.Run(t, []apitest.Table{
		{
			Name:       "create",
			URL:        "/api/v1/admin/tenants",
			Token:      root.Token,
			Method:     http.MethodPost,
			Input:      &tenantapp.NewTenant{Name: "Harbor View Inn", Vertical: "HOTEL"},
			StatusCode: http.StatusCreated,
			GotResp:    &created,
			ExpResp:    &tenantapp.Tenant{Name: "Harbor View Inn", Code: "harbor-view-inn", Vertical: "HOTEL", Enabled: true},
			CmpFunc: func(got any, exp any) string {
				g := got.(*tenantapp.Tenant)
				e := exp.(*tenantapp.Tenant)
				if g.Name != e.Name || g.Code != e.Code || g.Vertical != e.Vertical || g.Enabled != e.Enabled {
					return fmt.Sprintf("got %+v", g)
				}
				return ""
			},
		},
	}, "create")

	require.NotEmpty(t, created.ID)

	table := []apitest.Table{
		{
			Name:       "duplicate-code",
			URL:        "/api/v1/admin/tenants",
			Token:      root.Token,
			Method:     http.MethodPost,
			Input:      &tenantapp.NewTenant{Name: "Harbor View Inn", Vertical: "RETAIL"},
			StatusCode: http.StatusConflict,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Aborted},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "unknown-vertical",
			URL:        "/api/v1/admin/tenants",
			Token:      root.Token,
			Method:     http.MethodPost,
			Input:      &tenantapp.NewTenant{Name: "Night Market", Vertical: "CASINO"},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "tenant-stats",
			URL:        "/api/v1/admin/tenants/" + hotel.ID.String() + "/stats",
			Token:      root.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &tenantapp.Stats{},
			ExpResp:    &tenantapp.Stats{Tenants: 1, Rows: map[string]int{"users": 2, "reservations": 3}},
			CmpFunc:    cmpStats,
		},
		{
			Name:       "new-tenant-stats",
			URL:        "/api/v1/admin/tenants/" + created.ID + "/stats",
			Token:      root.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &tenantapp.Stats{},
			ExpResp:    &tenantapp.Stats{Tenants: 1, Rows: map[string]int{"users": 0, "reservations": 0}},
			CmpFunc:    cmpStats,
		},
		{
			Name:       "platform-stats",
			URL:        "/api/v1/admin/stats",
			Token:      root.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &tenantapp.Stats{},
			ExpResp:    &tenantapp.Stats{Tenants: 2, Rows: map[string]int{"users": 3, "reservations": 3}},
			CmpFunc:    cmpStats,
		},
		{
			Name:       "tenant-admin-denied",
			URL:        "/api/v1/admin/stats",
			Token:      hotel.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "delete",
			URL:        "/api/v1/admin/tenants/" + created.ID,
			Token:      root.Token,
			Method:     http.MethodDelete,
			StatusCode: http.StatusNoContent,
		},
		{
			Name:       "deleted",
			URL:        "/api/v1/admin/tenants/" + created.ID,
			Token:      root.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusNotFound,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.NotFound},
			CmpFunc:    cmpCode,
		},
	}

	at.Run(t, table, "tenant")
}

// cmpStats checks the tenant count and only the row counts named in exp.
func cmpStats(got any, exp any) string {
	g := got.(*tenantapp.Stats)
	e := exp.(*tenantapp.Stats)

	if g.Tenants != e.Tenants {
		return fmt.Sprintf("got %d tenants, expected %d", g.Tenants, e.Tenants)
	}

	for table, n := range e.Rows {
		if g.Rows[table] != n {
			return fmt.Sprintf("got %d %s, expected %d", g.Rows[table], table, n)
		}
	}

	return ""
}

func cmpCode(got any, exp any) string {
	g := got.(*errs.Error)
	e := exp.(*errs.Error)

	if g.Code != e.Code {
		return "got code " + g.Code.String() + ", expected " + e.Code.String()
	}

	return ""
}
