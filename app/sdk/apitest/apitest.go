// Package apitest provides support for excuting api test logic.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mux"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/jcpaschoal/vertical-suite/foundation/keystore"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	issuer = "vertical-suite-test"
	kid    = "s4sKIjD9kIRjxs2tulPqGLdxSfgPErRN1Mu3HjXHHKH"
)

// Test contains functions for executing an api test.
type Test struct {
	DB   *dbtest.Database
	Auth *auth.Auth
	mux  http.Handler
}

// New constructs a Test value against a fresh database and a freshly
// generated signing key.
func New(t *testing.T, testName string, routeAdder mux.RouteAdder) *Test {
	db := dbtest.New(t, testName)

	var pem bytes.Buffer
	require.NoError(t, keystore.GenerateKey(&pem))

	ks := keystore.New()
	require.NoError(t, ks.LoadKey(kid, pem.Bytes()))

	ath := auth.New(auth.Config{
		Log:       db.Log,
		UserBus:   db.BusDomain.User,
		KeyLookup: ks,
		Issuer:    issuer,
		ActiveKID: kid,
	})

	h, err := mux.WebAPI(mux.Config{
		Build:  "test",
		Log:    db.Log,
		DB:     db.DB,
		Tracer: noop.NewTracerProvider().Tracer(""),
		AuthConfig: mux.AuthConfig{
			KeyLookup: ks,
			Issuer:    issuer,
			ActiveKID: kid,
		},
	}, routeAdder)
	require.NoError(t, err)

	return &Test{
		DB:   db,
		Auth: ath,
		mux:  h,
	}
}

// Do sends the request through the full handler chain.
func (at *Test) Do(r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	at.mux.ServeHTTP(w, r)
	return w
}

// Run performs the actual test logic based on the table data.
func (at *Test) Run(t *testing.T, table []Table, testName string) {
	for _, tt := range table {
		f := func(t *testing.T) {
			var body bytes.Buffer
			if tt.Input != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(tt.Input))
			}

			r := httptest.NewRequest(tt.Method, tt.URL, &body)

			if tt.Token != "" {
				r.Header.Set("Authorization", "Bearer "+tt.Token)
			}

			for k, v := range tt.Headers {
				r.Header.Set(k, v)
			}

			w := at.Do(r)

			require.Equal(t, tt.StatusCode, w.Code, "body: %s", w.Body.String())

			if tt.StatusCode == http.StatusNoContent {
				return
			}

			require.NoError(t, json.Unmarshal(w.Body.Bytes(), tt.GotResp), "body: %s", w.Body.String())

			cmpFn := tt.CmpFunc
			if cmpFn == nil {
				cmpFn = func(got any, exp any) string { return cmp.Diff(got, exp) }
			}

			if diff := cmpFn(tt.GotResp, tt.ExpResp); diff != "" {
				t.Log("DIFF")
				t.Logf("%s", diff)
				t.Log("GOT")
				t.Logf("%#v", tt.GotResp)
				t.Log("EXP")
				t.Logf("%#v", tt.ExpResp)
				t.Fatalf("Should get the expected response")
			}
		}

		t.Run(testName+"-"+tt.Name, f)
	}
}

// =============================================================================

// SeedTenant creates an enabled tenant with an admin and a staff user.
func (at *Test) SeedTenant(t *testing.T, vt vertical.Vertical) Tenant {
	ctx := context.Background()

	tenants, err := tenantbus.TestSeedTenants(ctx, 1, vt, at.DB.BusDomain.Tenant)
	require.NoError(t, err)

	tnt := tenants[0]

	return Tenant{
		Tenant: tnt,
		Admin:  at.SeedUser(t, tnt, role.Admin),
		Staff:  at.SeedUser(t, tnt, role.Staff),
	}
}

// SeedUser creates a user with the role inside the tenant. A zero tenant
// creates a platform user.
func (at *Test) SeedUser(t *testing.T, tnt tenantbus.Tenant, rle role.Role) User {
	ctx := context.Background()

	scope := tenancy.Bypass("test seed platform user")
	if tnt.ID != uuid.Nil {
		var err error
		scope, err = tenancy.New(tnt.ID, uuid.Nil)
		require.NoError(t, err)
	}

	usrs, err := userbus.TestSeedUsers(ctx, scope, 1, rle, at.DB.BusDomain.User)
	require.NoError(t, err)

	return User{
		User:  usrs[0],
		Token: at.Token(t, usrs[0]),
	}
}

// Token signs a token for the user.
func (at *Test) Token(t *testing.T, usr userbus.User) string {
	token, err := at.Auth.GenerateToken(usr, uuid.Nil)
	require.NoError(t, err)
	return token
}
