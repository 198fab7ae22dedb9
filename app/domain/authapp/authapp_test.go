package authapp_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/authapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
)

func Test_Login(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Login", all.Routes())

	cafe := at.SeedTenant(t, vertical.Restaurant)
	root := at.SeedUser(t, tenantbus.Tenant{}, role.SuperAdmin)

	orgID := uuid.New()

	table := []apitest.Table{
		{
			Name:       "no-org",
			URL:        "/api/v1/auth/login",
			Method:     http.MethodPost,
			Input:      credentials(cafe.Staff.User, ""),
			StatusCode: http.StatusOK,
			GotResp:    &authapp.Token{},
			ExpResp:    &authapp.Token{},
			CmpFunc:    cmpClaims(at, cafe.ID, ""),
		},
		{
			Name:       "with-org",
			URL:        "/api/v1/auth/login",
			Method:     http.MethodPost,
			Input:      credentials(cafe.Staff.User, orgID.String()),
			StatusCode: http.StatusOK,
			GotResp:    &authapp.Token{},
			ExpResp:    &authapp.Token{},
			CmpFunc:    cmpClaims(at, cafe.ID, orgID.String()),
		},
		{
			Name:       "bad-org",
			URL:        "/api/v1/auth/login",
			Method:     http.MethodPost,
			Input:      credentials(cafe.Staff.User, "not-a-uuid"),
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "platform-user-org",
			URL:        "/api/v1/auth/login",
			Method:     http.MethodPost,
			Input:      credentials(root.User, orgID.String()),
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:   "wrong-password",
			URL:    "/api/v1/auth/login",
			Method: http.MethodPost,
			Input: &authapp.Login{
				Email:    cafe.Staff.Email.Address,
				Password: "not-the-password",
			},
			StatusCode: http.StatusUnauthorized,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Unauthenticated},
			CmpFunc:    cmpCode,
		},
	}

	at.Run(t, table, "login")
}

// credentials rebuilds the login for a seeded user. Seeded users carry
// emailN@example.com with the password passwordN.
func credentials(usr userbus.User, orgID string) *authapp.Login {
	n := strings.TrimSuffix(strings.TrimPrefix(usr.Email.Address, "email"), "@example.com")

	return &authapp.Login{
		Email:    usr.Email.Address,
		Password: "password" + n,
		OrgID:    orgID,
	}
}

func cmpClaims(at *apitest.Test, tenantID uuid.UUID, orgID string) func(got any, exp any) string {
	return func(got any, _ any) string {
		tkn := got.(*authapp.Token)

		claims, err := at.Auth.Authenticate(context.Background(), "Bearer "+tkn.Token)
		if err != nil {
			return "authenticate: " + err.Error()
		}

		if claims.TenantID != tenantID.String() {
			return "got tenant " + claims.TenantID + ", expected " + tenantID.String()
		}

		if claims.OrgID != orgID {
			return "got org " + claims.OrgID + ", expected " + orgID
		}

		return ""
	}
}

func cmpCode(got any, exp any) string {
	g := got.(*errs.Error)
	e := exp.(*errs.Error)

	if g.Code != e.Code {
		return "got code " + g.Code.String() + ", expected " + e.Code.String()
	}

	return ""
}
