package userbus_test

import (
	"context"
	"net/mail"
	"testing"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/stretchr/testify/require"
)

func Test_User(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_User")
	api := db.BusDomain.User

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Salon, db.BusDomain.Tenant)
	require.NoError(t, err)

	scope, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	other, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	usrs, err := userbus.TestSeedUsers(ctx, scope, 2, role.Staff, api)
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		nu := userbus.TestNewUsers(1, role.Admin)[0]
		nu.Phone = phone.MustParseNull("+1 555 0100 200")

		usr, err := api.Create(ctx, scope, nu)
		require.NoError(t, err)
		require.Equal(t, tenants[0].ID, usr.TenantID)
		require.True(t, usr.Enabled)

		got, err := api.QueryByID(ctx, scope, usr.ID)
		require.NoError(t, err)
		require.Equal(t, nu.Email.Address, got.Email.Address)
		require.Equal(t, "+15550100200", got.Phone.String())
		require.True(t, got.Role.Equal(role.Admin))
	})

	t.Run("role-scope", func(t *testing.T) {
		nu := userbus.TestNewUsers(1, role.SuperAdmin)[0]

		_, err := api.Create(ctx, scope, nu)
		require.ErrorIs(t, err, userbus.ErrRoleScope)

		nu = userbus.TestNewUsers(1, role.Staff)[0]
		_, err = api.Create(ctx, tenancy.Bypass("test"), nu)
		require.ErrorIs(t, err, userbus.ErrRoleScope)

		sa := role.SuperAdmin
		_, err = api.Update(ctx, scope, usrs[0], userbus.UpdateUser{Role: &sa})
		require.ErrorIs(t, err, userbus.ErrRoleScope)
	})

	t.Run("platform-user", func(t *testing.T) {
		nu := userbus.TestNewUsers(1, role.SuperAdmin)[0]

		usr, err := api.Create(ctx, tenancy.Bypass("test"), nu)
		require.NoError(t, err)
		require.Equal(t, uuid.Nil, usr.TenantID)

		_, err = api.QueryByID(ctx, scope, usr.ID)
		require.ErrorIs(t, err, userbus.ErrNotFound)
	})

	t.Run("unique-email", func(t *testing.T) {
		nu := userbus.TestNewUsers(1, role.Staff)[0]
		nu.Email = usrs[0].Email

		_, err := api.Create(ctx, other, nu)
		require.ErrorIs(t, err, userbus.ErrUniqueEmail)
	})

	t.Run("authenticate", func(t *testing.T) {
		nu := userbus.TestNewUsers(1, role.Staff)[0]

		usr, err := api.Create(ctx, scope, nu)
		require.NoError(t, err)

		got, err := api.Authenticate(ctx, nu.Email, nu.Password.String())
		require.NoError(t, err)
		require.Equal(t, usr.ID, got.ID)
		require.Equal(t, tenants[0].ID, got.TenantID)

		_, err = api.Authenticate(ctx, nu.Email, "wrong-password")
		require.ErrorIs(t, err, userbus.ErrAuthenticationFailure)

		_, err = api.Authenticate(ctx, mail.Address{Address: "nobody@example.com"}, "password")
		require.ErrorIs(t, err, userbus.ErrNotFound)
	})

	t.Run("tenant", func(t *testing.T) {
		_, err := api.QueryByID(ctx, other, usrs[0].ID)
		require.ErrorIs(t, err, userbus.ErrNotFound)

		_, err = api.QueryByEmail(ctx, other, usrs[0].Email)
		require.ErrorIs(t, err, userbus.ErrNotFound)

		n, err := api.Count(ctx, other, userbus.QueryFilter{})
		require.NoError(t, err)
		require.Equal(t, 0, n)

		nn := name.MustParse("Hijacked")
		_, err = api.Update(ctx, other, usrs[0], userbus.UpdateUser{Name: &nn})
		require.NoError(t, err)

		got, err := api.QueryByID(ctx, scope, usrs[0].ID)
		require.NoError(t, err)
		require.Equal(t, usrs[0].Name.String(), got.Name.String())
	})

	t.Run("query", func(t *testing.T) {
		staff := role.Staff
		got, err := api.Query(ctx, scope, userbus.QueryFilter{Role: &staff}, userbus.DefaultOrderBy, page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, got, 3)

		for _, usr := range got {
			require.Equal(t, tenants[0].ID, usr.TenantID)
		}

		got, err = api.Query(ctx, scope, userbus.QueryFilter{}, order.NewBy(userbus.OrderByName, order.DESC), page.MustParse("1", "1"))
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, api.Delete(ctx, other, usrs[1]))

		_, err := api.QueryByID(ctx, scope, usrs[1].ID)
		require.NoError(t, err, "delete from another tenant must not reach the row")

		require.NoError(t, api.Delete(ctx, scope, usrs[1]))

		_, err = api.QueryByID(ctx, scope, usrs[1].ID)
		require.ErrorIs(t, err, userbus.ErrNotFound)
	})
}
