package main

import (
	"context"
	"net/mail"
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/stretchr/testify/require"
)

func Test_DefaultSeedParses(t *testing.T) {
	sf, err := parseSeed(defaultSeed)
	require.NoError(t, err)
	require.Len(t, sf.Tenants, 5)
	require.Len(t, sf.Platform, 1)

	for _, st := range sf.Tenants {
		for _, su := range st.Users {
			_, err := parseNewUser(su.Name, su.Email, su.Password, su.Role, su.Phone)
			require.NoError(t, err, su.Email)
		}
	}
}

func Test_SeedRejectsUnknownVertical(t *testing.T) {
	_, err := parseSeed([]byte("tenants:\n  - name: Bad\n    vertical: CASINO\n"))
	require.Error(t, err)
}

func Test_ApplySeed(t *testing.T) {
	t.Parallel()

	db := dbtest.New(t, "Test_ApplySeed")
	ctx := context.Background()

	sf, err := parseSeed(defaultSeed)
	require.NoError(t, err)

	res, err := applySeed(ctx, db.BusDomain.Tenant, db.BusDomain.User, sf)
	require.NoError(t, err)
	require.Equal(t, 5, res.Tenants)
	require.Equal(t, 8, res.Users)
	require.Zero(t, res.Skipped)

	hotel, err := db.BusDomain.Tenant.QueryByCode(ctx, code.MustParse("harbor-hotel"))
	require.NoError(t, err)

	scope, err := tenancy.New(hotel.ID, hotel.ID)
	require.NoError(t, err)

	admin, err := db.BusDomain.User.Authenticate(ctx, mustEmail(t, "admin@harbor-hotel.local"), "harbor-secret-1")
	require.NoError(t, err)
	require.Equal(t, hotel.ID, admin.TenantID)
	require.Equal(t, role.Admin, admin.Role)

	_, err = db.BusDomain.User.QueryByID(ctx, scope, admin.ID)
	require.NoError(t, err)

	// Running it again creates nothing.
	res, err = applySeed(ctx, db.BusDomain.Tenant, db.BusDomain.User, sf)
	require.NoError(t, err)
	require.Zero(t, res.Tenants)
	require.Zero(t, res.Users)
	require.Equal(t, 8, res.Skipped)
}

func mustEmail(t *testing.T, s string) mail.Address {
	t.Helper()

	addr, err := mail.ParseAddress(s)
	require.NoError(t, err)

	return *addr
}
