package tenantbus_test

import (
	"context"
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func Test_Tenant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_Tenant")
	api := db.BusDomain.Tenant

	t.Run("create", func(t *testing.T) {
		tn, err := api.Create(ctx, tenantbus.NewTenant{Name: "Hôtel Étoile", Vertical: vertical.Hotel})
		require.NoError(t, err)
		require.Equal(t, "hotel-etoile", tn.Code.String())
		require.True(t, tn.Enabled)

		got, err := api.QueryByCode(ctx, tn.Code)
		require.NoError(t, err)
		require.Equal(t, tn.ID, got.ID)

		_, err = api.Create(ctx, tenantbus.NewTenant{Name: "Hotel Etoile", Vertical: vertical.Hotel})
		require.ErrorIs(t, err, tenantbus.ErrUniqueCode)

		c := code.MustParse("etoile-2")
		tn2, err := api.Create(ctx, tenantbus.NewTenant{Name: "Hotel Etoile", Code: &c, Vertical: vertical.Hotel})
		require.NoError(t, err)
		require.Equal(t, c, tn2.Code)
	})

	t.Run("disable", func(t *testing.T) {
		tenants, err := tenantbus.TestSeedTenants(ctx, 1, vertical.Salon, api)
		require.NoError(t, err)

		_, err = api.Active(ctx, tenants[0].ID)
		require.NoError(t, err)

		off := false
		_, err = api.Update(ctx, tenants[0], tenantbus.UpdateTenant{Enabled: &off})
		require.NoError(t, err)

		_, err = api.Active(ctx, tenants[0].ID)
		require.ErrorIs(t, err, tenantbus.ErrDisabled)

		_, err = api.Active(ctx, uuid.New())
		require.ErrorIs(t, err, tenantbus.ErrNotFound)
	})

	t.Run("query", func(t *testing.T) {
		vt := vertical.Hotel
		got, err := api.Query(ctx, tenantbus.QueryFilter{Vertical: &vt}, order.NewBy(tenantbus.OrderByCode, order.ASC), page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "etoile-2", got[0].Code.String())

		n, err := api.Count(ctx, tenantbus.QueryFilter{})
		require.NoError(t, err)
		require.Equal(t, 3, n)
	})

	t.Run("stats", func(t *testing.T) {
		tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Retail, api)
		require.NoError(t, err)

		for i, tn := range tenants {
			scope, err := tenancy.New(tn.ID, uuid.Nil)
			require.NoError(t, err)

			_, err = productbus.TestSeedProducts(ctx, scope, i+1, db.BusDomain.Product)
			require.NoError(t, err)

			_, err = userbus.TestSeedUsers(ctx, scope, 1, role.Staff, db.BusDomain.User)
			require.NoError(t, err)
		}

		st, err := api.Stats(ctx, tenants[1])
		require.NoError(t, err)
		require.Equal(t, 2, st.Rows["products"])
		require.Equal(t, 1, st.Rows["users"])
		require.Zero(t, st.Rows["orders"])

		pst, err := api.PlatformStats(ctx)
		require.NoError(t, err)
		require.Equal(t, 5, pst.Tenants)
		require.Equal(t, 3, pst.Rows["products"])
		require.Equal(t, 2, pst.Rows["users"])
	})

	t.Run("delete", func(t *testing.T) {
		tenants, err := tenantbus.TestSeedTenants(ctx, 1, vertical.Brewery, api)
		require.NoError(t, err)

		require.NoError(t, api.Delete(ctx, tenants[0]))

		_, err = api.QueryByID(ctx, tenants[0].ID)
		require.ErrorIs(t, err, tenantbus.ErrNotFound)
	})
}
