package orderbus_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Order(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_Order")
	api := db.BusDomain.Order

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Restaurant, db.BusDomain.Tenant)
	require.NoError(t, err)

	scope, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	other, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	tx, err := db.Beginner().Begin()
	require.NoError(t, err)

	txAPI, err := api.NewWithTx(tx)
	require.NoError(t, err)

	orders, err := orderbus.TestSeedOrders(ctx, scope, 2, txAPI)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	t.Run("create", func(t *testing.T) {
		o := orders[0]
		require.Equal(t, orderbus.StatusOpen, o.Status)
		require.True(t, decimal.RequireFromString("31.50").Equal(o.Total), o.Total.String())

		got, err := api.QueryByID(ctx, scope, o.ID)
		require.NoError(t, err)
		require.Len(t, got.Items, 2)
		require.True(t, o.Total.Equal(got.Total))

		for _, item := range got.Items {
			require.Equal(t, scope.TenantID(), item.TenantID)
			require.Equal(t, o.ID, item.OrderID)
		}
		require.Equal(t, "Burger", got.Items[0].Name)
		require.True(t, decimal.RequireFromString("25").Equal(got.Items[0].LineTotal))
	})

	t.Run("no-items", func(t *testing.T) {
		_, err := api.Create(ctx, scope, orderbus.NewOrder{TableNumber: 9})
		require.ErrorIs(t, err, orderbus.ErrNoItems)
	})

	t.Run("status", func(t *testing.T) {
		_, err := api.ChangeStatus(ctx, scope, orders[0], orderbus.StatusPaid)
		require.ErrorIs(t, err, orderbus.ErrTransition)

		o, err := api.ChangeStatus(ctx, scope, orders[0], orderbus.StatusServed)
		require.NoError(t, err)

		o, err = api.ChangeStatus(ctx, scope, o, orderbus.StatusPaid)
		require.NoError(t, err)

		_, err = api.ChangeStatus(ctx, scope, o, orderbus.StatusCancelled)
		require.ErrorIs(t, err, orderbus.ErrTransition)

		paid := orderbus.StatusPaid
		got, err := api.Query(ctx, scope, orderbus.QueryFilter{Status: &paid}, orderbus.DefaultOrderBy, page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, orders[0].ID, got[0].ID)
	})

	t.Run("tenant", func(t *testing.T) {
		_, err := api.QueryByID(ctx, other, orders[1].ID)
		require.ErrorIs(t, err, orderbus.ErrNotFound)

		n, err := api.Count(ctx, other, orderbus.QueryFilter{})
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, api.Delete(ctx, scope, orders[1]))

		_, err := api.QueryByID(ctx, scope, orders[1].ID)
		require.ErrorIs(t, err, orderbus.ErrNotFound)

		n, err := api.Count(ctx, scope, orderbus.QueryFilter{})
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})
}
