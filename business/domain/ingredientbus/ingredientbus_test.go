package ingredientbus_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Ingredient(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_Ingredient")
	api := db.BusDomain.Ingredient

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Brewery, db.BusDomain.Tenant)
	require.NoError(t, err)

	scope, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	other, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	ings, err := ingredientbus.TestSeedIngredients(ctx, scope, 2, decimal.RequireFromString("12.5"), api)
	require.NoError(t, err)

	t.Run("opening-stock", func(t *testing.T) {
		got, err := api.QueryByID(ctx, scope, ings[0].ID)
		require.NoError(t, err)
		require.Equal(t, "12.5", got.Balance.String())
		require.False(t, got.LowStock())

		entries, err := api.Ledger(ctx, scope, ings[0].ID, page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, ingredientbus.KindReceipt, entries[0].Kind)
	})

	t.Run("movements", func(t *testing.T) {
		ing := ings[0]

		_, err := api.AddMovement(ctx, scope, ing, ingredientbus.NewMovement{
			Kind:     ingredientbus.KindConsumption,
			Quantity: decimal.RequireFromString("7.25"),
			Note:     "batch 42",
		})
		require.NoError(t, err)

		e, err := api.AddMovement(ctx, scope, ing, ingredientbus.NewMovement{
			Kind:     ingredientbus.KindWaste,
			Quantity: decimal.RequireFromString("0.25"),
		})
		require.NoError(t, err)
		require.Equal(t, "-0.25", e.Quantity.String())

		_, err = api.AddMovement(ctx, scope, ing, ingredientbus.NewMovement{
			Kind:     ingredientbus.KindConsumption,
			Quantity: decimal.RequireFromString("5.01"),
		})
		require.ErrorIs(t, err, ingredientbus.ErrInsufficientStock)

		_, err = api.AddMovement(ctx, scope, ing, ingredientbus.NewMovement{
			Kind:     ingredientbus.KindReceipt,
			Quantity: decimal.RequireFromString("-1"),
		})
		require.ErrorIs(t, err, ingredientbus.ErrQuantity)

		_, err = api.AddMovement(ctx, scope, ing, ingredientbus.NewMovement{
			Kind:     ingredientbus.KindAdjustment,
			Quantity: decimal.RequireFromString("-1"),
		})
		require.NoError(t, err)

		got, err := api.QueryByID(ctx, scope, ing.ID)
		require.NoError(t, err)
		require.Equal(t, "4", got.Balance.String())
		require.True(t, got.LowStock())

		n, err := api.CountLedger(ctx, scope, ing.ID)
		require.NoError(t, err)
		require.Equal(t, 4, n)
	})

	t.Run("query", func(t *testing.T) {
		got, err := api.Query(ctx, scope, ingredientbus.QueryFilter{}, ingredientbus.DefaultOrderBy, page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, got, 2)

		byID := map[uuid.UUID]ingredientbus.Ingredient{}
		for _, ing := range got {
			byID[ing.ID] = ing
		}
		require.Equal(t, "4", byID[ings[0].ID].Balance.String())
		require.Equal(t, "12.5", byID[ings[1].ID].Balance.String())

		n, err := api.Count(ctx, other, ingredientbus.QueryFilter{})
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("unique-name", func(t *testing.T) {
		ni := ingredientbus.TestNewIngredients(1, decimal.Zero)[0]
		ni.Name = ings[1].Name

		_, err := api.Create(ctx, scope, ni)
		require.ErrorIs(t, err, ingredientbus.ErrUniqueName)

		_, err = api.Create(ctx, other, ni)
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		tx, err := db.Beginner().Begin()
		require.NoError(t, err)

		txAPI, err := api.NewWithTx(tx)
		require.NoError(t, err)

		require.NoError(t, txAPI.Delete(ctx, scope, ings[0]))
		require.NoError(t, tx.Commit())

		_, err = api.QueryByID(ctx, scope, ings[0].ID)
		require.ErrorIs(t, err, ingredientbus.ErrNotFound)

		n, err := api.CountLedger(ctx, scope, ings[0].ID)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("tenant", func(t *testing.T) {
		_, err := api.QueryByID(ctx, other, ings[1].ID)
		require.ErrorIs(t, err, ingredientbus.ErrNotFound)
	})
}

func Test_LowStock(t *testing.T) {
	t.Parallel()

	table := []struct {
		name    string
		balance string
		reorder string
		want    bool
	}{
		{name: "untracked-empty", balance: "0", reorder: "0", want: false},
		{name: "untracked-negative", balance: "-1", reorder: "0", want: false},
		{name: "above", balance: "5.5", reorder: "5", want: false},
		{name: "at-level", balance: "5", reorder: "5", want: true},
		{name: "below", balance: "0", reorder: "5", want: true},
	}

	for _, tt := range table {
		t.Run(tt.name, func(t *testing.T) {
			ing := ingredientbus.Ingredient{
				Balance:      decimal.RequireFromString(tt.balance),
				ReorderLevel: decimal.RequireFromString(tt.reorder),
			}
			require.Equal(t, tt.want, ing.LowStock())
		})
	}
}

func Test_MovementLock(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_MovementLock")
	api := db.BusDomain.Ingredient

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Brewery, db.BusDomain.Tenant)
	require.NoError(t, err)

	scope, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	other, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	ings, err := ingredientbus.TestSeedIngredients(ctx, scope, 1, decimal.RequireFromString("12.5"), api)
	require.NoError(t, err)

	t.Run("other-tenant", func(t *testing.T) {
		_, err := api.AddMovement(ctx, other, ings[0], ingredientbus.NewMovement{
			Kind:     ingredientbus.KindReceipt,
			Quantity: decimal.NewFromInt(1),
		})
		require.ErrorIs(t, err, ingredientbus.ErrNotFound)

		n, err := api.CountLedger(ctx, scope, ings[0].ID)
		require.NoError(t, err)
		require.Equal(t, 1, n)
	})

	t.Run("concurrent-consumption", func(t *testing.T) {
		const workers = 2

		var wg sync.WaitGroup
		results := make([]error, workers)

		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[i] = consumeInTx(ctx, db, scope, ings[0], decimal.NewFromInt(10))
			}()
		}
		wg.Wait()

		var booked, refused int
		for _, err := range results {
			switch {
			case err == nil:
				booked++
			case errors.Is(err, ingredientbus.ErrInsufficientStock):
				refused++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, booked)
		require.Equal(t, 1, refused)

		got, err := api.QueryByID(ctx, scope, ings[0].ID)
		require.NoError(t, err)
		require.Equal(t, "2.5", got.Balance.String())
	})
}

func consumeInTx(ctx context.Context, db *dbtest.Database, scope tenancy.Scope, ing ingredientbus.Ingredient, qty decimal.Decimal) error {
	tx, err := db.Beginner().Begin()
	if err != nil {
		return err
	}

	txAPI, err := db.BusDomain.Ingredient.NewWithTx(tx)
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := txAPI.AddMovement(ctx, scope, ing, ingredientbus.NewMovement{
		Kind:     ingredientbus.KindConsumption,
		Quantity: qty,
	}); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
