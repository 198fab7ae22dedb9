package tenancy_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/stretchr/testify/require"
)

type productRow struct {
	ID        uuid.UUID `db:"product_id"`
	TenantID  uuid.UUID `db:"tenant_id"`
	SKU       string    `db:"sku"`
	Name      string    `db:"name"`
	Price     string    `db:"price"`
	Stock     int       `db:"stock"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p productRow) OwnerTenant() uuid.UUID {
	return p.TenantID
}

type fixture struct {
	db     *dbtest.Database
	scopeA tenancy.Scope
	scopeB tenancy.Scope
	prdsA  []productbus.Product
	prdsB  []productbus.Product
}

func setup(t *testing.T) fixture {
	ctx := context.Background()
	db := dbtest.New(t, t.Name())

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Retail, db.BusDomain.Tenant)
	require.NoError(t, err)

	scopeA, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	scopeB, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	prdsA, err := productbus.TestSeedProducts(ctx, scopeA, 3, db.BusDomain.Product)
	require.NoError(t, err)

	prdsB, err := productbus.TestSeedProducts(ctx, scopeB, 2, db.BusDomain.Product)
	require.NoError(t, err)

	return fixture{
		db:     db,
		scopeA: scopeA,
		scopeB: scopeB,
		prdsA:  prdsA,
		prdsB:  prdsB,
	}
}

func newRow(tenantID uuid.UUID, sku string) tenancy.Row {
	now := time.Now().UTC()

	return tenancy.Row{
		"product_id": uuid.NewString(),
		"tenant_id":  tenantID.String(),
		"sku":        sku,
		"name":       "Widget",
		"price":      "1.00",
		"stock":      1,
		"active":     true,
		"created_at": now,
		"updated_at": now,
	}
}

func Test_ReadsStayInTenant(t *testing.T) {
	t.Parallel()

	f := setup(t)
	ctx := context.Background()
	tdb := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA)

	var rows []productRow
	err := tdb.FindMany(ctx, "products", tenancy.Query{}, &rows)
	require.NoError(t, err)
	require.Len(t, rows, len(f.prdsA))
	for _, r := range rows {
		require.Equal(t, f.scopeA.TenantID(), r.TenantID)
	}

	// A filter naming the other tenant's row still only sees tenant A.
	err = tdb.FindMany(ctx, "products", tenancy.Query{Where: sq.Eq{"product_id": f.prdsB[0].ID.String()}}, &rows)
	require.NoError(t, err)
	require.Empty(t, rows)

	var first productRow
	err = tdb.FindFirst(ctx, "products", tenancy.Query{Where: sq.Eq{"sku": f.prdsB[0].SKU}}, &first)
	require.ErrorIs(t, err, sqldb.ErrDBNotFound)

	count, err := tdb.Count(ctx, "products", nil)
	require.NoError(t, err)
	require.Equal(t, len(f.prdsA), count)

	var sums []struct {
		Units int `db:"units"`
	}
	err = tdb.Aggregate(ctx, "products", tenancy.Query{Columns: []string{"SUM(stock) AS units"}}, &sums)
	require.NoError(t, err)
	require.Len(t, sums, 1)
	require.Equal(t, 3*len(f.prdsA), sums[0].Units)
}

func Test_CreateStampsTenant(t *testing.T) {
	t.Parallel()

	f := setup(t)
	ctx := context.Background()
	tdb := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA)

	row := newRow(f.scopeB.TenantID(), "FORGED-1")
	err := tdb.Create(ctx, "products", row)
	require.NoError(t, err)

	rows := []tenancy.Row{newRow(f.scopeB.TenantID(), "FORGED-2"), newRow(uuid.Nil, "FORGED-3")}
	delete(rows[1], "tenant_id")
	err = tdb.CreateMany(ctx, "products", rows)
	require.NoError(t, err)

	all := tenancy.NewDB(f.db.Log, f.db.DB, tenancy.Bypass("test"))

	var stored []productRow
	err = all.FindMany(ctx, "products", tenancy.Query{Where: sq.Like{"sku": "FORGED-%"}}, &stored)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, r := range stored {
		require.Equal(t, f.scopeA.TenantID(), r.TenantID, "sku %s", r.SKU)
	}
}

func Test_WritesIgnoreOtherTenant(t *testing.T) {
	t.Parallel()

	f := setup(t)
	ctx := context.Background()
	tdb := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA)

	target := sq.Eq{"product_id": f.prdsB[0].ID.String()}

	n, err := tdb.Update(ctx, "products", tenancy.Row{"name": "Hijacked"}, target)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = tdb.UpdateMany(ctx, "products", tenancy.Row{"stock": 0}, nil)
	require.NoError(t, err)
	require.Equal(t, int64(len(f.prdsA)), n)

	n, err = tdb.Delete(ctx, "products", target)
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = tdb.DeleteMany(ctx, "products", sq.Like{"sku": "SKU-%"})
	require.NoError(t, err)
	require.Equal(t, int64(len(f.prdsA)), n)

	prd, err := f.db.BusDomain.Product.QueryByID(ctx, f.scopeB, f.prdsB[0].ID)
	require.NoError(t, err)
	require.Equal(t, f.prdsB[0].Name, prd.Name)
	require.Equal(t, f.prdsB[0].Stock, prd.Stock)

	count, err := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeB).Count(ctx, "products", nil)
	require.NoError(t, err)
	require.Equal(t, len(f.prdsB), count)
}

func Test_UpdateKeepsTenant(t *testing.T) {
	t.Parallel()

	f := setup(t)
	ctx := context.Background()
	tdb := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA)

	id := f.prdsA[0].ID
	set := tenancy.Row{"TENANT_ID": f.scopeB.TenantID().String(), "name": "Renamed"}

	n, err := tdb.Update(ctx, "products", set, sq.Eq{"product_id": id.String()})
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	var row productRow
	err = tdb.FindUnique(ctx, "products", sq.Eq{"product_id": id.String()}, &row)
	require.NoError(t, err)
	require.Equal(t, "Renamed", row.Name)
	require.Equal(t, f.scopeA.TenantID(), row.TenantID)

	n, err = tdb.Update(ctx, "products", tenancy.Row{"tenant_id": f.scopeB.TenantID().String()}, sq.Eq{"product_id": id.String()})
	require.NoError(t, err)
	require.Zero(t, n)
}

func Test_FindUniqueAcrossTenants(t *testing.T) {
	t.Parallel()

	f := setup(t)
	ctx := context.Background()

	key := sq.Eq{"product_id": f.prdsB[0].ID.String()}

	var row productRow
	err := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA).FindUnique(ctx, "products", key, &row)
	require.ErrorIs(t, err, sqldb.ErrDBNotFound)

	err = tenancy.NewDB(f.db.Log, f.db.DB, f.scopeB).FindUnique(ctx, "products", key, &row)
	require.NoError(t, err)
	require.Equal(t, f.prdsB[0].ID, row.ID)

	_, err = f.db.BusDomain.Product.QueryByID(ctx, f.scopeA, f.prdsB[0].ID)
	require.ErrorIs(t, err, productbus.ErrNotFound)
}

func Test_PassThroughAndGuards(t *testing.T) {
	t.Parallel()

	f := setup(t)
	ctx := context.Background()

	count, err := tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA).Count(ctx, "tenants", nil)
	require.NoError(t, err)
	require.Equal(t, 2, count, "tenants is not scoped")

	count, err = tenancy.NewDB(f.db.Log, f.db.DB, tenancy.Bypass("test")).Count(ctx, "products", nil)
	require.NoError(t, err)
	require.Equal(t, len(f.prdsA)+len(f.prdsB), count)

	_, err = tenancy.NewDB(f.db.Log, f.db.DB, tenancy.Scope{}).Count(ctx, "products", nil)
	require.ErrorIs(t, err, tenancy.ErrNoScope)

	err = tenancy.NewDB(f.db.Log, f.db.DB, tenancy.Scope{}).Create(ctx, "products", newRow(uuid.Nil, "NOPE"))
	require.True(t, errors.Is(err, tenancy.ErrNoScope), fmt.Sprint(err))

	var bad struct {
		ID uuid.UUID `db:"product_id"`
	}
	err = tenancy.NewDB(f.db.Log, f.db.DB, f.scopeA).FindUnique(ctx, "products", sq.Eq{"product_id": f.prdsA[0].ID.String()}, &bad)
	require.Error(t, err)
}
