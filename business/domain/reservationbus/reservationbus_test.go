package reservationbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/require"
)

func Test_Reservation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_Reservation")
	api := db.BusDomain.Reservation

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Hotel, db.BusDomain.Tenant)
	require.NoError(t, err)

	scope, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	other, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	start := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	rs, err := reservationbus.TestSeedReservations(ctx, scope, 2, start, api)
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		r := rs[0]
		require.Equal(t, reservationbus.StatusBooked, r.Status)
		require.Equal(t, scope.TenantID(), r.TenantID)
		require.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), r.CheckIn)
		require.Equal(t, 2, r.Nights())

		raw, err := base58.Decode(r.ConfirmationCode)
		require.NoError(t, err)
		require.Len(t, raw, 8)

		got, err := api.QueryByID(ctx, scope, r.ID)
		require.NoError(t, err)
		require.Equal(t, r.ConfirmationCode, got.ConfirmationCode)
		require.True(t, r.Total.Equal(got.Total))
		require.True(t, r.CheckOut.Equal(got.CheckOut))
	})

	t.Run("overlap", func(t *testing.T) {
		nr := reservationbus.TestNewReservations(1, start.AddDate(0, 0, 1))[0]
		nr.RoomNumber = rs[0].RoomNumber

		_, err := api.Create(ctx, scope, nr)
		require.ErrorIs(t, err, reservationbus.ErrOverlap)

		// The other tenant has its own room 101.
		_, err = api.Create(ctx, other, nr)
		require.NoError(t, err)

		// Checking in on the day the previous guest leaves is fine.
		nr.CheckIn = rs[0].CheckOut
		nr.CheckOut = rs[0].CheckOut.AddDate(0, 0, 1)
		_, err = api.Create(ctx, scope, nr)
		require.NoError(t, err)
	})

	t.Run("dates", func(t *testing.T) {
		nr := reservationbus.TestNewReservations(1, start)[0]
		nr.RoomNumber = "900"
		nr.CheckOut = nr.CheckIn

		_, err := api.Create(ctx, scope, nr)
		require.ErrorIs(t, err, reservationbus.ErrStayDates)
	})

	t.Run("cancel-frees-room", func(t *testing.T) {
		cancelled := reservationbus.StatusCancelled

		r, err := api.Update(ctx, scope, rs[1], reservationbus.UpdateReservation{Status: &cancelled})
		require.NoError(t, err)
		require.Equal(t, reservationbus.StatusCancelled, r.Status)

		checkedIn := reservationbus.StatusCheckedIn
		_, err = api.Update(ctx, scope, r, reservationbus.UpdateReservation{Status: &checkedIn})
		require.ErrorIs(t, err, reservationbus.ErrTransition)

		nr := reservationbus.TestNewReservations(1, start)[0]
		nr.RoomNumber = rs[1].RoomNumber

		_, err = api.Create(ctx, scope, nr)
		require.NoError(t, err)
	})

	t.Run("move", func(t *testing.T) {
		room := rs[1].RoomNumber

		_, err := api.Update(ctx, scope, rs[0], reservationbus.UpdateReservation{RoomNumber: &room})
		require.ErrorIs(t, err, reservationbus.ErrOverlap)

		free := "777"
		r, err := api.Update(ctx, scope, rs[0], reservationbus.UpdateReservation{RoomNumber: &free})
		require.NoError(t, err)
		require.Equal(t, free, r.RoomNumber)
	})

	t.Run("query", func(t *testing.T) {
		room := "777"
		got, err := api.Query(ctx, scope, reservationbus.QueryFilter{RoomNumber: &room}, reservationbus.DefaultOrderBy, page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, rs[0].ID, got[0].ID)

		from := start.AddDate(0, 0, 2)
		to := start.AddDate(0, 0, 3)
		n, err := api.Count(ctx, scope, reservationbus.QueryFilter{From: &from, To: &to})
		require.NoError(t, err)
		require.Equal(t, 1, n, "only the stay that starts on the check-out day overlaps")
	})

	t.Run("calendar", func(t *testing.T) {
		stays, err := api.Calendar(ctx, scope, start.AddDate(0, 0, -1), start.AddDate(0, 0, 30))
		require.NoError(t, err)

		for _, s := range stays {
			require.NotEqual(t, reservationbus.StatusCancelled, s.Status)
			require.Equal(t, scope.TenantID(), s.TenantID)
		}
		require.Len(t, stays, 3)
	})

	t.Run("tenant", func(t *testing.T) {
		_, err := api.QueryByID(ctx, other, rs[0].ID)
		require.ErrorIs(t, err, reservationbus.ErrNotFound)
	})
}
