package appointmentbus_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/dbtest"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/stretchr/testify/require"
)

func Test_Appointment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := dbtest.New(t, "Test_Appointment")
	api := db.BusDomain.Appointment

	tenants, err := tenantbus.TestSeedTenants(ctx, 2, vertical.Salon, db.BusDomain.Tenant)
	require.NoError(t, err)

	scope, err := tenancy.New(tenants[0].ID, uuid.Nil)
	require.NoError(t, err)

	other, err := tenancy.New(tenants[1].ID, uuid.Nil)
	require.NoError(t, err)

	start := time.Date(2026, time.May, 4, 9, 0, 0, 0, time.UTC)

	as, err := appointmentbus.TestSeedAppointments(ctx, scope, 3, "Ana", start, api)
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		got, err := api.QueryByID(ctx, scope, as[1].ID)
		require.NoError(t, err)
		require.Equal(t, appointmentbus.StatusScheduled, got.Status)
		require.True(t, start.Add(time.Hour).Equal(got.StartsAt))
		require.Equal(t, time.Hour, got.Duration)
		require.Equal(t, "+15550100002", got.ClientPhone.String())
	})

	t.Run("overlap", func(t *testing.T) {
		na := appointmentbus.TestNewAppointments(1, "Ana", start.Add(90*time.Minute))[0]

		_, err := api.Create(ctx, scope, na)
		require.ErrorIs(t, err, appointmentbus.ErrOverlap)

		na.StaffName = name.MustParse("Bia")
		_, err = api.Create(ctx, scope, na)
		require.NoError(t, err)

		na.StaffName = name.MustParse("Ana")
		_, err = api.Create(ctx, other, na)
		require.NoError(t, err)

		na.StartsAt = start.Add(3 * time.Hour)
		_, err = api.Create(ctx, scope, na)
		require.NoError(t, err, "back to back is not an overlap")
	})

	t.Run("duration", func(t *testing.T) {
		na := appointmentbus.TestNewAppointments(1, "Caio", start)[0]
		na.Duration = 90 * time.Second

		_, err := api.Create(ctx, scope, na)
		require.ErrorIs(t, err, appointmentbus.ErrDuration)
	})

	t.Run("cancel-many", func(t *testing.T) {
		w := appointmentbus.CancelWindow{
			StaffName: name.MustParse("Ana"),
			From:      start,
			To:        start.Add(2 * time.Hour),
		}

		n, err := api.CancelMany(ctx, scope, w)
		require.NoError(t, err)
		require.Equal(t, int64(2), n)

		n, err = api.CancelMany(ctx, scope, w)
		require.NoError(t, err)
		require.Zero(t, n)

		cancelled := appointmentbus.StatusCancelled
		got, err := api.Query(ctx, scope, appointmentbus.QueryFilter{Status: &cancelled}, appointmentbus.DefaultOrderBy, page.MustParse("1", "10"))
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, as[0].ID, got[0].ID)

		count, err := api.Count(ctx, other, appointmentbus.QueryFilter{Status: &cancelled})
		require.NoError(t, err)
		require.Zero(t, count)

		_, err = api.CancelMany(ctx, scope, appointmentbus.CancelWindow{StaffName: w.StaffName, From: w.To, To: w.From})
		require.ErrorIs(t, err, appointmentbus.ErrWindow)
	})

	t.Run("reschedule", func(t *testing.T) {
		scheduled := appointmentbus.StatusScheduled

		_, err := api.Update(ctx, scope, as[2], appointmentbus.UpdateAppointment{Status: &scheduled, StartsAt: &start})
		require.NoError(t, err, "the slot was freed by the cancellation")
	})

	t.Run("tenant", func(t *testing.T) {
		_, err := api.QueryByID(ctx, other, as[0].ID)
		require.ErrorIs(t, err, appointmentbus.ErrNotFound)
	})
}
