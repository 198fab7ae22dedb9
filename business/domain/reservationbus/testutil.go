package reservationbus

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

// TestNewReservations is a helper method for testing. Each reservation takes
// its own room for two nights starting at start.
func TestNewReservations(n int, start time.Time) []NewReservation {
	nrs := make([]NewReservation, n)

	for i := range n {
		nrs[i] = NewReservation{
			GuestName:  name.MustParse(fmt.Sprintf("Guest%d", i+1)),
			GuestEmail: mail.Address{Address: fmt.Sprintf("guest%d@example.com", i+1)},
			RoomNumber: fmt.Sprintf("%d", 100+i+1),
			CheckIn:    start,
			CheckOut:   start.AddDate(0, 0, 2),
			Guests:     2,
			Total:      decimal.RequireFromString("240.00"),
		}
	}

	return nrs
}

// TestSeedReservations is a helper method for testing.
func TestSeedReservations(ctx context.Context, scope tenancy.Scope, n int, start time.Time, api *Core) ([]Reservation, error) {
	nrs := TestNewReservations(n, start)

	rs := make([]Reservation, len(nrs))
	for i, nr := range nrs {
		r, err := api.Create(ctx, scope, nr)
		if err != nil {
			return nil, fmt.Errorf("seeding reservation: idx: %d : %w", i, err)
		}

		rs[i] = r
	}

	return rs, nil
}
