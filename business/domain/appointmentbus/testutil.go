package appointmentbus

import (
	"context"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/shopspring/decimal"
)

// TestNewAppointments is a helper method for testing. The appointments are
// back to back, one hour each, with the same staff member.
func TestNewAppointments(n int, staff string, start time.Time) []NewAppointment {
	nas := make([]NewAppointment, n)

	for i := range n {
		nas[i] = NewAppointment{
			ClientName:  name.MustParse(fmt.Sprintf("Client%d", i+1)),
			ClientPhone: phone.MustParseNull(fmt.Sprintf("+1 555 010 %04d", i+1)),
			Service:     "Haircut",
			StaffName:   name.MustParse(staff),
			StartsAt:    start.Add(time.Duration(i) * time.Hour),
			Duration:    time.Hour,
			Price:       decimal.RequireFromString("45.00"),
		}
	}

	return nas
}

// TestSeedAppointments is a helper method for testing.
func TestSeedAppointments(ctx context.Context, scope tenancy.Scope, n int, staff string, start time.Time, api *Core) ([]Appointment, error) {
	nas := TestNewAppointments(n, staff, start)

	as := make([]Appointment, len(nas))
	for i, na := range nas {
		a, err := api.Create(ctx, scope, na)
		if err != nil {
			return nil, fmt.Errorf("seeding appointment: idx: %d : %w", i, err)
		}

		as[i] = a
	}

	return as, nil
}
