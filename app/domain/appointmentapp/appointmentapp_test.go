package appointmentapp_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/appointmentapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
)

func Test_Appointment(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Appointment", all.Routes())

	a := at.SeedTenant(t, vertical.Salon)
	b := at.SeedTenant(t, vertical.Salon)

	day := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, 2)
	at10 := day.Add(10 * time.Hour)
	at11 := day.Add(11 * time.Hour)

	cut := appointmentapp.NewAppointment{
		ClientName:      "Noor Haddad",
		ClientPhone:     "555-0101",
		Service:         "Cut and finish",
		StaffName:       "Lena",
		StartsAt:        at10.Format(time.RFC3339),
		DurationMinutes: 60,
		Price:           "45",
	}

	colour := cut
	colour.ClientName = "Ivo Petrov"
	colour.Service = "Colour"
	colour.StartsAt = at11.Format(time.RFC3339)

	clash := cut
	clash.ClientName = "Sam Osei"
	clash.StartsAt = at10.Add(30 * time.Minute).Format(time.RFC3339)

	otherStaff := clash
	otherStaff.StaffName = "Jonas"

	tooLong := cut
	tooLong.StartsAt = day.Add(14 * time.Hour).Format(time.RFC3339)
	tooLong.DurationMinutes = 13 * 60

	window := appointmentapp.CancelRequest{
		StaffName: "Lena",
		From:      day.Format(time.RFC3339),
		To:        day.Add(24 * time.Hour).Format(time.RFC3339),
	}

	backwards := window
	backwards.From, backwards.To = window.To, window.From

	table := []apitest.Table{
		{
			Name:       "create-cut",
			URL:        "/api/v1/appointments",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &cut,
			StatusCode: http.StatusCreated,
			GotResp:    &appointmentapp.Appointment{},
			ExpResp:    &appointmentapp.Appointment{StaffName: "Lena", Status: "SCHEDULED", EndsAt: at11.Format(time.RFC3339)},
			CmpFunc:    cmpAppointment,
		},
		{
			Name:       "back-to-back",
			URL:        "/api/v1/appointments",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &colour,
			StatusCode: http.StatusCreated,
			GotResp:    &appointmentapp.Appointment{},
			ExpResp:    &appointmentapp.Appointment{StaffName: "Lena", Status: "SCHEDULED", EndsAt: at11.Add(time.Hour).Format(time.RFC3339)},
			CmpFunc:    cmpAppointment,
		},
		{
			Name:       "overlap",
			URL:        "/api/v1/appointments",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &clash,
			StatusCode: http.StatusConflict,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Aborted},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "same-slot-other-staff",
			URL:        "/api/v1/appointments",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &otherStaff,
			StatusCode: http.StatusCreated,
			GotResp:    &appointmentapp.Appointment{},
			ExpResp:    &appointmentapp.Appointment{StaffName: "Jonas", Status: "SCHEDULED", EndsAt: at11.Add(30 * time.Minute).Format(time.RFC3339)},
			CmpFunc:    cmpAppointment,
		},
		{
			Name:       "same-slot-other-tenant",
			URL:        "/api/v1/appointments",
			Token:      b.Staff.Token,
			Method:     http.MethodPost,
			Input:      &clash,
			StatusCode: http.StatusCreated,
			GotResp:    &appointmentapp.Appointment{},
			ExpResp:    &appointmentapp.Appointment{StaffName: "Lena", Status: "SCHEDULED", EndsAt: at11.Add(30 * time.Minute).Format(time.RFC3339)},
			CmpFunc:    cmpAppointment,
		},
		{
			Name:       "too-long",
			URL:        "/api/v1/appointments",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &tooLong,
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "cancel-backwards",
			URL:        "/api/v1/appointments/cancel",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &backwards,
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "cancel-day",
			URL:        "/api/v1/appointments/cancel",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &window,
			StatusCode: http.StatusOK,
			GotResp:    &appointmentapp.CancelResult{},
			ExpResp:    &appointmentapp.CancelResult{Cancelled: 2},
		},
		{
			Name:       "cancel-again",
			URL:        "/api/v1/appointments/cancel",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &window,
			StatusCode: http.StatusOK,
			GotResp:    &appointmentapp.CancelResult{},
			ExpResp:    &appointmentapp.CancelResult{Cancelled: 0},
		},
		{
			Name:       "other-tenant-untouched",
			URL:        "/api/v1/appointments/cancel",
			Token:      b.Staff.Token,
			Method:     http.MethodPost,
			Input:      &window,
			StatusCode: http.StatusOK,
			GotResp:    &appointmentapp.CancelResult{},
			ExpResp:    &appointmentapp.CancelResult{Cancelled: 1},
		},
		{
			Name:       "rebook-after-cancel",
			URL:        "/api/v1/appointments",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &clash,
			StatusCode: http.StatusCreated,
			GotResp:    &appointmentapp.Appointment{},
			ExpResp:    &appointmentapp.Appointment{StaffName: "Lena", Status: "SCHEDULED", EndsAt: at11.Add(30 * time.Minute).Format(time.RFC3339)},
			CmpFunc:    cmpAppointment,
		},
	}

	at.Run(t, table, "appointment")
}

func cmpAppointment(got any, exp any) string {
	g := got.(*appointmentapp.Appointment)
	e := exp.(*appointmentapp.Appointment)

	gotEnd, err := time.Parse(time.RFC3339, g.EndsAt)
	if err != nil {
		return err.Error()
	}

	expEnd, err := time.Parse(time.RFC3339, e.EndsAt)
	if err != nil {
		return err.Error()
	}

	switch {
	case g.StaffName != e.StaffName:
		return "got staff " + g.StaffName
	case g.Status != e.Status:
		return "got status " + g.Status
	case !gotEnd.Equal(expEnd):
		return "got end " + g.EndsAt
	}

	return ""
}

func cmpCode(got any, exp any) string {
	g := got.(*errs.Error)
	e := exp.(*errs.Error)

	if g.Code != e.Code {
		return "got code " + g.Code.String() + ", expected " + e.Code.String()
	}

	return ""
}
