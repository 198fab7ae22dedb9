package reservationapp

import (
	"errors"
	"net/http"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
)

type queryParams struct {
	Page       string
	Rows       string
	OrderBy    string
	RoomNumber string
	Status     string
	GuestName  string
	From       string
	To         string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:       values.Get("page"),
		Rows:       values.Get("rows"),
		OrderBy:    values.Get("orderBy"),
		RoomNumber: values.Get("room"),
		Status:     values.Get("status"),
		GuestName:  values.Get("guest"),
		From:       values.Get("from"),
		To:         values.Get("to"),
	}
}

func parseFilter(qp queryParams) (reservationbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter reservationbus.QueryFilter

	if qp.RoomNumber != "" {
		filter.RoomNumber = &qp.RoomNumber
	}

	if qp.Status != "" {
		st, err := reservationbus.ParseStatus(qp.Status)
		switch err {
		case nil:
			filter.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if qp.GuestName != "" {
		filter.GuestName = &qp.GuestName
	}

	if qp.From != "" {
		t, err := time.Parse(dateLayout, qp.From)
		switch err {
		case nil:
			filter.From = &t
		default:
			fieldErrors.Add("from", err)
		}
	}

	if qp.To != "" {
		t, err := time.Parse(dateLayout, qp.To)
		switch err {
		case nil:
			filter.To = &t
		default:
			fieldErrors.Add("to", err)
		}
	}

	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		fieldErrors.Add("to", errors.New("must be after from"))
	}

	if fieldErrors != nil {
		return reservationbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
