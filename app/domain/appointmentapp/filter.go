package appointmentapp

import (
	"net/http"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
)

type queryParams struct {
	Page      string
	Rows      string
	OrderBy   string
	StaffName string
	Status    string
	From      string
	To        string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:      values.Get("page"),
		Rows:      values.Get("rows"),
		OrderBy:   values.Get("orderBy"),
		StaffName: values.Get("staff"),
		Status:    values.Get("status"),
		From:      values.Get("from"),
		To:        values.Get("to"),
	}
}

func parseFilter(qp queryParams) (appointmentbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter appointmentbus.QueryFilter

	if qp.StaffName != "" {
		filter.StaffName = &qp.StaffName
	}

	if qp.Status != "" {
		st, err := appointmentbus.ParseStatus(qp.Status)
		switch err {
		case nil:
			filter.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if qp.From != "" {
		t, err := time.Parse(time.RFC3339, qp.From)
		switch err {
		case nil:
			filter.From = &t
		default:
			fieldErrors.Add("from", err)
		}
	}

	if qp.To != "" {
		t, err := time.Parse(time.RFC3339, qp.To)
		switch err {
		case nil:
			filter.To = &t
		default:
			fieldErrors.Add("to", err)
		}
	}

	if fieldErrors != nil {
		return appointmentbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
