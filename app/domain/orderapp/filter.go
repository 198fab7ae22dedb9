package orderapp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
)

type queryParams struct {
	Page             string
	Rows             string
	OrderBy          string
	TableNumber      string
	Status           string
	StartCreatedDate string
	EndCreatedDate   string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:             values.Get("page"),
		Rows:             values.Get("rows"),
		OrderBy:          values.Get("orderBy"),
		TableNumber:      values.Get("table"),
		Status:           values.Get("status"),
		StartCreatedDate: values.Get("start_created_date"),
		EndCreatedDate:   values.Get("end_created_date"),
	}
}

func parseFilter(qp queryParams) (orderbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter orderbus.QueryFilter

	if qp.TableNumber != "" {
		n, err := strconv.Atoi(qp.TableNumber)
		switch err {
		case nil:
			filter.TableNumber = &n
		default:
			fieldErrors.Add("table", err)
		}
	}

	if qp.Status != "" {
		st, err := orderbus.ParseStatus(qp.Status)
		switch err {
		case nil:
			filter.Status = &st
		default:
			fieldErrors.Add("status", err)
		}
	}

	if qp.StartCreatedDate != "" {
		t, err := time.Parse(time.RFC3339, qp.StartCreatedDate)
		switch err {
		case nil:
			filter.StartCreatedAt = &t
		default:
			fieldErrors.Add("start_created_date", err)
		}
	}

	if qp.EndCreatedDate != "" {
		t, err := time.Parse(time.RFC3339, qp.EndCreatedDate)
		switch err {
		case nil:
			filter.EndCreatedAt = &t
		default:
			fieldErrors.Add("end_created_date", err)
		}
	}

	if fieldErrors != nil {
		return orderbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
