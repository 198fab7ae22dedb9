package tenantapp

import (
	"net/http"
	"strconv"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
)

type queryParams struct {
	Page     string
	Rows     string
	OrderBy  string
	Name     string
	Vertical string
	Enabled  string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:     values.Get("page"),
		Rows:     values.Get("rows"),
		OrderBy:  values.Get("orderBy"),
		Name:     values.Get("name"),
		Vertical: values.Get("vertical"),
		Enabled:  values.Get("enabled"),
	}
}

func parseFilter(qp queryParams) (tenantbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter tenantbus.QueryFilter

	if qp.Name != "" {
		filter.Name = &qp.Name
	}

	if qp.Vertical != "" {
		v, err := vertical.Parse(qp.Vertical)
		switch err {
		case nil:
			filter.Vertical = &v
		default:
			fieldErrors.Add("vertical", err)
		}
	}

	if qp.Enabled != "" {
		b, err := strconv.ParseBool(qp.Enabled)
		switch err {
		case nil:
			filter.Enabled = &b
		default:
			fieldErrors.Add("enabled", err)
		}
	}

	if fieldErrors != nil {
		return tenantbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
