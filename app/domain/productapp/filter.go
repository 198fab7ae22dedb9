package productapp

import (
	"net/http"
	"strconv"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/shopspring/decimal"
)

type queryParams struct {
	Page     string
	Rows     string
	OrderBy  string
	SKU      string
	Name     string
	Active   string
	MaxStock string
	MinPrice string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:     values.Get("page"),
		Rows:     values.Get("rows"),
		OrderBy:  values.Get("orderBy"),
		SKU:      values.Get("sku"),
		Name:     values.Get("name"),
		Active:   values.Get("active"),
		MaxStock: values.Get("max_stock"),
		MinPrice: values.Get("min_price"),
	}
}

func parseFilter(qp queryParams) (productbus.QueryFilter, error) {
	var fieldErrors errs.FieldErrors
	var filter productbus.QueryFilter

	if qp.SKU != "" {
		filter.SKU = &qp.SKU
	}

	if qp.Name != "" {
		filter.Name = &qp.Name
	}

	if qp.Active != "" {
		b, err := strconv.ParseBool(qp.Active)
		switch err {
		case nil:
			filter.Active = &b
		default:
			fieldErrors.Add("active", err)
		}
	}

	if qp.MaxStock != "" {
		n, err := strconv.Atoi(qp.MaxStock)
		switch err {
		case nil:
			filter.MaxStock = &n
		default:
			fieldErrors.Add("max_stock", err)
		}
	}

	if qp.MinPrice != "" {
		d, err := decimal.NewFromString(qp.MinPrice)
		switch err {
		case nil:
			filter.MinPrice = &d
		default:
			fieldErrors.Add("min_price", err)
		}
	}

	if fieldErrors != nil {
		return productbus.QueryFilter{}, fieldErrors.ToError()
	}

	return filter, nil
}
