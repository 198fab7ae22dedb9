package ingredientapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/types/unit"
)

type queryParams struct {
	Page    string
	Rows    string
	OrderBy string
	Name    string
	Unit    string
}

func parseQueryParams(r *http.Request) queryParams {
	values := r.URL.Query()

	return queryParams{
		Page:    values.Get("page"),
		Rows:    values.Get("rows"),
		OrderBy: values.Get("orderBy"),
		Name:    values.Get("name"),
		Unit:    values.Get("unit"),
	}
}

func parseFilter(qp queryParams) (ingredientbus.QueryFilter, error) {
	var filter ingredientbus.QueryFilter

	if qp.Name != "" {
		filter.Name = &qp.Name
	}

	if qp.Unit != "" {
		un, err := unit.Parse(qp.Unit)
		if err != nil {
			return ingredientbus.QueryFilter{}, errs.NewFieldErrors("unit", err).ToError()
		}
		filter.Unit = &un
	}

	return filter, nil
}
