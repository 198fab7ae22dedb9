package orderapp_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/orderapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Order(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Order", all.Routes())

	a := at.SeedTenant(t, vertical.Restaurant)
	b := at.SeedTenant(t, vertical.Restaurant)

	no := orderapp.NewOrder{
		TableNumber: 7,
		Items: []orderapp.NewItem{
			{Name: "Focaccia", Quantity: 2, UnitPrice: "4.50"},
			{Name: "Risotto", Quantity: 1, UnitPrice: "12"},
		},
	}

	var created orderapp.Order

	at.Run(t, []apitest.Table{
		{
			Name:       "create",
			URL:        "/api/v1/orders",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &no,
			StatusCode: http.StatusCreated,
			GotResp:    &created,
			ExpResp:    &orderapp.Order{TableNumber: 7, Status: "OPEN", Total: "21.00"},
			CmpFunc:    cmpOrder(2),
		},
	}, "create")

	require.NotEmpty(t, created.ID)
	base := "/api/v1/orders/" + created.ID

	table := []apitest.Table{
		{
			Name:       "no-items",
			URL:        "/api/v1/orders",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &orderapp.NewOrder{TableNumber: 3},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "with-items",
			URL:        base,
			Token:      a.Staff.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &orderapp.Order{},
			ExpResp:    &orderapp.Order{TableNumber: 7, Status: "OPEN", Total: "21.00"},
			CmpFunc:    cmpOrder(2),
		},
		{
			Name:       "other-tenant",
			URL:        base,
			Token:      b.Staff.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusNotFound,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.NotFound},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "skip-to-paid",
			URL:        base + "/status",
			Token:      a.Staff.Token,
			Method:     http.MethodPut,
			Input:      &orderapp.UpdateStatus{Status: "PAID"},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.FailedPrecondition},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "served",
			URL:        base + "/status",
			Token:      a.Staff.Token,
			Method:     http.MethodPut,
			Input:      &orderapp.UpdateStatus{Status: "SERVED"},
			StatusCode: http.StatusOK,
			GotResp:    &orderapp.Order{},
			ExpResp:    &orderapp.Order{TableNumber: 7, Status: "SERVED", Total: "21.00"},
			CmpFunc:    cmpOrder(-1),
		},
		{
			Name:       "paid",
			URL:        base + "/status",
			Token:      a.Staff.Token,
			Method:     http.MethodPut,
			Input:      &orderapp.UpdateStatus{Status: "PAID"},
			StatusCode: http.StatusOK,
			GotResp:    &orderapp.Order{},
			ExpResp:    &orderapp.Order{TableNumber: 7, Status: "PAID", Total: "21.00"},
			CmpFunc:    cmpOrder(-1),
		},
		{
			Name:       "other-tenant-delete",
			URL:        base,
			Token:      b.Admin.Token,
			Method:     http.MethodDelete,
			StatusCode: http.StatusNotFound,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.NotFound},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "delete",
			URL:        base,
			Token:      a.Admin.Token,
			Method:     http.MethodDelete,
			StatusCode: http.StatusNoContent,
		},
		{
			Name:       "deleted",
			URL:        base,
			Token:      a.Staff.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusNotFound,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.NotFound},
			CmpFunc:    cmpCode,
		},
	}

	at.Run(t, table, "order")
}

// cmpOrder compares the order header. A negative items value skips the
// item count check.
func cmpOrder(items int) func(got any, exp any) string {
	return func(got any, exp any) string {
		g := got.(*orderapp.Order)
		e := exp.(*orderapp.Order)

		total, err := decimal.NewFromString(g.Total)
		if err != nil {
			return err.Error()
		}

		switch {
		case g.TableNumber != e.TableNumber, g.Status != e.Status:
			return fmt.Sprintf("got table %d status %s", g.TableNumber, g.Status)
		case !total.Equal(decimal.RequireFromString(e.Total)):
			return fmt.Sprintf("got total %s, expected %s", g.Total, e.Total)
		case items >= 0 && len(g.Items) != items:
			return fmt.Sprintf("got %d items, expected %d", len(g.Items), items)
		}

		return ""
	}
}

func cmpCode(got any, exp any) string {
	g := got.(*errs.Error)
	e := exp.(*errs.Error)

	if g.Code != e.Code {
		return "got code " + g.Code.String() + ", expected " + e.Code.String()
	}

	return ""
}
