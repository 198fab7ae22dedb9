package productapp_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/productapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/shopspring/decimal"
)

func Test_Product(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Product", all.Routes())

	a := at.SeedTenant(t, vertical.Retail)
	b := at.SeedTenant(t, vertical.Retail)

	mug := productapp.NewProduct{SKU: "MUG-01", Name: "Enamel Mug", Price: "2.50", Stock: 10}
	tote := productapp.NewProduct{SKU: "TOTE-02", Name: "Canvas Tote", Price: "4", Stock: 3}

	table := []apitest.Table{
		{
			Name:       "create-mug",
			URL:        "/api/v1/products",
			Token:      a.Admin.Token,
			Method:     http.MethodPost,
			Input:      &mug,
			StatusCode: http.StatusCreated,
			GotResp:    &productapp.Product{},
			ExpResp:    &productapp.Product{SKU: "MUG-01", Name: "Enamel Mug", Price: "2.50", Stock: 10, Active: true},
			CmpFunc:    cmpProduct,
		},
		{
			Name:       "create-tote",
			URL:        "/api/v1/products",
			Token:      a.Admin.Token,
			Method:     http.MethodPost,
			Input:      &tote,
			StatusCode: http.StatusCreated,
			GotResp:    &productapp.Product{},
			ExpResp:    &productapp.Product{SKU: "TOTE-02", Name: "Canvas Tote", Price: "4.00", Stock: 3, Active: true},
			CmpFunc:    cmpProduct,
		},
		{
			Name:       "duplicate-sku",
			URL:        "/api/v1/products",
			Token:      a.Admin.Token,
			Method:     http.MethodPost,
			Input:      &mug,
			StatusCode: http.StatusConflict,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Aborted},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "same-sku-other-tenant",
			URL:        "/api/v1/products",
			Token:      b.Admin.Token,
			Method:     http.MethodPost,
			Input:      &mug,
			StatusCode: http.StatusCreated,
			GotResp:    &productapp.Product{},
			ExpResp:    &productapp.Product{SKU: "MUG-01", Name: "Enamel Mug", Price: "2.50", Stock: 10, Active: true},
			CmpFunc:    cmpProduct,
		},
		{
			Name:       "negative-stock",
			URL:        "/api/v1/products",
			Token:      a.Admin.Token,
			Method:     http.MethodPost,
			Input:      &productapp.NewProduct{SKU: "BAD-1", Name: "Broken", Price: "1", Stock: -1},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "staff-cannot-create",
			URL:        "/api/v1/products",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &productapp.NewProduct{SKU: "CAP-9", Name: "Cap", Price: "9", Stock: 1},
			StatusCode: http.StatusForbidden,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.PermissionDenied},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "summary",
			URL:        "/api/v1/products/summary",
			Token:      a.Staff.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &productapp.Summary{},
			ExpResp:    &productapp.Summary{Products: 2, Units: 13, Valuation: "37"},
			CmpFunc:    cmpSummary,
		},
		{
			Name:       "summary-other-tenant",
			URL:        "/api/v1/products/summary",
			Token:      b.Staff.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &productapp.Summary{},
			ExpResp:    &productapp.Summary{Products: 1, Units: 10, Valuation: "25"},
			CmpFunc:    cmpSummary,
		},
	}

	at.Run(t, table, "product")
}

func cmpProduct(got any, exp any) string {
	g := got.(*productapp.Product)
	e := exp.(*productapp.Product)

	if g.SKU != e.SKU || g.Name != e.Name || g.Stock != e.Stock || g.Active != e.Active || !decimalEqual(g.Price, e.Price) {
		return fmt.Sprintf("got %+v", g)
	}

	return ""
}

func cmpSummary(got any, exp any) string {
	g := got.(*productapp.Summary)
	e := exp.(*productapp.Summary)

	if g.Products != e.Products || g.Units != e.Units || !decimalEqual(g.Valuation, e.Valuation) {
		return fmt.Sprintf("got %+v, expected %+v", g, e)
	}

	return ""
}

func decimalEqual(a, b string) bool {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return false
	}

	db, err := decimal.NewFromString(b)
	if err != nil {
		return false
	}

	return da.Equal(db)
}

func cmpCode(got any, exp any) string {
	g := got.(*errs.Error)
	e := exp.(*errs.Error)

	if g.Code != e.Code {
		return "got code " + g.Code.String() + ", expected " + e.Code.String()
	}

	return ""
}

func Test_ProductBadFilter(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_ProductBadFilter", all.Routes())

	a := at.SeedTenant(t, vertical.Retail)

	var table []apitest.Table
	for _, c := range []struct{ name, url string }{
		{"active", "/api/v1/products?active=maybe"},
		{"max-stock", "/api/v1/products?max_stock=lots"},
		{"min-price", "/api/v1/products?min_price=cheap"},
		{"summary-active", "/api/v1/products/summary?active=maybe"},
	} {
		table = append(table, apitest.Table{
			Name:       c.name,
			URL:        c.url,
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		})
	}

	at.Run(t, table, "bad-filter")
}
