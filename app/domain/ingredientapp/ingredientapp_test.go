package ingredientapp_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/jcpaschoal/vertical-suite/api/cmd/build/all"
	"github.com/jcpaschoal/vertical-suite/app/domain/ingredientapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/apitest"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_Ingredient(t *testing.T) {
	t.Parallel()

	at := apitest.New(t, "Test_Ingredient", all.Routes())

	a := at.SeedTenant(t, vertical.Brewery)
	b := at.SeedTenant(t, vertical.Brewery)

	var created ingredientapp.Ingredient

	at.Run(t, []apitest.Table{
		{
			Name:   "create",
			URL:    "/api/v1/ingredients",
			Token:  a.Staff.Token,
			Method: http.MethodPost,
			Input: &ingredientapp.NewIngredient{
				Name:         "Cascade Hops",
				Unit:         "KG",
				ReorderLevel: "6",
				OpeningStock: "10",
			},
			StatusCode: http.StatusCreated,
			GotResp:    &created,
			ExpResp:    &ingredientapp.Ingredient{Name: "Cascade Hops", Unit: "KG", Balance: "10"},
			CmpFunc:    cmpIngredient,
		},
	}, "create")

	require.NotEmpty(t, created.ID)
	base := "/api/v1/ingredients/" + created.ID

	table := []apitest.Table{
		{
			Name:       "duplicate-name",
			URL:        "/api/v1/ingredients",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &ingredientapp.NewIngredient{Name: "Cascade Hops", Unit: "KG"},
			StatusCode: http.StatusConflict,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.Aborted},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "same-name-other-tenant",
			URL:        "/api/v1/ingredients",
			Token:      b.Staff.Token,
			Method:     http.MethodPost,
			Input:      &ingredientapp.NewIngredient{Name: "Cascade Hops", Unit: "G"},
			StatusCode: http.StatusCreated,
			GotResp:    &ingredientapp.Ingredient{},
			ExpResp:    &ingredientapp.Ingredient{Name: "Cascade Hops", Unit: "G", Balance: "0"},
			CmpFunc:    cmpIngredient,
		},
		{
			Name:       "over-consume",
			URL:        base + "/movements",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &ingredientapp.NewMovement{Kind: "CONSUMPTION", Quantity: "12"},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.FailedPrecondition},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "bad-kind",
			URL:        base + "/movements",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &ingredientapp.NewMovement{Kind: "THEFT", Quantity: "1"},
			StatusCode: http.StatusBadRequest,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.InvalidArgument},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "consume",
			URL:        base + "/movements",
			Token:      a.Staff.Token,
			Method:     http.MethodPost,
			Input:      &ingredientapp.NewMovement{Kind: "CONSUMPTION", Quantity: "4", Note: "batch 12"},
			StatusCode: http.StatusCreated,
			GotResp:    &ingredientapp.Entry{},
			ExpResp:    &ingredientapp.Entry{IngredientID: created.ID, Kind: "CONSUMPTION", Quantity: "-4"},
			CmpFunc: func(got any, exp any) string {
				g := got.(*ingredientapp.Entry)
				e := exp.(*ingredientapp.Entry)
				if g.IngredientID != e.IngredientID || g.Kind != e.Kind || !decimalEqual(g.Quantity, e.Quantity) {
					return fmt.Sprintf("unexpected entry %+v", g)
				}
				return ""
			},
		},
		{
			Name:       "balance",
			URL:        base,
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &ingredientapp.Ingredient{},
			ExpResp:    &ingredientapp.Ingredient{Name: "Cascade Hops", Unit: "KG", Balance: "6", LowStock: true},
			CmpFunc:    cmpIngredient,
		},
		{
			Name:       "ledger",
			URL:        base + "/ledger",
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusOK,
			GotResp:    &query.Result[ingredientapp.Entry]{},
			ExpResp:    &query.Result[ingredientapp.Entry]{Total: 2},
			CmpFunc: func(got any, exp any) string {
				g := got.(*query.Result[ingredientapp.Entry])
				if g.Total != exp.(*query.Result[ingredientapp.Entry]).Total || len(g.Items) != g.Total {
					return fmt.Sprintf("unexpected ledger %+v", g)
				}
				return ""
			},
		},
		{
			Name:       "other-tenant-ledger",
			URL:        base + "/ledger",
			Token:      b.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusNotFound,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.NotFound},
			CmpFunc:    cmpCode,
		},
		{
			Name:       "other-tenant-movement",
			URL:        base + "/movements",
			Token:      b.Staff.Token,
			Method:     http.MethodPost,
			Input:      &ingredientapp.NewMovement{Kind: "WASTE", Quantity: "1"},
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
			Token:      a.Admin.Token,
			Method:     http.MethodGet,
			StatusCode: http.StatusNotFound,
			GotResp:    &errs.Error{},
			ExpResp:    &errs.Error{Code: errs.NotFound},
			CmpFunc:    cmpCode,
		},
	}

	at.Run(t, table, "ingredient")
}

func cmpIngredient(got any, exp any) string {
	g := got.(*ingredientapp.Ingredient)
	e := exp.(*ingredientapp.Ingredient)

	switch {
	case g.Name != e.Name, g.Unit != e.Unit:
		return fmt.Sprintf("got %s/%s, expected %s/%s", g.Name, g.Unit, e.Name, e.Unit)
	case !decimalEqual(g.Balance, e.Balance):
		return fmt.Sprintf("got balance %s, expected %s", g.Balance, e.Balance)
	case g.LowStock != e.LowStock:
		return fmt.Sprintf("got lowStock %t, expected %t", g.LowStock, e.LowStock)
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
