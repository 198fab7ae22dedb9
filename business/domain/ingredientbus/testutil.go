package ingredientbus

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/unit"
	"github.com/shopspring/decimal"
)

var seq atomic.Int64

// TestNewIngredients is a helper method for testing.
func TestNewIngredients(n int, opening decimal.Decimal) []NewIngredient {
	nis := make([]NewIngredient, n)

	for i := range n {
		idx := seq.Add(1)

		nis[i] = NewIngredient{
			Name:         name.MustParse(fmt.Sprintf("Malt%d", idx)),
			Unit:         unit.Kilogram,
			ReorderLevel: decimal.NewFromInt(5),
			OpeningStock: opening,
		}
	}

	return nis
}

// TestSeedIngredients is a helper method for testing.
func TestSeedIngredients(ctx context.Context, scope tenancy.Scope, n int, opening decimal.Decimal, api *Core) ([]Ingredient, error) {
	nis := TestNewIngredients(n, opening)

	ings := make([]Ingredient, len(nis))
	for i, ni := range nis {
		ing, err := api.Create(ctx, scope, ni)
		if err != nil {
			return nil, fmt.Errorf("seeding ingredient: idx: %d : %w", i, err)
		}

		ings[i] = ing
	}

	return ings, nil
}
