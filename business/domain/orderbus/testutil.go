package orderbus

import (
	"context"
	"fmt"

	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/shopspring/decimal"
)

// TestNewOrders is a helper method for testing. Every order carries two
// items totalling 31.50.
func TestNewOrders(n int) []NewOrder {
	nos := make([]NewOrder, n)

	for i := range n {
		nos[i] = NewOrder{
			TableNumber: i + 1,
			Items: []NewItem{
				{Name: "Burger", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
				{Name: "Lemonade", Quantity: 1, UnitPrice: decimal.RequireFromString("6.50")},
			},
		}
	}

	return nos
}

// TestSeedOrders is a helper method for testing.
func TestSeedOrders(ctx context.Context, scope tenancy.Scope, n int, api *Core) ([]Order, error) {
	nos := TestNewOrders(n)

	orders := make([]Order, len(nos))
	for i, no := range nos {
		o, err := api.Create(ctx, scope, no)
		if err != nil {
			return nil, fmt.Errorf("seeding order: idx: %d : %w", i, err)
		}

		orders[i] = o
	}

	return orders, nil
}
