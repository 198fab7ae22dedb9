package productbus

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/shopspring/decimal"
)

var seq atomic.Int64

// TestNewProducts is a helper method for testing. Each product is priced at
// 10.00 with a stock of 3.
func TestNewProducts(n int) []NewProduct {
	nps := make([]NewProduct, n)

	for i := range n {
		idx := seq.Add(1)

		nps[i] = NewProduct{
			SKU:   fmt.Sprintf("SKU-%05d", idx),
			Name:  name.MustParse(fmt.Sprintf("Product%d", idx)),
			Price: decimal.RequireFromString("10.00"),
			Stock: 3,
		}
	}

	return nps
}

// TestSeedProducts is a helper method for testing.
func TestSeedProducts(ctx context.Context, scope tenancy.Scope, n int, api *Core) ([]Product, error) {
	nps := TestNewProducts(n)

	prds := make([]Product, len(nps))
	for i, np := range nps {
		prd, err := api.Create(ctx, scope, np)
		if err != nil {
			return nil, fmt.Errorf("seeding product: idx: %d : %w", i, err)
		}

		prds[i] = prd
	}

	return prds, nil
}
