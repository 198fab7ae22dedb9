package tenantbus

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
)

var seq atomic.Int64

// TestSeedTenants is a helper method for testing.
func TestSeedTenants(ctx context.Context, n int, vt vertical.Vertical, api *Core) ([]Tenant, error) {
	tenants := make([]Tenant, n)

	for i := range n {
		idx := seq.Add(1)

		t, err := api.Create(ctx, NewTenant{
			Name:     fmt.Sprintf("Tenant %s %d", vt, idx),
			Vertical: vt,
		})
		if err != nil {
			return nil, fmt.Errorf("seeding tenant: idx: %d : %w", i, err)
		}

		tenants[i] = t
	}

	return tenants, nil
}
