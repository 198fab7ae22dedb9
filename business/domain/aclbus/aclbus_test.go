package aclbus_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/jcpaschoal/vertical-suite/business/domain/aclbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/aclbus/stores/aclfile"
	"github.com/jcpaschoal/vertical-suite/business/types/actions"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/stretchr/testify/require"
)

func newCore(t *testing.T, storer aclbus.Storer) (*aclbus.Core, error) {
	t.Helper()

	var buf bytes.Buffer
	log := logger.New(&buf, logger.LevelInfo, "TEST", func(context.Context) string { return "" })

	return aclbus.NewCore(context.Background(), log, storer)
}

func Test_DefaultPolicy(t *testing.T) {
	api, err := newCore(t, aclfile.NewStore())
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name  string
		role  role.Role
		res   resource.Resource
		act   actions.Action
		allow bool
	}{
		{"staff-books-room", role.Staff, resource.Reservation, actions.Create, true},
		{"staff-cannot-delete", role.Staff, resource.Reservation, actions.Delete, false},
		{"staff-reads-products", role.Staff, resource.Product, actions.Get, true},
		{"staff-cannot-price", role.Staff, resource.Product, actions.Update, false},
		{"staff-no-users", role.Staff, resource.User, actions.Get, false},
		{"admin-inherits-staff", role.Admin, resource.Order, actions.Update, true},
		{"admin-deletes", role.Admin, resource.Order, actions.Delete, true},
		{"admin-no-tenants", role.Admin, resource.Tenant, actions.Get, false},
		{"superadmin-tenants", role.SuperAdmin, resource.Tenant, actions.Delete, true},
		{"superadmin-inherits", role.SuperAdmin, resource.User, actions.Create, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := api.Enforce(ctx, tt.role, tt.res, tt.act)
			if tt.allow {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, aclbus.ErrForbidden)
		})
	}
}

func Test_BadPolicy(t *testing.T) {
	_, err := newCore(t, aclfile.NewStoreFromBytes([]byte("roles:\n  - role: JANITOR\n")))
	require.Error(t, err)

	_, err = newCore(t, aclfile.NewStoreFromBytes([]byte("roles:\n  - role: STAFF\n    grants:\n      PRODUCT: [ERASE]\n")))
	require.Error(t, err)
}
