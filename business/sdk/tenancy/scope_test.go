package tenancy_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/stretchr/testify/require"
)

func Test_New(t *testing.T) {
	_, err := tenancy.New(uuid.Nil, uuid.Nil)
	require.ErrorIs(t, err, tenancy.ErrNoTenant)

	tenantID := uuid.New()

	scope, err := tenancy.New(tenantID, uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, tenantID, scope.TenantID())
	require.Equal(t, tenantID, scope.OrgID(), "org should default to the tenant")
	require.True(t, scope.Valid())
	require.False(t, scope.IsBypass())

	orgID := uuid.New()
	scope, err = tenancy.New(tenantID, orgID)
	require.NoError(t, err)
	require.Equal(t, orgID, scope.OrgID())
}

func Test_Owns(t *testing.T) {
	tenantA := uuid.New()
	tenantB := uuid.New()

	scope, err := tenancy.New(tenantA, uuid.Nil)
	require.NoError(t, err)

	require.True(t, scope.Owns(tenantA))
	require.False(t, scope.Owns(tenantB))
	require.False(t, scope.Owns(uuid.Nil))

	bypass := tenancy.Bypass("test")
	require.True(t, bypass.IsBypass())
	require.True(t, bypass.Valid())
	require.True(t, bypass.Owns(tenantB))
	require.Equal(t, "test", bypass.Reason())

	require.Equal(t, "unspecified", tenancy.Bypass("").Reason())
	require.False(t, tenancy.Scope{}.Valid())
}

func Test_Tables(t *testing.T) {
	require.True(t, tenancy.IsScoped("products"))
	require.True(t, tenancy.IsScoped("inventory_ledger"))
	require.False(t, tenancy.IsScoped("tenants"))
	require.Len(t, tenancy.Tables(), 8)
}
