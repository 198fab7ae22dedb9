package tenantbus

import "github.com/jcpaschoal/vertical-suite/business/types/vertical"

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	Name     *string
	Vertical *vertical.Vertical
	Enabled  *bool
}
