package ingredientbus

import "github.com/jcpaschoal/vertical-suite/business/types/unit"

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	Name *string
	Unit *unit.Unit
}
