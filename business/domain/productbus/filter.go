package productbus

import "github.com/shopspring/decimal"

// QueryFilter holds the available fields a query can be filtered on.
type QueryFilter struct {
	SKU      *string
	Name     *string
	Active   *bool
	MaxStock *int
	MinPrice *decimal.Decimal
}
