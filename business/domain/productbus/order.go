package productbus

import "github.com/jcpaschoal/vertical-suite/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID    = "product_id"
	OrderBySKU   = "sku"
	OrderByName  = "name"
	OrderByStock = "stock"
)
