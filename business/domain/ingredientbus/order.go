package ingredientbus

import "github.com/jcpaschoal/vertical-suite/business/sdk/order"

// DefaultOrderBy represents the default way we sort.
var DefaultOrderBy = order.NewBy(OrderByName, order.ASC)

// Set of fields that the results can be ordered by.
const (
	OrderByID          = "ingredient_id"
	OrderByName        = "name"
	OrderByUnit        = "unit"
	OrderByDateCreated = "created_at"
)
