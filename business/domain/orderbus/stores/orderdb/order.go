package orderdb

import "github.com/jcpaschoal/vertical-suite/business/domain/orderbus"

var orderByFields = map[string]string{
	orderbus.OrderByID:          "order_id",
	orderbus.OrderByTableNumber: "table_number",
	orderbus.OrderByStatus:      "status",
	orderbus.OrderByDateCreated: "created_at",
}
