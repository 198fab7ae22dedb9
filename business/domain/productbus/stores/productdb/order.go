package productdb

import "github.com/jcpaschoal/vertical-suite/business/domain/productbus"

var orderByFields = map[string]string{
	productbus.OrderByID:    "product_id",
	productbus.OrderBySKU:   "sku",
	productbus.OrderByName:  "name",
	productbus.OrderByStock: "stock",
}
