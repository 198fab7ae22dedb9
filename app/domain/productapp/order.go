package productapp

import "github.com/jcpaschoal/vertical-suite/business/domain/productbus"

var orderByFields = map[string]string{
	"product_id": productbus.OrderByID,
	"sku":        productbus.OrderBySKU,
	"name":       productbus.OrderByName,
	"stock":      productbus.OrderByStock,
}
