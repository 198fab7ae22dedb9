package orderapp

import "github.com/jcpaschoal/vertical-suite/business/domain/orderbus"

var orderByFields = map[string]string{
	"order_id":    orderbus.OrderByID,
	"tableNumber": orderbus.OrderByTableNumber,
	"status":      orderbus.OrderByStatus,
	"dateCreated": orderbus.OrderByDateCreated,
}
