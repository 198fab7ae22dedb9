package tenantapp

import "github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"

var orderByFields = map[string]string{
	"tenant_id":   tenantbus.OrderByID,
	"name":        tenantbus.OrderByName,
	"code":        tenantbus.OrderByCode,
	"vertical":    tenantbus.OrderByVertical,
	"dateCreated": tenantbus.OrderByDateCreated,
}
