package tenantdb

import "github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"

var orderByFields = map[string]string{
	tenantbus.OrderByID:          "tenant_id",
	tenantbus.OrderByName:        "name",
	tenantbus.OrderByCode:        "code",
	tenantbus.OrderByVertical:    "vertical",
	tenantbus.OrderByDateCreated: "created_at",
}
