package orderapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log       *logger.Logger
	DB        *sqlx.DB
	Auth      *auth.Auth
	TenantBus *tenantbus.Core
	OrderBus  *orderbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Tenant(cfg.TenantBus)
	authz := mid.Authorize(cfg.Auth, resource.Order)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.OrderBus)

	app.HandlerFunc(http.MethodGet, version, "/orders", api.query, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/orders/{order_id}", api.queryByID, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/orders", api.create, authen, tenant, authz, transaction)
	app.HandlerFunc(http.MethodPut, version, "/orders/{order_id}/status", api.updateStatus, authen, tenant, authz)
	app.HandlerFunc(http.MethodDelete, version, "/orders/{order_id}", api.delete, authen, tenant, authz, transaction)
}
