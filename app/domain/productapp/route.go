package productapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth       *auth.Auth
	TenantBus  *tenantbus.Core
	ProductBus *productbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Tenant(cfg.TenantBus)
	authz := mid.Authorize(cfg.Auth, resource.Product)

	api := newApp(cfg.ProductBus)

	app.HandlerFunc(http.MethodGet, version, "/products", api.query, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/products/summary", api.summary, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/products/{product_id}", api.queryByID, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/products", api.create, authen, tenant, authz)
	app.HandlerFunc(http.MethodPut, version, "/products/{product_id}", api.update, authen, tenant, authz)
	app.HandlerFunc(http.MethodDelete, version, "/products/{product_id}", api.delete, authen, tenant, authz)
}
