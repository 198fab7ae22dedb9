package tenantapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	TenantBus *tenantbus.Core
}

// Routes adds specific routes for this group. These act across tenants so
// no tenant is resolved for them.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	authz := mid.Authorize(cfg.Auth, resource.Tenant)

	api := newApp(cfg.TenantBus)

	app.HandlerFunc(http.MethodGet, version, "/admin/stats", api.platformStats, authen, authz)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants", api.query, authen, authz)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}", api.queryByID, authen, authz)
	app.HandlerFunc(http.MethodGet, version, "/admin/tenants/{tenant_id}/stats", api.stats, authen, authz)
	app.HandlerFunc(http.MethodPost, version, "/admin/tenants", api.create, authen, authz)
	app.HandlerFunc(http.MethodPut, version, "/admin/tenants/{tenant_id}", api.update, authen, authz)
	app.HandlerFunc(http.MethodDelete, version, "/admin/tenants/{tenant_id}", api.delete, authen, authz)
}
