package userapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth      *auth.Auth
	TenantBus *tenantbus.Core
	UserBus   *userbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Tenant(cfg.TenantBus)
	authz := mid.Authorize(cfg.Auth, resource.User)

	api := newApp(cfg.UserBus)

	app.HandlerFunc(http.MethodGet, version, "/users", api.query, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/users/{user_id}", api.queryByID, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/users", api.create, authen, tenant, authz)
	app.HandlerFunc(http.MethodPut, version, "/users/{user_id}", api.update, authen, tenant, authz)
	app.HandlerFunc(http.MethodPut, version, "/users/{user_id}/role", api.updateRole, authen, tenant, authz)
	app.HandlerFunc(http.MethodDelete, version, "/users/{user_id}", api.delete, authen, tenant, authz)
}
