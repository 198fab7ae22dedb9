package ingredientapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log           *logger.Logger
	DB            *sqlx.DB
	Auth          *auth.Auth
	TenantBus     *tenantbus.Core
	IngredientBus *ingredientbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Tenant(cfg.TenantBus)
	authz := mid.Authorize(cfg.Auth, resource.Ingredient)
	transaction := mid.BeginCommitRollback(cfg.Log, sqldb.NewBeginner(cfg.DB))

	api := newApp(cfg.IngredientBus)

	app.HandlerFunc(http.MethodGet, version, "/ingredients", api.query, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/ingredients/{ingredient_id}", api.queryByID, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/ingredients/{ingredient_id}/ledger", api.ledger, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/ingredients", api.create, authen, tenant, authz, transaction)
	app.HandlerFunc(http.MethodPost, version, "/ingredients/{ingredient_id}/movements", api.addMovement, authen, tenant, authz, transaction)
	app.HandlerFunc(http.MethodPut, version, "/ingredients/{ingredient_id}", api.update, authen, tenant, authz)
	app.HandlerFunc(http.MethodDelete, version, "/ingredients/{ingredient_id}", api.delete, authen, tenant, authz, transaction)
}
