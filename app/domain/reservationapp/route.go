package reservationapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth           *auth.Auth
	TenantBus      *tenantbus.Core
	ReservationBus *reservationbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Tenant(cfg.TenantBus)
	authz := mid.Authorize(cfg.Auth, resource.Reservation)

	api := newApp(cfg.ReservationBus)

	app.HandlerFunc(http.MethodGet, version, "/reservations", api.query, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/reservations/calendar.ics", api.calendar, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/reservations/{reservation_id}", api.queryByID, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/reservations", api.create, authen, tenant, authz)
	app.HandlerFunc(http.MethodPut, version, "/reservations/{reservation_id}", api.update, authen, tenant, authz)
	app.HandlerFunc(http.MethodDelete, version, "/reservations/{reservation_id}", api.delete, authen, tenant, authz)
}
