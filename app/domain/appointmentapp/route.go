package appointmentapp

import (
	"net/http"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
)

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Auth           *auth.Auth
	TenantBus      *tenantbus.Core
	AppointmentBus *appointmentbus.Core
}

// Routes adds specific routes for this group.
func Routes(app *web.App, cfg Config) {
	const version = "api/v1"

	authen := mid.Authenticate(cfg.Auth)
	tenant := mid.Tenant(cfg.TenantBus)
	authz := mid.Authorize(cfg.Auth, resource.Appointment)

	api := newApp(cfg.AppointmentBus)

	app.HandlerFunc(http.MethodGet, version, "/appointments", api.query, authen, tenant, authz)
	app.HandlerFunc(http.MethodGet, version, "/appointments/{appointment_id}", api.queryByID, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/appointments", api.create, authen, tenant, authz)
	app.HandlerFunc(http.MethodPost, version, "/appointments/cancel", api.cancel, authen, tenant, authz)
	app.HandlerFunc(http.MethodPut, version, "/appointments/{appointment_id}", api.update, authen, tenant, authz)
	app.HandlerFunc(http.MethodDelete, version, "/appointments/{appointment_id}", api.delete, authen, tenant, authz)
}
