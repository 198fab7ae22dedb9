// Package all binds all the routes into the specified app.
package all

import (
	"context"
	"fmt"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/domain/appointmentapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/authapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/checkapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/ingredientapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/orderapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/productapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/reservationapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/tenantapp"
	"github.com/jcpaschoal/vertical-suite/app/domain/userapp"
	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mux"
	"github.com/jcpaschoal/vertical-suite/business/domain/aclbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/aclbus/stores/aclfile"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus/stores/appointmentdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus/stores/ingredientdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus/stores/orderdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus/stores/productdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus/stores/reservationdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantcache"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus/stores/usercache"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus/stores/userdb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

// Routes constructs the add value which provides the implementation of
// of RouteAdder for specifying what routes to bind to this instance.
func Routes() add {
	return add{}
}

type add struct{}

// Add implements the RouterAdder interface.
func (add) Add(app *web.App, cfg mux.Config) error {

	// -------------------------------------------------------------------------
	// Construct the business domain packages we need here so we are using the
	// sames instances for the different set of domain apis.

	tenantBus := tenantbus.NewCore(cfg.Log, tenantcache.NewStore(cfg.Log, tenantdb.NewStore(cfg.Log, cfg.DB), time.Minute))
	userBus := userbus.NewCore(usercache.NewStore(cfg.Log, userdb.NewStore(cfg.Log, cfg.DB), time.Minute))
	reservationBus := reservationbus.NewCore(reservationdb.NewStore(cfg.Log, cfg.DB))
	ingredientBus := ingredientbus.NewCore(ingredientdb.NewStore(cfg.Log, cfg.DB))
	orderBus := orderbus.NewCore(orderdb.NewStore(cfg.Log, cfg.DB))
	appointmentBus := appointmentbus.NewCore(appointmentdb.NewStore(cfg.Log, cfg.DB))
	productBus := productbus.NewCore(productdb.NewStore(cfg.Log, cfg.DB))

	aclBus, err := aclbus.NewCore(context.Background(), cfg.Log, aclfile.NewStore())
	if err != nil {
		return fmt.Errorf("loading role policy: %w", err)
	}

	authClient := auth.New(auth.Config{
		Log:       cfg.Log,
		UserBus:   userBus,
		ACLBus:    aclBus,
		KeyLookup: cfg.AuthConfig.KeyLookup,
		Issuer:    cfg.AuthConfig.Issuer,
		ActiveKID: cfg.AuthConfig.ActiveKID,
	})

	checkapp.Routes(app, checkapp.Config{
		Build: cfg.Build,
		Log:   cfg.Log,
		DB:    cfg.DB,
	})

	authapp.Routes(app, authapp.Config{
		Auth:      authClient,
		TenantBus: tenantBus,
	})

	userapp.Routes(app, userapp.Config{
		Auth:      authClient,
		TenantBus: tenantBus,
		UserBus:   userBus,
	})

	reservationapp.Routes(app, reservationapp.Config{
		Auth:           authClient,
		TenantBus:      tenantBus,
		ReservationBus: reservationBus,
	})

	ingredientapp.Routes(app, ingredientapp.Config{
		Log:           cfg.Log,
		DB:            cfg.DB,
		Auth:          authClient,
		TenantBus:     tenantBus,
		IngredientBus: ingredientBus,
	})

	orderapp.Routes(app, orderapp.Config{
		Log:       cfg.Log,
		DB:        cfg.DB,
		Auth:      authClient,
		TenantBus: tenantBus,
		OrderBus:  orderBus,
	})

	appointmentapp.Routes(app, appointmentapp.Config{
		Auth:           authClient,
		TenantBus:      tenantBus,
		AppointmentBus: appointmentBus,
	})

	productapp.Routes(app, productapp.Config{
		Auth:       authClient,
		TenantBus:  tenantBus,
		ProductBus: productBus,
	})

	tenantapp.Routes(app, tenantapp.Config{
		Auth:      authClient,
		TenantBus: tenantBus,
	})

	return nil
}
