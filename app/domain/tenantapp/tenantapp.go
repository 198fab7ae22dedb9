// Package tenantapp maintains the platform api for onboarding and
// inspecting tenants. Only super admins reach it.
package tenantapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	tenantBus *tenantbus.Core
}

func newApp(tenantBus *tenantbus.Core) *app {
	return &app{
		tenantBus: tenantBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nt, err := toBusNewTenant(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	t, err := a.tenantBus.Create(ctx, nt)
	if err != nil {
		if errors.Is(err, tenantbus.ErrUniqueCode) {
			return errs.New(errs.Aborted, tenantbus.ErrUniqueCode)
		}
		return errs.Errorf(errs.Internal, "create: tenant[%+v]: %s", app, err)
	}

	return web.Created(toAppTenant(t))
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateTenant
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ut, err := toBusUpdateTenant(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	t, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	t, err = a.tenantBus.Update(ctx, t, ut)
	if err != nil {
		return errs.Errorf(errs.Internal, "update: tenantID[%s]: %s", t.ID, err)
	}

	return toAppTenant(t)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	t, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	if err := a.tenantBus.Delete(ctx, t); err != nil {
		return errs.Errorf(errs.Internal, "delete: tenantID[%s]: %s", t.ID, err)
	}

	return nil
}

func (a *app) query(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err).ToError()
	}

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err).ToError()
	}

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, tenantbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	tenants, err := a.tenantBus.Query(ctx, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.tenantBus.Count(ctx, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppTenants(tenants), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	t, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	return toAppTenant(t)
}

func (a *app) stats(ctx context.Context, r *http.Request) web.Encoder {
	t, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	st, err := a.tenantBus.Stats(ctx, t)
	if err != nil {
		return errs.Errorf(errs.Internal, "stats: tenantID[%s]: %s", t.ID, err)
	}

	return toAppStats(st)
}

func (a *app) platformStats(ctx context.Context, r *http.Request) web.Encoder {
	st, err := a.tenantBus.PlatformStats(ctx)
	if err != nil {
		return errs.Errorf(errs.Internal, "platformstats: %s", err)
	}

	return toAppStats(st)
}

func (a *app) load(ctx context.Context, r *http.Request) (tenantbus.Tenant, web.Encoder) {
	id, err := uuid.Parse(web.Param(r, "tenant_id"))
	if err != nil {
		return tenantbus.Tenant{}, errs.NewFieldErrors("tenant_id", err).ToError()
	}

	t, err := a.tenantBus.QueryByID(ctx, id)
	if err != nil {
		if errors.Is(err, tenantbus.ErrNotFound) {
			return tenantbus.Tenant{}, errs.New(errs.NotFound, tenantbus.ErrNotFound)
		}
		return tenantbus.Tenant{}, errs.Errorf(errs.Internal, "querybyid: tenantID[%s]: %s", id, err)
	}

	return t, nil
}
