// Package orderapp maintains the app layer api for restaurant orders.
package orderapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/orderbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	orderBus *orderbus.Core
}

func newApp(orderBus *orderbus.Core) *app {
	return &app{
		orderBus: orderBus,
	}
}

func (a *app) newWithTx(ctx context.Context) (*orderbus.Core, error) {
	tx, err := mid.GetTran(ctx)
	if err != nil {
		return nil, err
	}

	return a.orderBus.NewWithTx(tx)
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewOrder
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	no, err := toBusNewOrder(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	bus, err := a.newWithTx(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	o, err := bus.Create(ctx, scope, no)
	if err != nil {
		if errors.Is(err, orderbus.ErrNoItems) {
			return errs.NewFieldErrors("items", orderbus.ErrNoItems).ToError()
		}
		return errs.Errorf(errs.Internal, "create: %s", err)
	}

	return web.Created(toAppOrder(o))
}

func (a *app) updateStatus(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateStatus
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	next, err := orderbus.ParseStatus(app.Status)
	if err != nil {
		return errs.NewFieldErrors("status", err).ToError()
	}

	scope, o, resp := load(ctx, a.orderBus, r)
	if resp != nil {
		return resp
	}

	o, err = a.orderBus.ChangeStatus(ctx, scope, o, next)
	if err != nil {
		if errors.Is(err, orderbus.ErrTransition) {
			return errs.New(errs.FailedPrecondition, err)
		}
		return errs.Errorf(errs.Internal, "changestatus: orderID[%s]: %s", o.ID, err)
	}

	return toAppOrder(o)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	bus, err := a.newWithTx(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	scope, o, resp := load(ctx, bus, r)
	if resp != nil {
		return resp
	}

	if err := bus.Delete(ctx, scope, o); err != nil {
		return errs.Errorf(errs.Internal, "delete: orderID[%s]: %s", o.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, orderbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	orders, err := a.orderBus.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.orderBus.Count(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppOrders(orders), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	_, o, resp := load(ctx, a.orderBus, r)
	if resp != nil {
		return resp
	}

	return toAppOrder(o)
}

func load(ctx context.Context, bus *orderbus.Core, r *http.Request) (tenancy.Scope, orderbus.Order, web.Encoder) {
	scope, err := mid.GetScope(ctx)
	if err != nil {
		return tenancy.Scope{}, orderbus.Order{}, errs.New(errs.Unauthenticated, err)
	}

	id, err := uuid.Parse(web.Param(r, "order_id"))
	if err != nil {
		return tenancy.Scope{}, orderbus.Order{}, errs.NewFieldErrors("order_id", err).ToError()
	}

	o, err := bus.QueryByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, orderbus.ErrNotFound) {
			return tenancy.Scope{}, orderbus.Order{}, errs.New(errs.NotFound, orderbus.ErrNotFound)
		}
		return tenancy.Scope{}, orderbus.Order{}, errs.Errorf(errs.Internal, "querybyid: orderID[%s]: %s", id, err)
	}

	return scope, o, nil
}
