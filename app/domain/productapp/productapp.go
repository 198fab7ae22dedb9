// Package productapp maintains the app layer api for the retail catalogue.
package productapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/productbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	productBus *productbus.Core
}

func newApp(productBus *productbus.Core) *app {
	return &app{
		productBus: productBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewProduct
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	np, err := toBusNewProduct(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	prd, err := a.productBus.Create(ctx, scope, np)
	if err != nil {
		return busError(err, "create")
	}

	return web.Created(toAppProduct(prd))
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateProduct
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	up, err := toBusUpdateProduct(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, prd, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	prd, err = a.productBus.Update(ctx, scope, prd, up)
	if err != nil {
		return busError(err, "update")
	}

	return toAppProduct(prd)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	scope, prd, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	if err := a.productBus.Delete(ctx, scope, prd); err != nil {
		return errs.Errorf(errs.Internal, "delete: productID[%s]: %s", prd.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, productbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	prds, err := a.productBus.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.productBus.Count(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppProducts(prds), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	_, prd, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	return toAppProduct(prd)
}

// summary reports catalogue totals for the same filters query accepts.
func (a *app) summary(ctx context.Context, r *http.Request) web.Encoder {
	filter, err := parseFilter(parseQueryParams(r))
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	sum, err := a.productBus.Summary(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "summary: %s", err)
	}

	return toAppSummary(sum)
}

func (a *app) load(ctx context.Context, r *http.Request) (tenancy.Scope, productbus.Product, web.Encoder) {
	scope, err := mid.GetScope(ctx)
	if err != nil {
		return tenancy.Scope{}, productbus.Product{}, errs.New(errs.Unauthenticated, err)
	}

	id, err := uuid.Parse(web.Param(r, "product_id"))
	if err != nil {
		return tenancy.Scope{}, productbus.Product{}, errs.NewFieldErrors("product_id", err).ToError()
	}

	prd, err := a.productBus.QueryByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, productbus.ErrNotFound) {
			return tenancy.Scope{}, productbus.Product{}, errs.New(errs.NotFound, productbus.ErrNotFound)
		}
		return tenancy.Scope{}, productbus.Product{}, errs.Errorf(errs.Internal, "querybyid: productID[%s]: %s", id, err)
	}

	return scope, prd, nil
}

func busError(err error, op string) web.Encoder {
	switch {
	case errors.Is(err, productbus.ErrUniqueSKU):
		return errs.New(errs.Aborted, productbus.ErrUniqueSKU)
	case errors.Is(err, productbus.ErrStock):
		return errs.NewFieldErrors("stock", productbus.ErrStock).ToError()
	}
	return errs.Errorf(errs.Internal, "%s: %s", op, err)
}
