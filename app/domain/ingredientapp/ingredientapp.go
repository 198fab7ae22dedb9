// Package ingredientapp maintains the app layer api for brewery inventory.
package ingredientapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/ingredientbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	ingredientBus *ingredientbus.Core
}

func newApp(ingredientBus *ingredientbus.Core) *app {
	return &app{
		ingredientBus: ingredientBus,
	}
}

// newWithTx returns a copy of the bus bound to the request transaction.
func (a *app) newWithTx(ctx context.Context) (*ingredientbus.Core, error) {
	tx, err := mid.GetTran(ctx)
	if err != nil {
		return nil, err
	}

	return a.ingredientBus.NewWithTx(tx)
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewIngredient
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ni, err := toBusNewIngredient(app)
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

	ing, err := bus.Create(ctx, scope, ni)
	if err != nil {
		return busError(err, "create")
	}

	return web.Created(toAppIngredient(ing))
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateIngredient
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ui, err := toBusUpdateIngredient(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, ing, resp := load(ctx, a.ingredientBus, r)
	if resp != nil {
		return resp
	}

	ing, err = a.ingredientBus.Update(ctx, scope, ing, ui)
	if err != nil {
		return busError(err, "update")
	}

	return toAppIngredient(ing)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	bus, err := a.newWithTx(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	scope, ing, resp := load(ctx, bus, r)
	if resp != nil {
		return resp
	}

	if err := bus.Delete(ctx, scope, ing); err != nil {
		return errs.Errorf(errs.Internal, "delete: ingredientID[%s]: %s", ing.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, ingredientbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	ings, err := a.ingredientBus.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.ingredientBus.Count(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppIngredients(ings), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	_, ing, resp := load(ctx, a.ingredientBus, r)
	if resp != nil {
		return resp
	}

	return toAppIngredient(ing)
}

// addMovement books stock in or out. The balance check and the insert share
// the request transaction.
func (a *app) addMovement(ctx context.Context, r *http.Request) web.Encoder {
	var app NewMovement
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nm, err := toBusNewMovement(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	bus, err := a.newWithTx(ctx)
	if err != nil {
		return errs.New(errs.Internal, err)
	}

	scope, ing, resp := load(ctx, bus, r)
	if resp != nil {
		return resp
	}

	entry, err := bus.AddMovement(ctx, scope, ing, nm)
	if err != nil {
		return busError(err, "addmovement")
	}

	return web.Created(toAppEntry(entry))
}

func (a *app) ledger(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	page, err := page.Parse(qp.Page, qp.Rows)
	if err != nil {
		return errs.NewFieldErrors("page", err).ToError()
	}

	scope, ing, resp := load(ctx, a.ingredientBus, r)
	if resp != nil {
		return resp
	}

	entries, err := a.ingredientBus.Ledger(ctx, scope, ing.ID, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "ledger: %s", err)
	}

	total, err := a.ingredientBus.CountLedger(ctx, scope, ing.ID)
	if err != nil {
		return errs.Errorf(errs.Internal, "countledger: %s", err)
	}

	return query.NewResult(toAppEntries(entries), total, page)
}

func load(ctx context.Context, bus *ingredientbus.Core, r *http.Request) (tenancy.Scope, ingredientbus.Ingredient, web.Encoder) {
	scope, err := mid.GetScope(ctx)
	if err != nil {
		return tenancy.Scope{}, ingredientbus.Ingredient{}, errs.New(errs.Unauthenticated, err)
	}

	id, err := uuid.Parse(web.Param(r, "ingredient_id"))
	if err != nil {
		return tenancy.Scope{}, ingredientbus.Ingredient{}, errs.NewFieldErrors("ingredient_id", err).ToError()
	}

	ing, err := bus.QueryByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, ingredientbus.ErrNotFound) {
			return tenancy.Scope{}, ingredientbus.Ingredient{}, errs.New(errs.NotFound, ingredientbus.ErrNotFound)
		}
		return tenancy.Scope{}, ingredientbus.Ingredient{}, errs.Errorf(errs.Internal, "querybyid: ingredientID[%s]: %s", id, err)
	}

	return scope, ing, nil
}

func busError(err error, op string) web.Encoder {
	switch {
	case errors.Is(err, ingredientbus.ErrUniqueName):
		return errs.New(errs.Aborted, ingredientbus.ErrUniqueName)
	case errors.Is(err, ingredientbus.ErrQuantity):
		return errs.NewFieldErrors("quantity", ingredientbus.ErrQuantity).ToError()
	case errors.Is(err, ingredientbus.ErrInsufficientStock):
		return errs.New(errs.FailedPrecondition, ingredientbus.ErrInsufficientStock)
	}
	return errs.Errorf(errs.Internal, "%s: %s", op, err)
}
