// Package userapp maintains the app layer api for the user domain.
package userapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	userBus *userbus.Core
}

func newApp(userBus *userbus.Core) *app {
	return &app{
		userBus: userBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewUser
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	nu, err := toBusNewUser(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	usr, err := a.userBus.Create(ctx, scope, nu)
	if err != nil {
		return busError(err, "create")
	}

	return web.Created(toAppUser(usr))
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateUser
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	uu, err := toBusUpdateUser(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, usr, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	updUsr, err := a.userBus.Update(ctx, scope, usr, uu)
	if err != nil {
		return busError(err, "update")
	}

	return toAppUser(updUsr)
}

func (a *app) updateRole(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateUserRole
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	uu, err := toBusUpdateUserRole(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, usr, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	updUsr, err := a.userBus.Update(ctx, scope, usr, uu)
	if err != nil {
		return busError(err, "updaterole")
	}

	return toAppUser(updUsr)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	scope, usr, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	if usr.ID == mid.GetSubjectID(ctx) {
		return errs.Errorf(errs.FailedPrecondition, "users cannot delete themselves")
	}

	if err := a.userBus.Delete(ctx, scope, usr); err != nil {
		return errs.Errorf(errs.Internal, "delete: userID[%s]: %s", usr.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, userbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	usrs, err := a.userBus.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.userBus.Count(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppUsers(usrs), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	_, usr, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	return toAppUser(usr)
}

// load reads the scope and the user named in the path. A user owned by
// another tenant is reported as not found.
func (a *app) load(ctx context.Context, r *http.Request) (tenancy.Scope, userbus.User, web.Encoder) {
	scope, err := mid.GetScope(ctx)
	if err != nil {
		return tenancy.Scope{}, userbus.User{}, errs.New(errs.Unauthenticated, err)
	}

	userID, err := uuid.Parse(web.Param(r, "user_id"))
	if err != nil {
		return tenancy.Scope{}, userbus.User{}, errs.NewFieldErrors("user_id", err).ToError()
	}

	usr, err := a.userBus.QueryByID(ctx, scope, userID)
	if err != nil {
		if errors.Is(err, userbus.ErrNotFound) {
			return tenancy.Scope{}, userbus.User{}, errs.New(errs.NotFound, userbus.ErrNotFound)
		}
		return tenancy.Scope{}, userbus.User{}, errs.Errorf(errs.Internal, "querybyid: userID[%s]: %s", userID, err)
	}

	return scope, usr, nil
}

func busError(err error, op string) web.Encoder {
	switch {
	case errors.Is(err, userbus.ErrUniqueEmail):
		return errs.New(errs.Aborted, userbus.ErrUniqueEmail)
	case errors.Is(err, userbus.ErrRoleScope):
		return errs.New(errs.InvalidArgument, userbus.ErrRoleScope)
	}
	return errs.Errorf(errs.Internal, "%s: %s", op, err)
}
