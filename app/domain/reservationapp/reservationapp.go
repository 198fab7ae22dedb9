// Package reservationapp maintains the app layer api for hotel reservations.
package reservationapp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/reservationbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	reservationBus *reservationbus.Core
}

func newApp(reservationBus *reservationbus.Core) *app {
	return &app{
		reservationBus: reservationBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewReservation
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	nr, err := toBusNewReservation(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	res, err := a.reservationBus.Create(ctx, scope, nr)
	if err != nil {
		return busError(err, "create")
	}

	return web.Created(toAppReservation(res))
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateReservation
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ur, err := toBusUpdateReservation(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, res, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	res, err = a.reservationBus.Update(ctx, scope, res, ur)
	if err != nil {
		return busError(err, "update")
	}

	return toAppReservation(res)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	scope, res, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	if err := a.reservationBus.Delete(ctx, scope, res); err != nil {
		return errs.Errorf(errs.Internal, "delete: reservationID[%s]: %s", res.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, reservationbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	rs, err := a.reservationBus.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.reservationBus.Count(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppReservations(rs), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	_, res, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	return toAppReservation(res)
}

// calendar publishes the stays between from and to. The window defaults to
// thirty days back and one year ahead.
func (a *app) calendar(ctx context.Context, r *http.Request) web.Encoder {
	qp := parseQueryParams(r)

	today := reservationbus.Day(time.Now())
	from := today.AddDate(0, 0, -30)
	to := today.AddDate(1, 0, 0)

	filter, err := parseFilter(qp)
	if err != nil {
		if v, ok := err.(*errs.Error); ok {
			return v
		}
		return errs.NewFieldErrors("filter", err).ToError()
	}

	if filter.From != nil {
		from = *filter.From
	}

	if filter.To != nil {
		to = *filter.To
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	tnt, err := mid.GetTenant(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	rs, err := a.reservationBus.Calendar(ctx, scope, from, to)
	if err != nil {
		return errs.Errorf(errs.Internal, "calendar: %s", err)
	}

	return toAppCalendar(tnt.Name, tnt.Code.String(), rs)
}

func (a *app) load(ctx context.Context, r *http.Request) (tenancy.Scope, reservationbus.Reservation, web.Encoder) {
	scope, err := mid.GetScope(ctx)
	if err != nil {
		return tenancy.Scope{}, reservationbus.Reservation{}, errs.New(errs.Unauthenticated, err)
	}

	id, err := uuid.Parse(web.Param(r, "reservation_id"))
	if err != nil {
		return tenancy.Scope{}, reservationbus.Reservation{}, errs.NewFieldErrors("reservation_id", err).ToError()
	}

	res, err := a.reservationBus.QueryByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, reservationbus.ErrNotFound) {
			return tenancy.Scope{}, reservationbus.Reservation{}, errs.New(errs.NotFound, reservationbus.ErrNotFound)
		}
		return tenancy.Scope{}, reservationbus.Reservation{}, errs.Errorf(errs.Internal, "querybyid: reservationID[%s]: %s", id, err)
	}

	return scope, res, nil
}

func busError(err error, op string) web.Encoder {
	switch {
	case errors.Is(err, reservationbus.ErrStayDates):
		return errs.NewFieldErrors("checkOut", reservationbus.ErrStayDates).ToError()
	case errors.Is(err, reservationbus.ErrOverlap):
		return errs.New(errs.Aborted, reservationbus.ErrOverlap)
	case errors.Is(err, reservationbus.ErrTransition):
		return errs.New(errs.FailedPrecondition, reservationbus.ErrTransition)
	}
	return errs.Errorf(errs.Internal, "%s: %s", op, err)
}
