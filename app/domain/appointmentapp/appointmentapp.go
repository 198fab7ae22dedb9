// Package appointmentapp maintains the app layer api for salon bookings.
package appointmentapp

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/app/sdk/mid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/query"
	"github.com/jcpaschoal/vertical-suite/business/domain/appointmentbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/order"
	"github.com/jcpaschoal/vertical-suite/business/sdk/page"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	appointmentBus *appointmentbus.Core
}

func newApp(appointmentBus *appointmentbus.Core) *app {
	return &app{
		appointmentBus: appointmentBus,
	}
}

func (a *app) create(ctx context.Context, r *http.Request) web.Encoder {
	var app NewAppointment
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	na, err := toBusNewAppointment(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	apt, err := a.appointmentBus.Create(ctx, scope, na)
	if err != nil {
		return busError(err, "create")
	}

	return web.Created(toAppAppointment(apt))
}

func (a *app) update(ctx context.Context, r *http.Request) web.Encoder {
	var app UpdateAppointment
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	ua, err := toBusUpdateAppointment(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, apt, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	apt, err = a.appointmentBus.Update(ctx, scope, apt, ua)
	if err != nil {
		return busError(err, "update")
	}

	return toAppAppointment(apt)
}

func (a *app) delete(ctx context.Context, r *http.Request) web.Encoder {
	scope, apt, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	if err := a.appointmentBus.Delete(ctx, scope, apt); err != nil {
		return errs.Errorf(errs.Internal, "delete: appointmentID[%s]: %s", apt.ID, err)
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

	orderBy, err := order.Parse(orderByFields, qp.OrderBy, appointmentbus.DefaultOrderBy)
	if err != nil {
		return errs.NewFieldErrors("order", err).ToError()
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	as, err := a.appointmentBus.Query(ctx, scope, filter, orderBy, page)
	if err != nil {
		return errs.Errorf(errs.Internal, "query: %s", err)
	}

	total, err := a.appointmentBus.Count(ctx, scope, filter)
	if err != nil {
		return errs.Errorf(errs.Internal, "count: %s", err)
	}

	return query.NewResult(toAppAppointments(as), total, page)
}

func (a *app) queryByID(ctx context.Context, r *http.Request) web.Encoder {
	_, apt, resp := a.load(ctx, r)
	if resp != nil {
		return resp
	}

	return toAppAppointment(apt)
}

// cancel clears a staff member's scheduled appointments inside a window.
func (a *app) cancel(ctx context.Context, r *http.Request) web.Encoder {
	var app CancelRequest
	if err := web.Decode(r, &app); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	w, err := toBusCancelWindow(app)
	if err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	scope, err := mid.GetScope(ctx)
	if err != nil {
		return errs.New(errs.Unauthenticated, err)
	}

	n, err := a.appointmentBus.CancelMany(ctx, scope, w)
	if err != nil {
		return busError(err, "cancelmany")
	}

	return CancelResult{Cancelled: n}
}

func (a *app) load(ctx context.Context, r *http.Request) (tenancy.Scope, appointmentbus.Appointment, web.Encoder) {
	scope, err := mid.GetScope(ctx)
	if err != nil {
		return tenancy.Scope{}, appointmentbus.Appointment{}, errs.New(errs.Unauthenticated, err)
	}

	id, err := uuid.Parse(web.Param(r, "appointment_id"))
	if err != nil {
		return tenancy.Scope{}, appointmentbus.Appointment{}, errs.NewFieldErrors("appointment_id", err).ToError()
	}

	apt, err := a.appointmentBus.QueryByID(ctx, scope, id)
	if err != nil {
		if errors.Is(err, appointmentbus.ErrNotFound) {
			return tenancy.Scope{}, appointmentbus.Appointment{}, errs.New(errs.NotFound, appointmentbus.ErrNotFound)
		}
		return tenancy.Scope{}, appointmentbus.Appointment{}, errs.Errorf(errs.Internal, "querybyid: appointmentID[%s]: %s", id, err)
	}

	return scope, apt, nil
}

func busError(err error, op string) web.Encoder {
	switch {
	case errors.Is(err, appointmentbus.ErrOverlap):
		return errs.New(errs.Aborted, appointmentbus.ErrOverlap)
	case errors.Is(err, appointmentbus.ErrDuration):
		return errs.NewFieldErrors("durationMinutes", appointmentbus.ErrDuration).ToError()
	case errors.Is(err, appointmentbus.ErrWindow):
		return errs.NewFieldErrors("to", appointmentbus.ErrWindow).ToError()
	}
	return errs.Errorf(errs.Internal, "%s: %s", op, err)
}
