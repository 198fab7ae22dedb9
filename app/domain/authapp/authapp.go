// Package authapp maintains the app layer api for logging in.
package authapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
)

type app struct {
	auth      *auth.Auth
	tenantBus *tenantbus.Core
}

func newApp(auth *auth.Auth, tenantBus *tenantbus.Core) *app {
	return &app{
		auth:      auth,
		tenantBus: tenantBus,
	}
}

func (a *app) login(ctx context.Context, r *http.Request) web.Encoder {
	var req Login
	if err := web.Decode(r, &req); err != nil {
		return errs.New(errs.InvalidArgument, err)
	}

	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("parsing email: %w", err))
	}

	orgID := uuid.Nil
	if req.OrgID != "" {
		if orgID, err = uuid.Parse(req.OrgID); err != nil {
			return errs.New(errs.InvalidArgument, fmt.Errorf("parsing org id: %w", err))
		}
	}

	usr, err := a.auth.Login(ctx, *addr, req.Password)
	if err != nil {
		return errs.New(errs.Unauthenticated, errors.New("invalid credentials"))
	}

	if usr.TenantID == uuid.Nil && orgID != uuid.Nil {
		return errs.New(errs.InvalidArgument, errors.New("platform users have no organization"))
	}

	if usr.TenantID != uuid.Nil {
		if _, err := a.tenantBus.Active(ctx, usr.TenantID); err != nil {
			if errors.Is(err, tenantbus.ErrDisabled) || errors.Is(err, tenantbus.ErrNotFound) {
				return errs.New(errs.PermissionDenied, tenantbus.ErrDisabled)
			}
			return errs.Errorf(errs.Internal, "tenant: %s", err)
		}
	}

	tokenStr, err := a.auth.GenerateToken(usr, orgID)
	if err != nil {
		return errs.Errorf(errs.Internal, "generate token: %s", err)
	}

	return toAppToken(tokenStr)
}
