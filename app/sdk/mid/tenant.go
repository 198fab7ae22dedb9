package mid

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
)

// Headers a super admin uses to act for a tenant.
const (
	HeaderTenantID   = "X-Tenant-ID"
	HeaderTenantCode = "X-Tenant-Code"
)

var (
	errNoTenant     = errors.New("principal has no tenant")
	errOtherTenant  = errors.New("tenant header names another tenant")
	errTenantDenied = errors.New("tenant is unknown or disabled")
	errNoPrincipal  = errors.New("no authenticated principal")
)

// Tenant resolves the acting tenant for the request and stores its scope
// in the context. It must run after Authenticate.
func Tenant(tenantBus *tenantbus.Core) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			claims := GetClaims(ctx)
			if claims.Subject == "" {
				return errs.New(errs.Unauthenticated, errNoPrincipal)
			}

			rle, err := role.Parse(claims.Role)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			var t tenantbus.Tenant

			switch rle.IsPlatform() {
			case true:
				t, err = platformTenant(ctx, tenantBus, claims, r)
			default:
				t, err = principalTenant(ctx, tenantBus, claims, r)
			}

			if err != nil {
				switch {
				case errors.Is(err, errNoTenant):
					return errs.New(errs.Unauthenticated, err)
				case errs.IsError(err):
					return errs.GetError(err)
				case errors.Is(err, tenantbus.ErrNotFound), errors.Is(err, tenantbus.ErrDisabled):
					return errs.New(errs.PermissionDenied, errTenantDenied)
				case errors.Is(err, errOtherTenant):
					return errs.New(errs.PermissionDenied, err)
				}
				return errs.Errorf(errs.Internal, "resolve tenant: %s", err)
			}

			orgID := uuid.Nil
			if claims.OrgID != "" {
				if orgID, err = uuid.Parse(claims.OrgID); err != nil {
					return errs.New(errs.Unauthenticated, fmt.Errorf("invalid org id: %w", err))
				}
			}

			scope, err := tenancy.New(t.ID, orgID)
			if err != nil {
				return errs.New(errs.Unauthenticated, err)
			}

			ctx = setTenant(ctx, t)
			ctx = setScope(ctx, scope)

			return next(ctx, r)
		}

		return h
	}

	return m
}

// principalTenant returns the tenant named in the token. A header naming
// any other tenant is rejected.
func principalTenant(ctx context.Context, tenantBus *tenantbus.Core, claims auth.Claims, r *http.Request) (tenantbus.Tenant, error) {
	if claims.TenantID == "" {
		return tenantbus.Tenant{}, errNoTenant
	}

	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return tenantbus.Tenant{}, fmt.Errorf("%w: %w", errNoTenant, err)
	}

	if hdr := r.Header.Get(HeaderTenantID); hdr != "" && hdr != tenantID.String() {
		return tenantbus.Tenant{}, errOtherTenant
	}

	t, err := tenantBus.Active(ctx, tenantID)
	if err != nil {
		return tenantbus.Tenant{}, err
	}

	if hdr := r.Header.Get(HeaderTenantCode); hdr != "" && hdr != t.Code.String() {
		return tenantbus.Tenant{}, errOtherTenant
	}

	return t, nil
}

// platformTenant returns the tenant a super admin names by header, falling
// back to the token.
func platformTenant(ctx context.Context, tenantBus *tenantbus.Core, claims auth.Claims, r *http.Request) (tenantbus.Tenant, error) {
	if hdr := r.Header.Get(HeaderTenantID); hdr != "" {
		tenantID, err := uuid.Parse(hdr)
		if err != nil {
			return tenantbus.Tenant{}, errs.NewFieldErrors(HeaderTenantID, err).ToError()
		}
		return tenantBus.Active(ctx, tenantID)
	}

	if hdr := r.Header.Get(HeaderTenantCode); hdr != "" {
		tc, err := code.Parse(hdr)
		if err != nil {
			return tenantbus.Tenant{}, errs.NewFieldErrors(HeaderTenantCode, err).ToError()
		}

		t, err := tenantBus.QueryByCode(ctx, tc)
		if err != nil {
			return tenantbus.Tenant{}, err
		}
		return tenantBus.Active(ctx, t.ID)
	}

	return principalTenant(ctx, tenantBus, claims, r)
}
