package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jcpaschoal/vertical-suite/app/sdk/auth"
	"github.com/jcpaschoal/vertical-suite/app/sdk/errs"
	"github.com/jcpaschoal/vertical-suite/business/sdk/web"
	"github.com/jcpaschoal/vertical-suite/business/types/actions"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
)

// Authorize checks the role policy for the resource. The action comes from
// the request method.
func Authorize(ath *auth.Auth, res resource.Resource) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			claims := GetClaims(ctx)
			if claims.Subject == "" {
				return errs.New(errs.Unauthenticated, errNoPrincipal)
			}

			act, err := actions.FromHTTPMethod(r.Method)
			if err != nil {
				return errs.New(errs.FailedPrecondition, err)
			}

			actx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			if err := ath.Authorize(actx, claims, res, act); err != nil {
				return errs.New(errs.PermissionDenied, err)
			}

			return next(ctx, r)
		}

		return h
	}

	return m
}
