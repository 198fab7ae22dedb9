// Package aclbus decides which role may perform which action on which
// resource.
package aclbus

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jcpaschoal/vertical-suite/business/types/actions"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jcpaschoal/vertical-suite/foundation/otel"
	"go.opentelemetry.io/otel/attribute"
)

// ErrForbidden is returned when the role policy denies an action.
var ErrForbidden = errors.New("attempted action is not allowed")

// Storer loads the role policies.
type Storer interface {
	Policies(ctx context.Context) ([]Policy, error)
}

// Core manages the set of APIs for access control.
type Core struct {
	log    *logger.Logger
	storer Storer

	mu  sync.RWMutex
	enf *enforcer
}

// NewCore constructs the api and loads the policies once.
func NewCore(ctx context.Context, log *logger.Logger, storer Storer) (*Core, error) {
	c := Core{
		log:    log,
		storer: storer,
	}

	if err := c.Reload(ctx); err != nil {
		return nil, err
	}

	return &c, nil
}

// Reload replaces the enforcer with one built from the current policies.
func (c *Core) Reload(ctx context.Context) error {
	ctx, span := otel.AddSpan(ctx, "business.aclbus.reload")
	defer span.End()

	policies, err := c.storer.Policies(ctx)
	if err != nil {
		return fmt.Errorf("policies: %w", err)
	}

	enf, err := newEnforcer(policies)
	if err != nil {
		return fmt.Errorf("enforcer: %w", err)
	}

	c.mu.Lock()
	c.enf = enf
	c.mu.Unlock()

	c.log.Info(ctx, "aclbus: policies loaded", "roles", len(policies))

	return nil
}

// Enforce returns ErrForbidden unless the role may perform the action on
// the resource.
func (c *Core) Enforce(ctx context.Context, r role.Role, res resource.Resource, act actions.Action) error {
	_, span := otel.AddSpan(ctx, "business.aclbus.enforce",
		attribute.String("role", r.String()),
		attribute.String("resource", res.String()),
		attribute.String("action", act.String()),
	)
	defer span.End()

	c.mu.RLock()
	enf := c.enf
	c.mu.RUnlock()

	ok, err := enf.allowed(r, res, act)
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("role[%s] resource[%s] action[%s]: %w", r, res, act, ErrForbidden)
	}

	return nil
}
