package aclbus

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/jcpaschoal/vertical-suite/business/types/actions"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
)

const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type enforcer struct {
	e *casbin.Enforcer
}

// newEnforcer builds an in-memory enforcer holding the policies. Role
// inheritance becomes casbin grouping rules.
func newEnforcer(policies []Policy) (*enforcer, error) {
	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	for _, p := range policies {
		sub := subject(p.Role)

		for _, parent := range p.Inherits {
			if _, err := e.AddGroupingPolicy(sub, subject(parent)); err != nil {
				return nil, fmt.Errorf("grouping %s->%s: %w", p.Role, parent, err)
			}
		}

		for _, g := range p.Grants {
			for _, act := range g.Actions {
				if _, err := e.AddPolicy(sub, g.Resource.String(), act.String()); err != nil {
					return nil, fmt.Errorf("policy %s %s %s: %w", p.Role, g.Resource, act, err)
				}
			}
		}
	}

	return &enforcer{e: e}, nil
}

func (enf *enforcer) allowed(r role.Role, res resource.Resource, act actions.Action) (bool, error) {
	ok, err := enf.e.Enforce(subject(r), res.String(), act.String())
	if err != nil {
		return false, fmt.Errorf("enforce: %w", err)
	}
	return ok, nil
}

func subject(r role.Role) string {
	return "ROLE:" + r.String()
}
