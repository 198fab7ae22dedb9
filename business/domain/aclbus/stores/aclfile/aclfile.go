// Package aclfile reads role policies from a YAML document.
package aclfile

import (
	"context"
	_ "embed"
	"fmt"
	"sort"

	"github.com/jcpaschoal/vertical-suite/business/domain/aclbus"
	"github.com/jcpaschoal/vertical-suite/business/types/actions"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

type document struct {
	Roles []struct {
		Role     string              `yaml:"role"`
		Inherits []string            `yaml:"inherits"`
		Grants   map[string][]string `yaml:"grants"`
	} `yaml:"roles"`
}

// Store serves policies parsed from a YAML document.
type Store struct {
	data []byte
}

// NewStore constructs a store over the built-in role policy.
func NewStore() *Store {
	return &Store{data: defaultPolicy}
}

// NewStoreFromBytes constructs a store over the provided YAML document.
func NewStoreFromBytes(data []byte) *Store {
	return &Store{data: data}
}

// Policies parses the document. Unknown roles, resources and actions are
// rejected.
func (s *Store) Policies(ctx context.Context) ([]aclbus.Policy, error) {
	var doc document
	if err := yaml.Unmarshal(s.data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}

	policies := make([]aclbus.Policy, 0, len(doc.Roles))

	for _, dr := range doc.Roles {
		r, err := role.Parse(dr.Role)
		if err != nil {
			return nil, err
		}

		p := aclbus.Policy{Role: r}

		for _, name := range dr.Inherits {
			parent, err := role.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("role[%s] inherits: %w", r, err)
			}
			p.Inherits = append(p.Inherits, parent)
		}

		// Map order is random; sort so the enforcer is built the same way
		// every time.
		names := make([]string, 0, len(dr.Grants))
		for name := range dr.Grants {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			res, err := resource.Parse(name)
			if err != nil {
				return nil, fmt.Errorf("role[%s]: %w", r, err)
			}

			g := aclbus.Grant{Resource: res}
			for _, a := range dr.Grants[name] {
				act, err := actions.Parse(a)
				if err != nil {
					return nil, fmt.Errorf("role[%s] resource[%s]: %w", r, res, err)
				}
				g.Actions = append(g.Actions, act)
			}

			p.Grants = append(p.Grants, g)
		}

		policies = append(policies, p)
	}

	return policies, nil
}
