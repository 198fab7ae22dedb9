package aclbus

import (
	"github.com/jcpaschoal/vertical-suite/business/types/actions"
	"github.com/jcpaschoal/vertical-suite/business/types/resource"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
)

// Grant allows a role to perform a set of actions on a resource.
type Grant struct {
	Resource resource.Resource
	Actions  []actions.Action
}

// Policy is the set of grants held by one role. A role also holds every
// grant of the roles it inherits.
type Policy struct {
	Role     role.Role
	Inherits []role.Role
	Grants   []Grant
}
