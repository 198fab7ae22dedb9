package userbus

import (
	"context"
	"fmt"
	"net/mail"
	"sync/atomic"

	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/password"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
)

var seq atomic.Int64

// TestNewUsers is a helper method for testing.
func TestNewUsers(n int, rle role.Role) []NewUser {
	newUsrs := make([]NewUser, n)

	for i := range n {
		idx := seq.Add(1)

		nu := NewUser{
			Name:     name.MustParse(fmt.Sprintf("Name%d", idx)),
			Email:    mail.Address{Address: fmt.Sprintf("email%d@example.com", idx)},
			Role:     rle,
			Password: password.MustParse(fmt.Sprintf("password%d", idx)),
		}

		newUsrs[i] = nu
	}

	return newUsrs
}

// TestSeedUsers is a helper method for testing.
func TestSeedUsers(ctx context.Context, scope tenancy.Scope, n int, rle role.Role, api *Core) ([]User, error) {
	newUsrs := TestNewUsers(n, rle)

	usrs := make([]User, len(newUsrs))
	for i, nu := range newUsrs {
		usr, err := api.Create(ctx, scope, nu)
		if err != nil {
			return nil, fmt.Errorf("seeding user: idx: %d : %w", i, err)
		}

		usrs[i] = usr
	}

	return usrs, nil
}
