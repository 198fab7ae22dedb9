package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus/stores/userdb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Phone    string `yaml:"phone"`
}

type seedTenant struct {
	Name     string     `yaml:"name"`
	Code     string     `yaml:"code"`
	Vertical string     `yaml:"vertical"`
	Users    []seedUser `yaml:"users"`
}

type seedFile struct {
	Platform []seedUser   `yaml:"platform"`
	Tenants  []seedTenant `yaml:"tenants"`
}

type seedResult struct {
	Tenants int
	Users   int
	Skipped int
}

func seedCmd(log *logger.Logger, cfg *Config) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo tenants and users; existing rows are left alone",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := defaultSeed
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading seed file: %w", err)
				}
				data = b
			}

			sf, err := parseSeed(data)
			if err != nil {
				return err
			}

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			tenantBus := tenantbus.NewCore(log, tenantdb.NewStore(log, db))
			userBus := userbus.NewCore(userdb.NewStore(log, db))

			res, err := applySeed(cmd.Context(), tenantBus, userBus, sf)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seed complete: %d tenants, %d users created, %d skipped\n", res.Tenants, res.Users, res.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "seed file, the built in demo data when empty")

	return cmd
}

func parseSeed(data []byte) (seedFile, error) {
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return seedFile{}, fmt.Errorf("parsing seed: %w", err)
	}

	for _, t := range sf.Tenants {
		if _, err := vertical.Parse(t.Vertical); err != nil {
			return seedFile{}, fmt.Errorf("tenant %q: %w", t.Name, err)
		}
	}

	return sf, nil
}

func applySeed(ctx context.Context, tenantBus *tenantbus.Core, userBus *userbus.Core, sf seedFile) (seedResult, error) {
	var res seedResult

	platform := tenancy.Bypass("seed platform users")
	for _, su := range sf.Platform {
		if err := seedOneUser(ctx, userBus, platform, su, &res); err != nil {
			return res, err
		}
	}

	for _, st := range sf.Tenants {
		t, created, err := seedOneTenant(ctx, tenantBus, st)
		if err != nil {
			return res, err
		}

		if created {
			res.Tenants++
		}

		scope, err := tenancy.New(t.ID, uuid.Nil)
		if err != nil {
			return res, err
		}

		for _, su := range st.Users {
			if err := seedOneUser(ctx, userBus, scope, su, &res); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

func seedOneTenant(ctx context.Context, tenantBus *tenantbus.Core, st seedTenant) (tenantbus.Tenant, bool, error) {
	tc, err := code.FromName(st.Name)
	if st.Code != "" {
		tc, err = code.Parse(st.Code)
	}
	if err != nil {
		return tenantbus.Tenant{}, false, fmt.Errorf("tenant %q code: %w", st.Name, err)
	}

	t, err := tenantBus.QueryByCode(ctx, tc)
	switch {
	case err == nil:
		return t, false, nil

	case !errors.Is(err, tenantbus.ErrNotFound):
		return tenantbus.Tenant{}, false, fmt.Errorf("tenant %q: %w", st.Name, err)
	}

	nt := tenantbus.NewTenant{
		Name:     st.Name,
		Code:     &tc,
		Vertical: vertical.MustParse(st.Vertical),
	}

	t, err = tenantBus.Create(ctx, nt)
	if err != nil {
		return tenantbus.Tenant{}, false, fmt.Errorf("tenant %q: %w", st.Name, err)
	}

	return t, true, nil
}

func seedOneUser(ctx context.Context, userBus *userbus.Core, scope tenancy.Scope, su seedUser, res *seedResult) error {
	nu, err := parseNewUser(su.Name, su.Email, su.Password, su.Role, su.Phone)
	if err != nil {
		return fmt.Errorf("user %q: %w", su.Email, err)
	}

	if _, err := userBus.Create(ctx, scope, nu); err != nil {
		if errors.Is(err, userbus.ErrUniqueEmail) {
			res.Skipped++
			return nil
		}
		return fmt.Errorf("user %q: %w", su.Email, err)
	}

	res.Users++

	return nil
}
