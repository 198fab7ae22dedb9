package main

import (
	"fmt"
	"net/mail"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/tenantbus/stores/tenantdb"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus"
	"github.com/jcpaschoal/vertical-suite/business/domain/userbus/stores/userdb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/business/sdk/tenancy"
	"github.com/jcpaschoal/vertical-suite/business/types/code"
	"github.com/jcpaschoal/vertical-suite/business/types/name"
	"github.com/jcpaschoal/vertical-suite/business/types/password"
	"github.com/jcpaschoal/vertical-suite/business/types/phone"
	"github.com/jcpaschoal/vertical-suite/business/types/role"
	"github.com/jcpaschoal/vertical-suite/business/types/vertical"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func openDB(cfg *Config) (*sqlx.DB, error) {
	db, err := sqldb.Open(cfg.sqldb())
	if err != nil {
		return nil, fmt.Errorf("connecting to db: %w", err)
	}
	return db, nil
}

func createTenantCmd(log *logger.Logger, cfg *Config) *cobra.Command {
	var tenantName, tenantCode, vert string

	cmd := &cobra.Command{
		Use:   "create-tenant",
		Short: "Onboard a new tenant",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			v, err := vertical.Parse(vert)
			if err != nil {
				return err
			}

			nt := tenantbus.NewTenant{
				Name:     tenantName,
				Vertical: v,
			}

			if tenantCode != "" {
				c, err := code.Parse(tenantCode)
				if err != nil {
					return err
				}
				nt.Code = &c
			}

			tenantBus := tenantbus.NewCore(log, tenantdb.NewStore(log, db))

			t, err := tenantBus.Create(cmd.Context(), nt)
			if err != nil {
				return fmt.Errorf("create tenant: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "tenant created\nid:   %s\ncode: %s\n", t.ID, t.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantName, "name", "", "display name")
	cmd.Flags().StringVar(&tenantCode, "code", "", "url safe code, derived from the name when empty")
	cmd.Flags().StringVar(&vert, "vertical", "", "HOTEL, BREWERY, RESTAURANT, SALON or RETAIL")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("vertical")

	return cmd
}

func createUserCmd(log *logger.Logger, cfg *Config) *cobra.Command {
	var tenantID, email, pass, fullName, rle, ph string

	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user inside a tenant, or a platform super admin",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			nu, err := parseNewUser(fullName, email, pass, rle, ph)
			if err != nil {
				return err
			}

			scope := tenancy.Bypass("admin create platform user")
			if tenantID != "" {
				id, err := uuid.Parse(tenantID)
				if err != nil {
					return fmt.Errorf("tenant id: %w", err)
				}

				if scope, err = tenancy.New(id, uuid.Nil); err != nil {
					return err
				}
			}

			userBus := userbus.NewCore(userdb.NewStore(log, db))

			usr, err := userBus.Create(cmd.Context(), scope, nu)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user created\nid:    %s\nemail: %s\nrole:  %s\n", usr.ID, usr.Email.Address, usr.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&tenantID, "tenant", "", "tenant id, empty for a super admin")
	cmd.Flags().StringVar(&email, "email", "", "login email")
	cmd.Flags().StringVar(&pass, "password", "", "login password")
	cmd.Flags().StringVar(&fullName, "name", "", "full name")
	cmd.Flags().StringVar(&rle, "role", role.Staff.String(), "SUPERADMIN, ADMIN or STAFF")
	cmd.Flags().StringVar(&ph, "phone", "", "optional phone number")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")
	cmd.MarkFlagRequired("name")

	return cmd
}

func parseNewUser(fullName, email, pass, rle, ph string) (userbus.NewUser, error) {
	n, err := name.Parse(fullName)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("name: %w", err)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("email: %w", err)
	}

	r, err := role.Parse(rle)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("role: %w", err)
	}

	p, err := password.Parse(pass)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("password: %w", err)
	}

	pn, err := phone.ParseNull(ph)
	if err != nil {
		return userbus.NewUser{}, fmt.Errorf("phone: %w", err)
	}

	nu := userbus.NewUser{
		Name:     n,
		Email:    *addr,
		Phone:    pn,
		Role:     r,
		Password: p,
	}

	return nu, nil
}
