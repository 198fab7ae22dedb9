package main

import (
	"fmt"

	"github.com/jcpaschoal/vertical-suite/business/sdk/migrate"
	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/spf13/cobra"
)

func migrateCmd(log *logger.Logger, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply all pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrate.Migrate(cmd.Context(), log, sqldb.URL(cfg.sqldb())); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations complete")
			return nil
		},
	}
}

func migrateStatusCmd(log *logger.Logger, cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-status",
		Short: "Show the applied and pending schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := migrate.CurrentStatus(cmd.Context(), log, sqldb.URL(cfg.sqldb()))
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "current version: %d\n", st.CurrentVersion)
			fmt.Fprintf(out, "migrations:      %d\n", st.Total)
			fmt.Fprintf(out, "pending:         %v\n", st.Pending)
			return nil
		},
	}
}
