// This program performs administrative tasks for the vertical suite service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jcpaschoal/vertical-suite/business/sdk/sqldb"
	"github.com/jcpaschoal/vertical-suite/foundation/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

// Config holds the settings shared by every command.
type Config struct {
	DB struct {
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:"postgres"`
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Name         string `envconfig:"DB_NAME" default:"vertical"`
		Schema       string `envconfig:"DB_SCHEMA"`
		MaxIdleConns int    `envconfig:"DB_MAX_IDLE_CONNS" default:"0"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"0"`
		DisableTLS   bool   `envconfig:"DB_DISABLE_TLS" default:"true"`
	}
	Auth struct {
		KeysFolder string `envconfig:"AUTH_KEYS_FOLDER" default:"zarf/keys/"`
	}
}

func (cfg Config) sqldb() sqldb.Config {
	return sqldb.Config{
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Host:         cfg.DB.Host,
		Name:         cfg.DB.Name,
		Schema:       cfg.DB.Schema,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		DisableTLS:   cfg.DB.DisableTLS,
	}
}

func main() {
	log := logger.New(os.Stdout, logger.LevelInfo, "ADMIN", nil)

	if err := newRootCmd(log).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	var cfg Config

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Administrative tasks for the vertical suite",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := envconfig.Process("", &cfg); err != nil {
				return fmt.Errorf("processing config: %w", err)
			}
			return nil
		},
	}

	root.AddCommand(
		migrateCmd(log, &cfg),
		migrateStatusCmd(log, &cfg),
		seedCmd(log, &cfg),
		createTenantCmd(log, &cfg),
		createUserCmd(log, &cfg),
		genKeyCmd(&cfg),
	)

	return root
}
