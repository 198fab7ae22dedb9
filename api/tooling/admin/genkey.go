package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jcpaschoal/vertical-suite/foundation/keystore"
	"github.com/spf13/cobra"
)

func genKeyCmd(cfg *Config) *cobra.Command {
	var kid string

	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Write a new RSA signing key named by its key id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kid == "" {
				kid = uuid.NewString()
			}

			if err := os.MkdirAll(cfg.Auth.KeysFolder, 0o700); err != nil {
				return fmt.Errorf("creating keys folder: %w", err)
			}

			path := filepath.Join(cfg.Auth.KeysFolder, kid+".pem")

			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
			if err != nil {
				return fmt.Errorf("creating key file: %w", err)
			}
			defer f.Close()

			if err := keystore.GenerateKey(f); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "key written to %s\nset AUTH_ACTIVE_KID=%s to sign with it\n", path, kid)
			return nil
		},
	}

	cmd.Flags().StringVar(&kid, "kid", "", "key id, a random uuid when empty")

	return cmd
}
