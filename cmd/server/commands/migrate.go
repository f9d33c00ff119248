package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"cheese-api/internal/adapters/secondary/postgres"
	"cheese-api/internal/config"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context())
		},
	}
}

func runMigrate(ctx context.Context) error {
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return errors.New("migrate requires STORAGE_DRIVER=postgres")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.MigrateUp(ctx, pool); err != nil {
		return err
	}
	log.Info("schema is up to date")
	return nil
}
