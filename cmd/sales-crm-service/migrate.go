package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"

	"sales-crm-service/internal/config"
	"sales-crm-service/internal/repository"
	"sales-crm-service/internal/seed"
	"sales-crm-service/internal/service"
)

var migrateSeed bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long:  `Apply embedded goose migrations to PostgreSQL and optionally load the built-in seed data.`,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "Load built-in seed data after migrating")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if cfg.StorageDriver != config.DriverPostgres {
		return fmt.Errorf("migrate requires STORAGE_DRIVER=%s", config.DriverPostgres)
	}

	ctx := cmd.Context()
	db, err := repository.NewPostgres(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	defer db.Close()

	if err := repository.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("migrations applied")

	if !migrateSeed {
		return nil
	}

	ds, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	data := seedData(ds)
	if err := repository.Seed(ctx, db, data); err != nil {
		return fmt.Errorf("seed database: %w", err)
	}
	logger.Info("seed data loaded",
		slog.Int("reps", len(ds.Reps)),
		slog.Int("leads", len(data.Leads)),
		slog.Int("deals", len(ds.Deals)),
		slog.Int("teams", len(ds.Teams)),
	)
	return nil
}

// seedData готовит встроенный набор к заливке в PostgreSQL. Дубли URL схлопываются
// заранее: при ON CONFLICT DO NOTHING иначе выжил бы первый вставленный, а не самый новый лид.
func seedData(ds seed.Dataset) repository.SeedData {
	leads := service.Deduplicate(ds.Leads).Unique
	sort.Slice(leads, func(i, j int) bool { return leads[i].ID < leads[j].ID })

	return repository.SeedData{
		Reps:  ds.Reps,
		Leads: leads,
		Deals: ds.Deals,
		Teams: ds.Teams,
	}
}
