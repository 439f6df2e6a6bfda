package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neutech/estates/internal/cli"
	"github.com/neutech/estates/internal/refdata"
	"github.com/neutech/estates/internal/storage"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled seed data",
		Long: `Load the bundled listings and publisher applications into the configured
database. Useful with a file-backed database path; listings that already
exist are skipped.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			dbPath := viper.GetString("database.path")
			if dbPath == "" {
				dbPath = storage.InMemoryDSN
			}
			store, err := storage.NewSQLiteStorage(expandPath(dbPath))
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(ctx); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			listings := refdata.SeedListings()
			bar := progressbar.Default(int64(len(listings)+1), "seeding")

			added := 0
			for _, p := range listings {
				existing, gerr := store.GetListing(ctx, p.ID)
				if gerr != nil {
					return fmt.Errorf("failed to check listing %s: %w", p.ID, gerr)
				}
				if existing == nil {
					if aerr := store.AddListing(ctx, p); aerr != nil {
						return fmt.Errorf("failed to seed listing %s: %w", p.ID, aerr)
					}
					added++
				}
				_ = bar.Add(1)
			}

			if err := store.SaveUsers(ctx, refdata.SeedUsers()); err != nil {
				return fmt.Errorf("failed to seed publisher applications: %w", err)
			}
			_ = bar.Add(1)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Seeded %d new listings and %d publisher applications", added, len(refdata.SeedUsers()))))
			return nil
		},
	}
}
