package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/orgball2608/insta-repost-curator/internal/migrations"
	"github.com/orgball2608/insta-repost-curator/pkg/config"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the curator database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
				results, err := p.Up(ctx)
				printResults(results)
				if err != nil {
					return fmt.Errorf("failed to run migrations: %w", err)
				}
				fmt.Println("Migrations applied successfully")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
				result, err := p.Down(ctx)
				if result != nil {
					printResults([]*goose.MigrationResult{result})
				}
				if err != nil {
					return fmt.Errorf("failed to rollback migration: %w", err)
				}
				fmt.Println("Migration rollback successful")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show applied and pending migrations",
			RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("failed to get migration status: %w", err)
				}
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					fmt.Printf("%-16d %-45s %s\n", s.Source.Version, s.Source.Path, applied)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Roll back all migrations",
			RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
				results, err := p.DownTo(ctx, 0)
				printResults(results)
				if err != nil {
					return fmt.Errorf("failed to reset migrations: %w", err)
				}
				fmt.Println("All migrations have been rolled back")
				return nil
			}),
		},
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create a new Go migration",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Printf("Creating migration in: %s\n", migrations.Dir)
				if err := goose.Create(nil, migrations.Dir, args[0], "go"); err != nil {
					return fmt.Errorf("failed to create migration: %w", err)
				}
				return nil
			},
		},
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func withProvider(fn func(ctx context.Context, p *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.New()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		db, err := migrations.Open(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		provider, err := migrations.NewProvider(db)
		if err != nil {
			return fmt.Errorf("failed to create migration provider: %w", err)
		}

		return fn(cmd.Context(), provider)
	}
}

func printResults(results []*goose.MigrationResult) {
	for _, r := range results {
		fmt.Printf("%-4s %-16d %s\n", r.Direction, r.Source.Version, r.Duration.Round(time.Millisecond))
	}
}
