package main

import (
	"github.com/spf13/cobra"

	"trendwatch/migrations"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx, a)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Up(ctx, db, a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("migrations complete", "applied", len(applied))
			return nil
		},
	}
	cmd.AddCommand(newMigrateDownCmd(a))
	return cmd
}

func newMigrateDownCmd(a *app) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Revert the most recently applied migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := openDB(ctx, a)
			if err != nil {
				return err
			}
			defer db.Close()

			reverted, err := migrations.Down(ctx, db, steps, a.logger)
			if err != nil {
				return err
			}
			a.logger.Info("rollback complete", "reverted", reverted)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")
	return cmd
}
