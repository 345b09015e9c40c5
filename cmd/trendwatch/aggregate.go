package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"trendwatch/internal/scheduler"
	"trendwatch/internal/service"
	"trendwatch/internal/storage/postgres"
)

func newAggregateCmd(a *app) *cobra.Command {
	var once bool
	var lookback int
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Roll mentions up into daily aggregates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if lookback > 0 {
				a.cfg.Aggregation.LookbackDays = lookback
			}
			return runAggregate(cmd.Context(), a, once)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "run a single aggregation pass and exit")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "days to look back (overrides config)")
	return cmd
}

func runAggregate(ctx context.Context, a *app, once bool) error {
	db, err := openDB(ctx, a)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := service.NewAggregationService(
		postgres.NewAggregateStore(db),
		postgres.NewTransactionManager(db),
		a.cfg.Aggregation.LookbackDays,
		a.logger,
	)

	if once {
		_, err := svc.RunAggregation(ctx, a.cfg.Aggregation.LookbackDays)
		return err
	}

	sched := scheduler.NewScheduler("aggregate", svc, a.cfg.Aggregation.Interval, a.cfg.Aggregation.Interval, a.logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
