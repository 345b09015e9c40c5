package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"trendwatch/internal/domain"
	"trendwatch/internal/scheduler"
)

func newIngestCmd(a *app) *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Poll enabled feed sources and publish new items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd.Context(), a, once)
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "process every source once and exit")
	return cmd
}

func runIngest(ctx context.Context, a *app, once bool) error {
	db, err := openDB(ctx, a)
	if err != nil {
		return err
	}
	defer db.Close()

	kv, err := openRedis(ctx, a)
	if err != nil {
		return err
	}
	defer kv.Close()

	pub, err := openPublisher(ctx, a)
	if err != nil {
		return err
	}
	defer pub.Close()

	processor, _, _ := newFeedProcessor(a, db, kv, pub)

	job := scheduler.JobFunc(func(ctx context.Context) error {
		res, err := processor.ProcessAllSources(ctx)
		if res != nil {
			logResults(a, res.Results)
		}
		return err
	})

	if once {
		return job.Run(ctx)
	}

	a.logger.Info("starting feed ingestion", "interval", a.cfg.Ingest.Interval)
	sched := scheduler.NewScheduler("ingest", job, a.cfg.Ingest.Interval, a.cfg.Ingest.Interval, a.logger)
	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func logResults(a *app, results []domain.ProcessResult) {
	for _, r := range results {
		if r.Error != "" {
			a.logger.Warn("source failed",
				"source_id", r.SourceID,
				"source_name", r.SourceName,
				"error", r.Error,
			)
			continue
		}
		a.logger.Info("source processed",
			"source_id", r.SourceID,
			"source_name", r.SourceName,
			"events", r.EventsCount,
		)
	}
}
