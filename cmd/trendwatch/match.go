package main

import (
	"context"

	"github.com/spf13/cobra"

	"trendwatch/internal/service"
	"trendwatch/internal/storage/postgres"
)

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "Consume ingestion events and record keyword mentions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd.Context(), a)
		},
	}
}

func runMatch(ctx context.Context, a *app) error {
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

	cons, err := openConsumer(ctx, a)
	if err != nil {
		return err
	}
	defer cons.Close()

	cache := service.NewKeywordCache(postgres.NewKeywordStore(db), kv, a.cfg.Matcher.KeywordCacheTTL, a.logger)
	matcher := service.NewMatcherConsumer(cache, postgres.NewMentionStore(db), a.logger)

	return cons.Run(ctx, matcher)
}
