package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"trendwatch/internal/api"
	"trendwatch/internal/service"
	"trendwatch/internal/storage/postgres"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), a)
		},
	}
}

func runServe(ctx context.Context, a *app) error {
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

	keywordStore := postgres.NewKeywordStore(db)
	cache := service.NewKeywordCache(keywordStore, kv, a.cfg.Matcher.KeywordCacheTTL, a.logger)
	processor, client, sources := newFeedProcessor(a, db, kv, pub)

	router := api.NewRouter(api.Deps{
		Keywords: service.NewKeywordService(keywordStore, cache, a.logger),
		Mentions: postgres.NewMentionStore(db),
		Sources:  service.NewSourceService(sources, client, processor, a.logger),
		Trends:   service.NewTrendsService(postgres.NewTrendStore(db), keywordStore),
		Health: map[string]api.HealthCheck{
			"postgres": db.PingContext,
			"redis":    kv.Ping,
		},
	}, a.cfg.HTTP.AllowedOrigins, a.logger)

	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("http server failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
