package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"trendwatch/internal/config"
)

// app is the state shared by every subcommand once config is loaded.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: setupLogger("info")}

	root := &cobra.Command{
		Use:          "trendwatch",
		Short:        "Track keyword mentions across feeds and report trends",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				a.logger.Error("failed to load config", "error", err)
				return err
			}
			a.cfg = cfg
			a.logger = setupLogger(cfg.LogLevel).With("command", cmd.Name())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(
		newServeCmd(a),
		newIngestCmd(a),
		newMatchCmd(a),
		newAggregateCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
