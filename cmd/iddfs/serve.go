package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/meikuraledutech/iddfs"
	"github.com/meikuraledutech/iddfs/config"
	"github.com/meikuraledutech/iddfs/memory"
	"github.com/meikuraledutech/iddfs/postgres"
	"github.com/meikuraledutech/iddfs/server"
)

func serveCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the trace API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	log := cfg.Logger()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store iddfs.Store
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL is not set, saved runs are kept in memory")
		store = memory.New()
	} else {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return errors.Wrap(err, "connect")
		}
		defer pool.Close()
		store = postgres.New(pool)
	}
	if err := store.CreateSchema(ctx); err != nil {
		return err
	}

	srv := server.New(store, server.Options{
		Logger:        log,
		SearchTimeout: cfg.SearchTimeout,
		MaxNodes:      cfg.MaxNodes,
	})

	errc := make(chan error, 1)
	go func() { errc <- srv.Listen(cfg.Addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
