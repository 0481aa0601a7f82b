package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/career-compass-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/career-compass-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/career-compass-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/career-compass-bot/internal/logger"
	"github.com/aliskhannn/career-compass-bot/internal/service"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API without the Telegram bot",
		Long: `Serve the content and quiz API. Feedback submission is enabled when
DATABASE_URL is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, content, err := opts.loadContent()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			lg, err := logger.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = lg.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var feedback httpapi.FeedbackService
			if dsn, err := cfg.DB.DSN(); err == nil {
				pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
					MaxConns:        int32(cfg.DB.MaxConnections),
					MaxConnLifetime: cfg.DB.MaxConnLifetime,
				})
				if err != nil {
					return err
				}
				defer pool.Close()

				if err := postgres.Migrate(ctx, pool); err != nil {
					return err
				}
				feedback = service.NewFeedbackService(pgrepo.NewFeedbackRepository(pool), nil, nil, lg)
			} else {
				lg.Warn("DATABASE_URL is not set, feedback is disabled")
			}

			api := httpapi.NewServer(
				cfg.HTTP.Addr,
				cfg.HTTP.ShutdownTimeout,
				lg,
				service.NewCatalogService(content),
				service.NewQuizService(content, nil, nil, lg),
				feedback,
			)

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return api.Run(ctx)
			})
			g.Go(func() error {
				<-ctx.Done()
				lg.Info("shutdown signal received", zap.Error(context.Cause(ctx)))
				return nil
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
