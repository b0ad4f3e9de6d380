package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"riverqueue.com/riverui"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/api"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/api/handler/v1handler"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/chat"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/config"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/ingest"
	"github.com/devHamzaIrshad/study-buddy-agent/internal/worker"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/llm/groq"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/logger"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background ingest workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			ingester := ingest.New(strg, ingest.NewOptions(cfg))

			llmClient := groq.New(
				&http.Client{Timeout: cfg.Groq.Timeout},
				cfg.Groq.BaseURL,
				cfg.Groq.APIKey,
				cfg.Groq.Model,
			)
			chatter := chat.New(strg, llmClient, chat.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, ingester, cfg.Ingest.MaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			jobsUI, err := riverui.NewServer(&riverui.ServerOpts{
				Client: riverClient,
				DB:     strg.Pool,
				Logger: slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
				Prefix: "/riverui",
			})
			if err != nil {
				logger.Fatal(ctx, "could not create river UI server", zap.Error(err))
			}
			if err := jobsUI.Start(ctx); err != nil {
				logger.Fatal(ctx, "could not start river UI server", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Ingester:       ingester,
					Chatter:        chatter,
					MaxUploadBytes: int64(cfg.Ingest.MaxFileSizeMB) << 20,
				},
				JobsUI: jobsUI,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
