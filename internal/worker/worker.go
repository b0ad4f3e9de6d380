// Package worker runs the background job processing side of the service: a
// River client with the document ingest worker registered.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/ingest"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/logger"
)

// Start creates and starts a River client processing ingest jobs on the
// default queue with up to maxWorkers concurrent jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	ingester ingest.Ingester,
	maxWorkers int) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewIngestWorker(ingester))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}
