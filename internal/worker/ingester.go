package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/ingest"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/logger"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/serrors"
)

// IngestWorker is a River worker that processes document ingest jobs by
// delegating to the ingest service.
//
// Error handling: errors that a retry cannot fix are turned into job
// cancellations so River doesn't burn the attempt budget on them. A document
// that disappeared before processing (deleted right after upload) cancels the
// job too. Everything else is returned as-is so River retries with backoff;
// the ingest service itself marks the document FAILED once the attempt budget
// is exhausted.
type IngestWorker struct {
	river.WorkerDefaults[ingest.JobArgs]

	// ingester performs the actual extraction and chunking.
	ingester ingest.Ingester
}

// NewIngestWorker constructs an IngestWorker using the provided ingester.
func NewIngestWorker(ingester ingest.Ingester) *IngestWorker {
	return &IngestWorker{ingester: ingester}
}

// Work executes a single ingest job and maps errors to River actions.
func (w *IngestWorker) Work(ctx context.Context, job *river.Job[ingest.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("documentID", job.Args.DocumentID.String()))

	if err := w.ingester.Ingest(ctx, job.Args.DocumentID); err != nil {
		logger.Error(ctx, "error ingesting document", zap.Error(err))

		if errors.Is(err, serrors.ErrUnprocessable) || errors.Is(err, serrors.ErrNotFound) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return fmt.Errorf("could not ingest document: %w", err)
	}

	logger.Info(ctx, "document ingested successfully")

	return nil
}
