package ingest

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
)

// JobArgs contains the arguments for a document ingest job submitted to River.
// The document ID is the unique key, so a document can only have one active
// ingest job at a time.
type JobArgs struct {
	// DocumentID identifies the document to process. It is marked as unique so
	// River can enforce one active job per document.
	DocumentID domain.DocumentID `json:"document_id" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the ingest worker.
func (args JobArgs) Kind() string { return "IngestDocumentJob" }

// InsertOpts returns the River options that control how the job is enqueued,
// including retry attempts and the uniqueness constraint preventing duplicate
// active jobs for the same document.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		// one active job per document; completed jobs don't block re-ingestion
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
