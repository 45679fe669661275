// Package awslambda adapts Lambda trigger events onto the inbound ports.
// Records inside one event are processed sequentially and independently:
// a failed record is logged and skipped, its siblings still run.
package awslambda

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aache/aws-sam-cv-processor/internal/core/ports"
)

type IngestHandler struct {
	ingestor ports.CandidateIngestor
	logger   *slog.Logger
}

func NewIngestHandler(ingestor ports.CandidateIngestor, logger *slog.Logger) *IngestHandler {
	return &IngestHandler{ingestor: ingestor, logger: logger}
}

// Handle processes a batch of S3 upload notifications. Object keys arrive
// percent-encoded with '+' for spaces and are decoded before use.
func (h *IngestHandler) Handle(ctx context.Context, event events.S3Event) error {
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			h.logger.Error("skip record with undecodable object key",
				"bucket", bucket, "raw_key", record.S3.Object.Key, "error", err)
			continue
		}

		candidate, err := h.ingestor.Ingest(ctx, bucket, key)
		if err != nil {
			h.logger.Error("ingest upload failed", "bucket", bucket, "key", key, "error", err)
			continue
		}
		h.logger.Info("candidate ingested",
			"bucket", bucket, "key", key, "candidate_id", candidate.ID)
	}
	return nil
}
