package ports

import (
	"context"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

// CandidateIngestor is the inbound contract for one uploaded document.
type CandidateIngestor interface {
	Ingest(ctx context.Context, bucket, key string) (*domain.Candidate, error)
}

// FitAssessor is the inbound contract for one newly stored candidate row.
type FitAssessor interface {
	Assess(ctx context.Context, candidateID, rawText string) (domain.FitAssessment, error)
}
