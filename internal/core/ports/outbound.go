package ports

import (
	"context"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

// TextExtractor turns an uploaded document into plain text lines.
type TextExtractor interface {
	Extract(ctx context.Context, bucket, key string) (string, error)
}

// CandidateRepository persists candidate rows and fit assessments.
type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	SaveAssessment(ctx context.Context, candidateID string, assessment domain.FitAssessment) error
}

// FitEvaluator scores raw candidate text against a role description.
type FitEvaluator interface {
	Evaluate(ctx context.Context, rawText, roleDescription string) (domain.FitAssessment, error)
}
