package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
	"github.com/aache/aws-sam-cv-processor/internal/core/fields"
	"github.com/aache/aws-sam-cv-processor/internal/core/ports"
)

type IngestCandidateUseCase struct {
	extractor ports.TextExtractor
	repo      ports.CandidateRepository
}

func NewIngestCandidateUseCase(
	extractor ports.TextExtractor,
	repo ports.CandidateRepository,
) *IngestCandidateUseCase {
	return &IngestCandidateUseCase{
		extractor: extractor,
		repo:      repo,
	}
}

// Ingest runs the upload pipeline for a single stored document: OCR the
// object, derive candidate fields from the text and persist a new row.
// Nothing is persisted when any step fails.
func (uc *IngestCandidateUseCase) Ingest(ctx context.Context, bucket, key string) (*domain.Candidate, error) {
	text, err := uc.extractor.Extract(ctx, bucket, key)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	parsed := fields.Parse(text)

	candidate := &domain.Candidate{
		ID:        uuid.NewString(),
		Bucket:    bucket,
		Key:       key,
		RawText:   text,
		Name:      parsed.Name,
		Email:     parsed.Email,
		Phone:     parsed.Phone,
		Skills:    parsed.Skills,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("create candidate row: %w", err)
	}

	return candidate, nil
}
