package usecase

import (
	"context"
	"fmt"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
	"github.com/aache/aws-sam-cv-processor/internal/core/ports"
)

type EvaluateFitUseCase struct {
	evaluator       ports.FitEvaluator
	repo            ports.CandidateRepository
	roleDescription string
}

func NewEvaluateFitUseCase(
	evaluator ports.FitEvaluator,
	repo ports.CandidateRepository,
	roleDescription string,
) *EvaluateFitUseCase {
	return &EvaluateFitUseCase{
		evaluator:       evaluator,
		repo:            repo,
		roleDescription: roleDescription,
	}
}

// Assess scores the candidate's raw text against the configured role
// description and attaches the result to the stored row. A store failure
// propagates; the evaluator itself degrades instead of failing on
// malformed model output.
func (uc *EvaluateFitUseCase) Assess(ctx context.Context, candidateID, rawText string) (domain.FitAssessment, error) {
	assessment, err := uc.evaluator.Evaluate(ctx, rawText, uc.roleDescription)
	if err != nil {
		return domain.FitAssessment{}, fmt.Errorf("evaluate fit: %w", err)
	}

	if err := uc.repo.SaveAssessment(ctx, candidateID, assessment); err != nil {
		return domain.FitAssessment{}, fmt.Errorf("save assessment: %w", err)
	}

	return assessment, nil
}
