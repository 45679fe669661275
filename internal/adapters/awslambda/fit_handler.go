package awslambda

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/aache/aws-sam-cv-processor/internal/core/ports"
)

const assessmentAttribute = "fit_assessment"

type FitHandler struct {
	assessor ports.FitAssessor
	logger   *slog.Logger
}

func NewFitHandler(assessor ports.FitAssessor, logger *slog.Logger) *FitHandler {
	return &FitHandler{assessor: assessor, logger: logger}
}

// Handle processes a batch of table stream records. Only inserts are
// evaluated; a row whose snapshot already carries an assessment is
// skipped, which keeps re-delivered inserts idempotent without a lock.
func (h *FitHandler) Handle(ctx context.Context, event events.DynamoDBEvent) error {
	for _, record := range event.Records {
		if record.EventName != string(events.DynamoDBOperationTypeInsert) {
			continue
		}
		image := record.Change.NewImage

		candidateID := stringAttr(image, "id")
		rawText := stringAttr(image, "raw_text")
		if candidateID == "" || rawText == "" {
			h.logger.Warn("skip insert without id or raw text", "candidate_id", candidateID)
			continue
		}
		if _, present := image[assessmentAttribute]; present {
			h.logger.Info("assessment already present, skipping", "candidate_id", candidateID)
			continue
		}

		if _, err := h.assessor.Assess(ctx, candidateID, rawText); err != nil {
			h.logger.Error("fit assessment failed", "candidate_id", candidateID, "error", err)
			continue
		}
		h.logger.Info("fit assessment stored", "candidate_id", candidateID)
	}
	return nil
}

func stringAttr(image map[string]events.DynamoDBAttributeValue, name string) string {
	av, ok := image[name]
	if !ok || av.DataType() != events.DataTypeString {
		return ""
	}
	return av.String()
}
