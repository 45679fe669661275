package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	textractsdk "github.com/aws/aws-sdk-go-v2/service/textract"

	"github.com/aache/aws-sam-cv-processor/internal/adapters/awslambda"
	"github.com/aache/aws-sam-cv-processor/internal/config"
	"github.com/aache/aws-sam-cv-processor/internal/core/usecase"
	"github.com/aache/aws-sam-cv-processor/internal/infrastructure/llm/bedrock"
	"github.com/aache/aws-sam-cv-processor/internal/infrastructure/ocr"
	"github.com/aache/aws-sam-cv-processor/internal/infrastructure/ocr/textract"
	"github.com/aache/aws-sam-cv-processor/internal/infrastructure/repository/dynamo"
)

// App wires the AWS clients and use cases once per cold start; handlers
// share the clients for the lifetime of the process.
type App struct {
	Config config.Config
	Logger *slog.Logger

	IngestHandler *awslambda.IngestHandler
	FitHandler    *awslambda.FitHandler
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	// Bedrock may live in a different region than the data plane.
	bedrockCfg := awsCfg.Copy()
	if cfg.BedrockRegion != "" {
		bedrockCfg.Region = cfg.BedrockRegion
	}

	detector := textract.New(textractsdk.NewFromConfig(awsCfg), cfg.OCRPollInterval)
	extractor := ocr.NewExtractor(s3.NewFromConfig(awsCfg), detector, cfg.SyncSizeLimit)
	repo := dynamo.NewCandidateRepository(dynamodb.NewFromConfig(awsCfg), cfg.CandidatesTable)
	evaluator := bedrock.New(bedrockruntime.NewFromConfig(bedrockCfg), cfg.BedrockModelID, cfg.MaxOutputTokens, cfg.Temperature)

	ingestUC := usecase.NewIngestCandidateUseCase(extractor, repo)
	evaluateUC := usecase.NewEvaluateFitUseCase(evaluator, repo, cfg.RoleDescription)

	return &App{
		Config: cfg,
		Logger: logger,

		IngestHandler: awslambda.NewIngestHandler(ingestUC, logger),
		FitHandler:    awslambda.NewFitHandler(evaluateUC, logger),
	}, nil
}
