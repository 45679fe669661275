package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/aache/aws-sam-cv-processor/internal/bootstrap"
	"github.com/aache/aws-sam-cv-processor/internal/config"
	"github.com/aache/aws-sam-cv-processor/internal/observability/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSONLogger("cv-ingest", cfg.LogLevel)

	app, err := bootstrap.New(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	lambda.Start(app.IngestHandler.Handle)
}
