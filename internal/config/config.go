package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	LogLevel string

	CandidatesTable string

	BedrockRegion   string
	BedrockModelID  string
	MaxOutputTokens int
	Temperature     float64

	RoleDescription string

	OCRPollInterval time.Duration
	SyncSizeLimit   int64
}

func Load() Config {
	return Config{
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		CandidatesTable: mustEnv("CANDIDATES_TABLE", "candidates"),

		BedrockRegion:   mustEnv("BEDROCK_REGION", "us-east-1"),
		BedrockModelID:  mustEnv("BEDROCK_MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"),
		MaxOutputTokens: mustEnvInt("BEDROCK_MAX_OUTPUT_TOKENS", 512),
		Temperature:     mustEnvFloat("BEDROCK_TEMPERATURE", 0.2),

		RoleDescription: mustEnv("ROLE_DESCRIPTION", ""),

		OCRPollInterval: time.Duration(mustEnvInt("OCR_POLL_INTERVAL_SECONDS", 2)) * time.Second,
		SyncSizeLimit:   int64(mustEnvInt("OCR_SYNC_SIZE_LIMIT_BYTES", 5*1024*1024)),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
