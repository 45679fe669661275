// Package bedrock implements the fit evaluator port on the Amazon
// Bedrock Converse API.
package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

// API is the subset of the Bedrock runtime client the evaluator needs.
type API interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

type Client struct {
	api         API
	modelID     string
	maxTokens   int32
	temperature float32
}

func New(api API, modelID string, maxTokens int, temperature float64) *Client {
	if maxTokens <= 0 {
		maxTokens = 512
	}
	return &Client{
		api:         api,
		modelID:     modelID,
		maxTokens:   int32(maxTokens),
		temperature: float32(temperature),
	}
}

// Evaluate asks the model for a one-line JSON fit assessment. A transport
// or model invocation failure is an error; a malformed model response is
// not, and degrades into an assessment carrying the raw text.
func (c *Client) Evaluate(ctx context.Context, rawText, roleDescription string) (domain.FitAssessment, error) {
	raw, err := c.generate(ctx, buildFitPrompt(rawText, roleDescription))
	if err != nil {
		return domain.FitAssessment{}, err
	}
	return parseAssessment(raw), nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	out, err := c.api.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.modelID),
		Messages: []types.Message{{
			Role:    types.ConversationRoleUser,
			Content: []types.ContentBlock{&types.ContentBlockMemberText{Value: prompt}},
		}},
		InferenceConfig: &types.InferenceConfiguration{
			MaxTokens:   aws.Int32(c.maxTokens),
			Temperature: aws.Float32(c.temperature),
		},
	})
	if err != nil {
		return "", fmt.Errorf("converse with %s: %w", c.modelID, err)
	}

	message, ok := out.Output.(*types.ConverseOutputMemberMessage)
	if !ok {
		return "", fmt.Errorf("converse with %s: unexpected output type %T", c.modelID, out.Output)
	}

	var builder strings.Builder
	for _, block := range message.Value.Content {
		text, ok := block.(*types.ContentBlockMemberText)
		if !ok {
			continue
		}
		builder.WriteString(text.Value)
	}
	return strings.TrimSpace(builder.String()), nil
}

// parseAssessment attempts a strict parse of the model output, stripping
// code fences first. A response that is not the requested JSON yields a
// degraded assessment instead of an error: nil score, the raw text as
// summary, empty lists, level Unknown.
func parseAssessment(raw string) domain.FitAssessment {
	var assessment domain.FitAssessment
	if err := json.Unmarshal([]byte(stripFences(raw)), &assessment); err != nil {
		return degradedAssessment(raw)
	}
	if assessment.Strengths == nil {
		assessment.Strengths = []string{}
	}
	if assessment.Concerns == nil {
		assessment.Concerns = []string{}
	}
	if assessment.MatchedSkills == nil {
		assessment.MatchedSkills = []string{}
	}
	if assessment.MissingSkills == nil {
		assessment.MissingSkills = []string{}
	}
	if assessment.Level == "" {
		assessment.Level = domain.LevelUnknown
	}
	return assessment
}

func degradedAssessment(raw string) domain.FitAssessment {
	return domain.FitAssessment{
		Summary:       strings.TrimSpace(raw),
		Strengths:     []string{},
		Concerns:      []string{},
		MatchedSkills: []string{},
		MissingSkills: []string{},
		Level:         domain.LevelUnknown,
	}
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(raw)
}
