// Package textract wraps the two AWS Textract protocols used for resume
// text recognition: a single synchronous detection call for in-memory
// bytes and the start/poll/paginate protocol for documents addressed by
// their S3 location.
package textract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

// API is the subset of the Textract client the wrapper needs.
type API interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
	StartDocumentTextDetection(ctx context.Context, params *textract.StartDocumentTextDetectionInput, optFns ...func(*textract.Options)) (*textract.StartDocumentTextDetectionOutput, error)
	GetDocumentTextDetection(ctx context.Context, params *textract.GetDocumentTextDetectionInput, optFns ...func(*textract.Options)) (*textract.GetDocumentTextDetectionOutput, error)
}

type Client struct {
	api          API
	pollInterval time.Duration
}

func New(api API, pollInterval time.Duration) *Client {
	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}
	return &Client{api: api, pollInterval: pollInterval}
}

// DetectText runs one synchronous detection call over raw document bytes
// and returns all recognized lines newline-joined.
func (c *Client) DetectText(ctx context.Context, data []byte) (string, error) {
	out, err := c.api.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: data},
	})
	if err != nil {
		return "", fmt.Errorf("detect document text: %w", err)
	}
	return joinLines(out.Blocks), nil
}

// ExtractByLocation starts an asynchronous text-detection job for the
// object and polls it at the configured interval until it reaches a
// terminal status. There is no poll cap; the caller's context or the
// invocation timeout bounds the loop.
func (c *Client) ExtractByLocation(ctx context.Context, bucket, key string) (string, error) {
	start, err := c.api.StartDocumentTextDetection(ctx, &textract.StartDocumentTextDetectionInput{
		DocumentLocation: &types.DocumentLocation{
			S3Object: &types.S3Object{
				Bucket: aws.String(bucket),
				Name:   aws.String(key),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("start text detection: %w", err)
	}
	jobID := aws.ToString(start.JobId)

	for {
		out, err := c.api.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
			JobId: aws.String(jobID),
		})
		if err != nil {
			return "", fmt.Errorf("get text detection %s: %w", jobID, err)
		}

		switch out.JobStatus {
		case types.JobStatusSucceeded:
			return c.drainPages(ctx, jobID, out)
		case types.JobStatusInProgress:
			if err := sleep(ctx, c.pollInterval); err != nil {
				return "", err
			}
		default:
			return "", domain.WrapError(domain.ErrOCRJobFailed, "text detection",
				fmt.Errorf("job %s finished with status %s: %s", jobID, out.JobStatus, aws.ToString(out.StatusMessage)))
		}
	}
}

// drainPages follows the continuation token until exhausted, joining the
// per-page line joins with newlines.
func (c *Client) drainPages(ctx context.Context, jobID string, first *textract.GetDocumentTextDetectionOutput) (string, error) {
	pages := []string{joinLines(first.Blocks)}
	token := first.NextToken

	for token != nil {
		out, err := c.api.GetDocumentTextDetection(ctx, &textract.GetDocumentTextDetectionInput{
			JobId:     aws.String(jobID),
			NextToken: token,
		})
		if err != nil {
			return "", fmt.Errorf("get text detection page %s: %w", jobID, err)
		}
		pages = append(pages, joinLines(out.Blocks))
		token = out.NextToken
	}

	return strings.Join(pages, "\n"), nil
}

func joinLines(blocks []types.Block) string {
	lines := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.BlockType != types.BlockTypeLine {
			continue
		}
		lines = append(lines, aws.ToString(block.Text))
	}
	return strings.Join(lines, "\n")
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
