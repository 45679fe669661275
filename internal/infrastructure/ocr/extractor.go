// Package ocr composes S3 and Textract into the text extractor port.
package ocr

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// TextDetector is implemented by the Textract wrapper.
type TextDetector interface {
	DetectText(ctx context.Context, data []byte) (string, error)
	ExtractByLocation(ctx context.Context, bucket, key string) (string, error)
}

// StorageAPI is the subset of the S3 client the extractor needs.
type StorageAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Extractor dispatches between the synchronous and asynchronous Textract
// protocols: objects at or under the size limit are fetched and detected
// in one call, larger ones go through the start/poll job.
type Extractor struct {
	storage       StorageAPI
	detector      TextDetector
	syncSizeLimit int64
}

func NewExtractor(storage StorageAPI, detector TextDetector, syncSizeLimit int64) *Extractor {
	return &Extractor{
		storage:       storage,
		detector:      detector,
		syncSizeLimit: syncSizeLimit,
	}
}

func (e *Extractor) Extract(ctx context.Context, bucket, key string) (string, error) {
	head, err := e.storage.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("head object %s/%s: %w", bucket, key, err)
	}

	if size := aws.ToInt64(head.ContentLength); e.syncSizeLimit > 0 && size <= e.syncSizeLimit {
		return e.extractSync(ctx, bucket, key)
	}
	return e.detector.ExtractByLocation(ctx, bucket, key)
}

func (e *Extractor) extractSync(ctx context.Context, bucket, key string) (string, error) {
	obj, err := e.storage.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return "", fmt.Errorf("read object %s/%s: %w", bucket, key, err)
	}
	return e.detector.DetectText(ctx, data)
}
