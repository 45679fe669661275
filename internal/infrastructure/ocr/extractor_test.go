package ocr

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type storageFake struct {
	size    int64
	headErr error
	body    string
	getErr  error
	gets    int
}

func (f *storageFake) HeadObject(_ context.Context, _ *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(f.size)}, nil
}

func (f *storageFake) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

type detectorFake struct {
	syncText   string
	asyncText  string
	syncCalls  int
	asyncCalls int
	lastBytes  []byte
}

func (f *detectorFake) DetectText(_ context.Context, data []byte) (string, error) {
	f.syncCalls++
	f.lastBytes = data
	return f.syncText, nil
}

func (f *detectorFake) ExtractByLocation(_ context.Context, _, _ string) (string, error) {
	f.asyncCalls++
	return f.asyncText, nil
}

func TestExtractUsesSyncPathForSmallObjects(t *testing.T) {
	storage := &storageFake{size: 100, body: "raw bytes"}
	detector := &detectorFake{syncText: "detected"}
	extractor := NewExtractor(storage, detector, 1024)

	got, err := extractor.Extract(context.Background(), "cv-uploads", "small.pdf")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "detected" || detector.syncCalls != 1 || detector.asyncCalls != 0 {
		t.Fatalf("expected sync path, got %q sync=%d async=%d", got, detector.syncCalls, detector.asyncCalls)
	}
	if string(detector.lastBytes) != "raw bytes" {
		t.Fatalf("expected fetched bytes passed to detector, got %q", detector.lastBytes)
	}
}

func TestExtractUsesAsyncPathForLargeObjects(t *testing.T) {
	storage := &storageFake{size: 10 * 1024}
	detector := &detectorFake{asyncText: "job output"}
	extractor := NewExtractor(storage, detector, 1024)

	got, err := extractor.Extract(context.Background(), "cv-uploads", "large.pdf")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if got != "job output" || detector.asyncCalls != 1 || storage.gets != 0 {
		t.Fatalf("expected async path without download, got %q async=%d gets=%d", got, detector.asyncCalls, storage.gets)
	}
}

func TestExtractPropagatesHeadError(t *testing.T) {
	storage := &storageFake{headErr: errors.New("no such key")}
	extractor := NewExtractor(storage, &detectorFake{}, 1024)

	if _, err := extractor.Extract(context.Background(), "b", "k"); err == nil {
		t.Fatalf("expected error")
	}
}
