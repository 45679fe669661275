package dynamo

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

type apiFake struct {
	putIn     *dynamodb.PutItemInput
	putErr    error
	updateIn  *dynamodb.UpdateItemInput
	updateErr error
}

func (f *apiFake) PutItem(_ context.Context, params *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = params
	if f.putErr != nil {
		return nil, f.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *apiFake) UpdateItem(_ context.Context, params *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = params
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &dynamodb.UpdateItemOutput{}, nil
}

func TestCreateOmitsEmptyOptionalAttributes(t *testing.T) {
	fake := &apiFake{}
	repo := NewCandidateRepository(fake, "candidates")

	candidate := &domain.Candidate{
		ID:        "cand-1",
		Bucket:    "cv-uploads",
		Key:       "jane.pdf",
		RawText:   "some text",
		Email:     "jane@example.com",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(context.Background(), candidate); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if *fake.putIn.TableName != "candidates" {
		t.Fatalf("unexpected table %q", *fake.putIn.TableName)
	}
	item := fake.putIn.Item
	if _, ok := item["email"]; !ok {
		t.Fatalf("expected email attribute present")
	}
	for _, absent := range []string{"name", "phone", "skills"} {
		if _, ok := item[absent]; ok {
			t.Fatalf("expected %s omitted from item, got %v", absent, item[absent])
		}
	}
	id, ok := item["id"].(*types.AttributeValueMemberS)
	if !ok || id.Value != "cand-1" {
		t.Fatalf("unexpected id attribute %v", item["id"])
	}
}

func TestSaveAssessmentSetsSerializedField(t *testing.T) {
	fake := &apiFake{}
	repo := NewCandidateRepository(fake, "candidates")

	score := 72.0
	assessment := domain.FitAssessment{
		Score:         &score,
		Summary:       "solid backend profile",
		Strengths:     []string{"Kafka"},
		Concerns:      []string{},
		MatchedSkills: []string{"Java"},
		MissingSkills: []string{"Terraform"},
		Level:         domain.LevelMid,
	}
	if err := repo.SaveAssessment(context.Background(), "cand-1", assessment); err != nil {
		t.Fatalf("SaveAssessment() error = %v", err)
	}

	if *fake.updateIn.UpdateExpression != "SET fit_assessment = :assessment" {
		t.Fatalf("unexpected update expression %q", *fake.updateIn.UpdateExpression)
	}
	key, ok := fake.updateIn.Key["id"].(*types.AttributeValueMemberS)
	if !ok || key.Value != "cand-1" {
		t.Fatalf("unexpected key %v", fake.updateIn.Key)
	}
	serialized, ok := fake.updateIn.ExpressionAttributeValues[":assessment"].(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expected string assessment attribute")
	}
	var roundTripped domain.FitAssessment
	if err := json.Unmarshal([]byte(serialized.Value), &roundTripped); err != nil {
		t.Fatalf("assessment field is not valid json: %v", err)
	}
	if *roundTripped.Score != score || roundTripped.Level != domain.LevelMid {
		t.Fatalf("unexpected serialized assessment: %+v", roundTripped)
	}
}

func TestSaveAssessmentPropagatesStoreError(t *testing.T) {
	fake := &apiFake{updateErr: errors.New("conditional check failed")}
	repo := NewCandidateRepository(fake, "candidates")

	err := repo.SaveAssessment(context.Background(), "cand-1", domain.FitAssessment{Level: domain.LevelUnknown})
	if err == nil || !errors.Is(err, fake.updateErr) {
		t.Fatalf("expected wrapped update error, got %v", err)
	}
}
