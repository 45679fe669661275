package dynamo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/aache/aws-sam-cv-processor/internal/core/domain"
)

// API is the subset of the DynamoDB client the repository needs.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type CandidateRepository struct {
	api   API
	table string
}

func NewCandidateRepository(api API, table string) *CandidateRepository {
	return &CandidateRepository{api: api, table: table}
}

// Create writes the candidate as a new row keyed by its id. Optional
// attributes left empty by the parser are omitted from the item rather
// than stored as empty placeholders.
func (r *CandidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	item, err := attributevalue.MarshalMap(candidate)
	if err != nil {
		return fmt.Errorf("marshal candidate item: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put candidate %s: %w", candidate.ID, err)
	}
	return nil
}

// SaveAssessment sets the serialized assessment field on the existing row.
func (r *CandidateRepository) SaveAssessment(ctx context.Context, candidateID string, assessment domain.FitAssessment) error {
	payload, err := json.Marshal(assessment)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}

	_, err = r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: candidateID}},
		UpdateExpression: aws.String("SET fit_assessment = :assessment"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":assessment": &types.AttributeValueMemberS{Value: string(payload)},
		},
	})
	if err != nil {
		return fmt.Errorf("update assessment for %s: %w", candidateID, err)
	}
	return nil
}
