package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage"
)

// CreateAttempt persists a new checkout attempt. The transaction reference
// is the table key; re-using one is an error, never an overwrite.
func (s *Store) CreateAttempt(ctx context.Context, attempt *models.CheckoutAttempt) error {
	now := time.Now()
	attempt.Status = models.AttemptPending
	attempt.CreatedAt = now
	attempt.UpdatedAt = now
	attempt.TTL = now.Add(7 * 24 * time.Hour).Unix()

	item, err := attributevalue.MarshalMap(attempt)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout attempt: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AttemptsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(tx_ref)"),
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAttemptExists
		}
		return fmt.Errorf("failed to create checkout attempt %s: %w", attempt.TxRef, err)
	}

	return nil
}

// GetAttempt retrieves a checkout attempt by its transaction reference.
func (s *Store) GetAttempt(ctx context.Context, txRef string) (*models.CheckoutAttempt, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AttemptsTableName),
		Key: map[string]types.AttributeValue{
			"tx_ref": &types.AttributeValueMemberS{Value: txRef},
		},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get checkout attempt %s: %w", txRef, err)
	}
	if result.Item == nil {
		return nil, storage.ErrAttemptNotFound
	}

	var attempt models.CheckoutAttempt
	if err := attributevalue.UnmarshalMap(result.Item, &attempt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout attempt: %w", err)
	}

	return &attempt, nil
}
