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

// GetAssignment retrieves the assignment for a wedding.
func (s *Store) GetAssignment(ctx context.Context, weddingID string) (*models.WeddingAssignment, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AssignmentsTableName),
		Key: map[string]types.AttributeValue{
			"wedding_id": &types.AttributeValueMemberS{Value: weddingID},
		},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment for wedding %s: %w", weddingID, err)
	}
	if result.Item == nil {
		return nil, storage.ErrAssignmentNotFound
	}

	var assignment models.WeddingAssignment
	if err := attributevalue.UnmarshalMap(result.Item, &assignment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assignment: %w", err)
	}

	return &assignment, nil
}

// CompleteAssignment atomically transitions the assignment from ACTIVE to
// COMPLETED and records the protocol review. The condition makes the
// transition terminal: a second completion fails with
// ErrAssignmentNotActive instead of overwriting the first review.
func (s *Store) CompleteAssignment(ctx context.Context, weddingID string, rating int32, feedback string) (*models.WeddingAssignment, error) {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AssignmentsTableName),
		Key: map[string]types.AttributeValue{
			"wedding_id": &types.AttributeValueMemberS{Value: weddingID},
		},
		UpdateExpression:    aws.String("SET #status = :completed, protocol_rating = :rating, protocol_feedback = :feedback, updated_at = :now"),
		ConditionExpression: aws.String("#status = :active"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(models.AssignmentCompleted)},
			":active":    &types.AttributeValueMemberS{Value: string(models.AssignmentActive)},
			":rating":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rating)},
			":feedback":  &types.AttributeValueMemberS{Value: feedback},
			":now":       nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, storage.ErrAssignmentNotActive
		}
		return nil, fmt.Errorf("failed to complete assignment for wedding %s: %w", weddingID, err)
	}

	var assignment models.WeddingAssignment
	if err := attributevalue.UnmarshalMap(result.Attributes, &assignment); err != nil {
		return nil, fmt.Errorf("failed to unmarshal completed assignment: %w", err)
	}

	return &assignment, nil
}
