package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/elegantevents/wedding-finance/pkg/models"
)

const tasksByWeddingGSI = "wedding_id-index"

// ListTasksForWedding retrieves all protocol tasks for a wedding.
func (s *Store) ListTasksForWedding(ctx context.Context, weddingID string) ([]models.Task, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.TasksTableName),
		IndexName:              aws.String(tasksByWeddingGSI),
		KeyConditionExpression: aws.String("wedding_id = :weddingID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":weddingID": &types.AttributeValueMemberS{Value: weddingID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks for wedding %s: %w", weddingID, err)
	}

	var tasks []models.Task
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	return tasks, nil
}
