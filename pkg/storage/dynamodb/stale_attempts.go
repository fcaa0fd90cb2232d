package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/elegantevents/wedding-finance/pkg/models"
)

const staleAttemptGSI = "status-created_at-index"

// GetStaleAttempts finds checkout attempts without a confirmed outcome
// older than maxAge. Both PENDING and EXHAUSTED attempts qualify: an
// exhausted burst may still correspond to a payment that completed on the
// provider's side.
func (s *Store) GetStaleAttempts(ctx context.Context, maxAge time.Duration) ([]models.CheckoutAttempt, error) {
	cutoff := time.Now().Add(-maxAge)
	cutoffStr, err := cutoff.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	var stale []models.CheckoutAttempt
	for _, status := range []models.AttemptStatus{models.AttemptPending, models.AttemptExhausted} {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.AttemptsTableName),
			IndexName:              aws.String(staleAttemptGSI),
			KeyConditionExpression: aws.String("#status = :status AND created_at < :cutoff"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
				":cutoff": &types.AttributeValueMemberS{Value: string(cutoffStr)},
			},
		}

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query stale %s attempts: %w", status, err)
		}

		var attempts []models.CheckoutAttempt
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &attempts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stale attempts: %w", err)
		}
		stale = append(stale, attempts...)
	}

	return stale, nil
}
