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
)

// SettleAttempt marks a checkout attempt SETTLED once its outcome is
// confirmed. An attempt may settle from PENDING or from EXHAUSTED (a late
// confirmation found by the cron reconciler); settling twice is a no-op.
func (s *Store) SettleAttempt(ctx context.Context, txRef string) error {
	return s.transitionAttempt(ctx, txRef, models.AttemptSettled,
		[]models.AttemptStatus{models.AttemptPending, models.AttemptExhausted})
}

// ExhaustAttempt marks a checkout attempt EXHAUSTED after its verification
// burst ran out. Only a PENDING attempt can exhaust; a concurrent
// settlement always wins.
func (s *Store) ExhaustAttempt(ctx context.Context, txRef string) error {
	return s.transitionAttempt(ctx, txRef, models.AttemptExhausted,
		[]models.AttemptStatus{models.AttemptPending})
}

func (s *Store) transitionAttempt(ctx context.Context, txRef string, to models.AttemptStatus, from []models.AttemptStatus) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	condition := "#status = :from0"
	values := map[string]types.AttributeValue{
		":to":    &types.AttributeValueMemberS{Value: string(to)},
		":now":   nowAV,
		":from0": &types.AttributeValueMemberS{Value: string(from[0])},
	}
	for i := 1; i < len(from); i++ {
		placeholder := fmt.Sprintf(":from%d", i)
		condition += " OR #status = " + placeholder
		values[placeholder] = &types.AttributeValueMemberS{Value: string(from[i])}
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AttemptsTableName),
		Key: map[string]types.AttributeValue{
			"tx_ref": &types.AttributeValueMemberS{Value: txRef},
		},
		UpdateExpression:          aws.String("SET #status = :to, updated_at = :now"),
		ConditionExpression:       aws.String(condition),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// Already in a state this transition does not apply to.
			return nil
		}
		return fmt.Errorf("failed to transition attempt %s to %s: %w", txRef, to, err)
	}

	return nil
}
