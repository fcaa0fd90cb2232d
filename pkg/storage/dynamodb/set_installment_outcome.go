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

// SetInstallmentOutcome conditionally records a verified gateway outcome.
// The condition keeps PAID monotonic: an installment that already reached
// PAID is never demoted, and a duplicate delivery reports (false, nil)
// instead of writing anything.
func (s *Store) SetInstallmentOutcome(ctx context.Context, weddingID, installmentID string, status models.InstallmentStatus, gatewayTxID string) (bool, error) {
	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return false, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	update := "SET #status = :status, gateway_tx_id = :txID, updated_at = :now"
	if status == models.InstallmentPaid {
		update += ", paid_date = :now"
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.InstallmentsTableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: installmentID},
		},
		UpdateExpression: aws.String(update),
		// Outcomes only apply to installments that have not already
		// settled as PAID, and only to this wedding's installment.
		ConditionExpression: aws.String("wedding_id = :weddingID AND #status <> :paid"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":    &types.AttributeValueMemberS{Value: string(status)},
			":paid":      &types.AttributeValueMemberS{Value: string(models.InstallmentPaid)},
			":txID":      &types.AttributeValueMemberS{Value: gatewayTxID},
			":weddingID": &types.AttributeValueMemberS{Value: weddingID},
			":now":       nowAV,
		},
	}

	if _, err := s.Client.UpdateItem(ctx, input); err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return false, nil
		}
		return false, fmt.Errorf("failed to set outcome for installment %s: %w", installmentID, err)
	}

	return true, nil
}
