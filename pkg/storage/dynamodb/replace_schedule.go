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

// ReplaceSchedule atomically supersedes a wedding's payment schedule. The
// deletes and puts ride in one TransactWriteItems call: either the whole
// new schedule lands or the old one survives untouched. Deletes are
// conditioned on the old installments still being PENDING so a concurrent
// settlement can never be erased.
func (s *Store) ReplaceSchedule(ctx context.Context, weddingID string, items []models.PaymentInstallment) ([]models.PaymentInstallment, error) {
	existing, err := s.ListInstallments(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule before replacement: %w", err)
	}

	var writes []types.TransactWriteItem
	for i := range existing {
		writes = append(writes, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(s.InstallmentsTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: existing[i].Id},
				},
				ConditionExpression: aws.String("#status = :pending"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pending": &types.AttributeValueMemberS{Value: string(models.InstallmentPending)},
				},
			},
		})
	}

	for i := range items {
		itemAV, err := attributevalue.MarshalMap(items[i])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal installment %s: %w", items[i].Id, err)
		}
		writes = append(writes, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.InstallmentsTableName),
				Item:                itemAV,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		})
	}

	if _, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: writes}); err != nil {
		return nil, fmt.Errorf("failed to replace schedule for wedding %s: %w", weddingID, err)
	}

	return items, nil
}
