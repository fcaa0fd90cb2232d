package dynamodb

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/elegantevents/wedding-finance/pkg/models"
)

const installmentsByWeddingGSI = "wedding_id-index"

// ListInstallments retrieves a wedding's payment schedule ordered by
// sequence number.
func (s *Store) ListInstallments(ctx context.Context, weddingID string) ([]models.PaymentInstallment, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.InstallmentsTableName),
		IndexName:              aws.String(installmentsByWeddingGSI),
		KeyConditionExpression: aws.String("wedding_id = :weddingID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":weddingID": &types.AttributeValueMemberS{Value: weddingID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments for wedding %s: %w", weddingID, err)
	}

	var installments []models.PaymentInstallment
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &installments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal installments: %w", err)
	}

	sort.Slice(installments, func(i, j int) bool {
		return installments[i].Sequence < installments[j].Sequence
	})

	return installments, nil
}
