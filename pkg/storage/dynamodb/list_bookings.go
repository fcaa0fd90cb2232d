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

const bookingsByWeddingGSI = "wedding_id-index"

// ListBookingsForWedding retrieves all bookings for a wedding with their
// denormalized service snapshot.
func (s *Store) ListBookingsForWedding(ctx context.Context, weddingID string) ([]models.Booking, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.BookingsTableName),
		IndexName:              aws.String(bookingsByWeddingGSI),
		KeyConditionExpression: aws.String("wedding_id = :weddingID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":weddingID": &types.AttributeValueMemberS{Value: weddingID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings for wedding %s: %w", weddingID, err)
	}

	var bookings []models.Booking
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &bookings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
	}

	return bookings, nil
}
