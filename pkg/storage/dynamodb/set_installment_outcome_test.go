package dynamodb

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSetInstallmentOutcome(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, InstallmentsTableName: "installments"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			// The write must be guarded against demoting a PAID installment.
			return *input.ConditionExpression == "wedding_id = :weddingID AND #status <> :paid"
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		updated, err := store.SetInstallmentOutcome(context.Background(), "w1", "p1", models.InstallmentPaid, "wedding-w1-payment-p1-1")

		assert.NoError(t, err)
		assert.True(t, updated)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Resolved", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, InstallmentsTableName: "installments"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().
			Return(nil, &types.ConditionalCheckFailedException{})

		updated, err := store.SetInstallmentOutcome(context.Background(), "w1", "p1", models.InstallmentPaid, "wedding-w1-payment-p1-1")

		// A duplicate delivery is a no-op, not an error.
		assert.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, InstallmentsTableName: "installments"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().
			Return(nil, errors.New("throttled"))

		_, err := store.SetInstallmentOutcome(context.Background(), "w1", "p1", models.InstallmentFailed, "wedding-w1-payment-p1-1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set outcome")
	})

	t.Run("Failed Outcome Omits Paid Date", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, InstallmentsTableName: "installments"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return !strings.Contains(*input.UpdateExpression, "paid_date")
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		updated, err := store.SetInstallmentOutcome(context.Background(), "w1", "p1", models.InstallmentFailed, "wedding-w1-payment-p1-1")

		assert.NoError(t, err)
		assert.True(t, updated)
		mockClient.AssertExpectations(t)
	})
}
