package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/elegantevents/wedding-finance/pkg/models"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	"github.com/elegantevents/wedding-finance/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateAttempt(t *testing.T) {
	attempt := &models.CheckoutAttempt{
		TxRef:         "wedding-w1-payment-p1-1700000000000",
		WeddingId:     "w1",
		InstallmentId: "p1",
		PayerId:       "couple-1",
		Amount:        60000,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.PutItemInput) bool {
			return *input.ConditionExpression == "attribute_not_exists(tx_ref)"
		})).Once().Return(&dynamodb.PutItemOutput{}, nil)

		err := store.CreateAttempt(context.Background(), attempt)

		assert.NoError(t, err)
		assert.Equal(t, models.AttemptPending, attempt.Status)
		assert.NotZero(t, attempt.TTL)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate TxRef", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		mockClient.On("PutItem", mock.Anything, mock.Anything).Once().
			Return(nil, &types.ConditionalCheckFailedException{})

		err := store.CreateAttempt(context.Background(), attempt)

		assert.ErrorIs(t, err, storage.ErrAttemptExists)
	})
}

func TestGetAttempt(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		stored := models.CheckoutAttempt{TxRef: "wedding-w1-payment-p1-1", Status: models.AttemptPending}
		item, _ := attributevalue.MarshalMap(stored)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: item}, nil)

		attempt, err := store.GetAttempt(context.Background(), "wedding-w1-payment-p1-1")

		assert.NoError(t, err)
		assert.Equal(t, stored.TxRef, attempt.TxRef)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetAttempt(context.Background(), "wedding-w1-payment-p1-missing")

		assert.ErrorIs(t, err, storage.ErrAttemptNotFound)
	})
}

func TestTransitionAttempt(t *testing.T) {
	t.Run("Settle From Exhausted", func(t *testing.T) {
		// A late confirmation may settle an attempt whose burst already
		// ran out.
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "#status = :from0 OR #status = :from1"
		})).Once().Return(&dynamodb.UpdateItemOutput{}, nil)

		err := store.SettleAttempt(context.Background(), "wedding-w1-payment-p1-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Exhaust Loses To Settlement", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().
			Return(nil, &types.ConditionalCheckFailedException{})

		err := store.ExhaustAttempt(context.Background(), "wedding-w1-payment-p1-1")

		// The attempt settled first; exhaustion silently yields.
		assert.NoError(t, err)
	})

	t.Run("Update Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AttemptsTableName: "attempts"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().
			Return(nil, errors.New("throttled"))

		err := store.SettleAttempt(context.Background(), "wedding-w1-payment-p1-1")

		assert.Error(t, err)
	})
}
