package dynamodb

import (
	"context"
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

func TestGetAssignment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AssignmentsTableName: "assignments"}

		stored := models.WeddingAssignment{WeddingId: "w1", ManagerId: "mgr-1", Status: models.AssignmentActive}
		item, _ := attributevalue.MarshalMap(stored)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{Item: item}, nil)

		assignment, err := store.GetAssignment(context.Background(), "w1")

		assert.NoError(t, err)
		assert.Equal(t, "mgr-1", assignment.ManagerId)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AssignmentsTableName: "assignments"}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().
			Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.GetAssignment(context.Background(), "w-missing")

		assert.ErrorIs(t, err, storage.ErrAssignmentNotFound)
	})
}

func TestCompleteAssignment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AssignmentsTableName: "assignments"}

		rating := int32(5)
		completed := models.WeddingAssignment{
			WeddingId: "w1", ManagerId: "mgr-1", Status: models.AssignmentCompleted,
			ProtocolRating: &rating, ProtocolFeedback: "excellent",
		}
		attrs, _ := attributevalue.MarshalMap(completed)
		mockClient.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *dynamodb.UpdateItemInput) bool {
			return *input.ConditionExpression == "#status = :active"
		})).Once().Return(&dynamodb.UpdateItemOutput{Attributes: attrs}, nil)

		result, err := store.CompleteAssignment(context.Background(), "w1", 5, "excellent")

		assert.NoError(t, err)
		assert.Equal(t, models.AssignmentCompleted, result.Status)
		assert.Equal(t, int32(5), *result.ProtocolRating)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Completed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, AssignmentsTableName: "assignments"}

		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Once().
			Return(nil, &types.ConditionalCheckFailedException{})

		_, err := store.CompleteAssignment(context.Background(), "w1", 4, "good")

		// The transition is terminal; a second completion never overwrites
		// the first review.
		assert.ErrorIs(t, err, storage.ErrAssignmentNotActive)
	})
}
