// Package dynamodb implements the storage interfaces on AWS DynamoDB.
// Every state transition is written with a condition expression so that
// duplicate deliveries and concurrent writers resolve to one winner.
package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/elegantevents/wedding-finance/pkg/storage"
)

// DynamoDBAPI defines the DynamoDB client operations used by the Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client DynamoDBAPI

	BookingsTableName     string
	InstallmentsTableName string
	AttemptsTableName     string
	AssignmentsTableName  string
	TasksTableName        string
	ConnectionsTableName  string
}

// New creates a new Store.
func New(client DynamoDBAPI, bookingsTable, installmentsTable, attemptsTable, assignmentsTable, tasksTable, connectionsTable string) *Store {
	return &Store{
		Client:                client,
		BookingsTableName:     bookingsTable,
		InstallmentsTableName: installmentsTable,
		AttemptsTableName:     attemptsTable,
		AssignmentsTableName:  assignmentsTable,
		TasksTableName:        tasksTable,
		ConnectionsTableName:  connectionsTable,
	}
}

// Make sure we conform to the interfaces.
var _ storage.Storage = (*Store)(nil)
var _ storage.WebSocketManager = (*Store)(nil)
