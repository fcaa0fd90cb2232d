package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/gateway"
	"github.com/elegantevents/wedding-finance/pkg/scheduler"
	dydbstore "github.com/elegantevents/wedding-finance/pkg/storage/dynamodb"
	"github.com/elegantevents/wedding-finance/pkg/verification"
	"github.com/elegantevents/wedding-finance/pkg/websockets"
	"github.com/joho/godotenv"
)

var processor *verification.Processor

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	sqsClient := sqs.NewFromConfig(cfg)

	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	chapaKey := os.Getenv("CHAPA_SECRET_KEY")
	if chapaKey == "" {
		log.Fatal("CHAPA_SECRET_KEY environment variable not set")
	}
	chapa := gateway.NewChapaClient(chapaKey, os.Getenv("CHAPA_CALLBACK_URL"))

	store := dydbstore.New(dbClient,
		os.Getenv("DYNAMODB_BOOKINGS_TABLE_NAME"),
		os.Getenv("DYNAMODB_INSTALLMENTS_TABLE_NAME"),
		os.Getenv("DYNAMODB_ATTEMPTS_TABLE_NAME"),
		os.Getenv("DYNAMODB_ASSIGNMENTS_TABLE_NAME"),
		os.Getenv("DYNAMODB_TASKS_TABLE_NAME"),
		os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	)

	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		p, err := websockets.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
		publisher = p
	}

	processor = verification.NewProcessor(chapa, store, sqsScheduler, publisher)
}

// HandleRequest processes a batch of verification jobs from SQS. Failed
// records are returned for partial-batch retry; a still-pending payment is
// not a failure, it re-enqueues itself with a longer delay.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) (events.SQSEventResponse, error) {
	var response events.SQSEventResponse

	for _, record := range sqsEvent.Records {
		var job api.VerificationJob
		if err := json.Unmarshal([]byte(record.Body), &job); err != nil {
			log.Printf("ERROR: dropping malformed verification job %s: %v", record.MessageId, err)
			continue
		}

		if err := processor.Process(ctx, &job); err != nil {
			log.Printf("ERROR: failed to process verification for %s (attempt %d): %v", job.TxRef, job.Attempt, err)
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	return response, nil
}

func main() {
	lambda.Start(HandleRequest)
}
