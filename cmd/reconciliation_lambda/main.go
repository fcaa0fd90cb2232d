package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/elegantevents/wedding-finance/pkg/api"
	"github.com/elegantevents/wedding-finance/pkg/scheduler"
	"github.com/elegantevents/wedding-finance/pkg/storage"
	dydbstore "github.com/elegantevents/wedding-finance/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage
var sqsScheduler scheduler.Scheduler

// Attempts older than this without a confirmed outcome get a fresh
// verification burst. Covers lost SQS messages and payments confirmed on
// the provider's side long after the client-facing burst exhausted.
const staleAttemptThreshold = 20 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

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
	sqsScheduler = scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	store = dydbstore.New(dbClient,
		os.Getenv("DYNAMODB_BOOKINGS_TABLE_NAME"),
		os.Getenv("DYNAMODB_INSTALLMENTS_TABLE_NAME"),
		os.Getenv("DYNAMODB_ATTEMPTS_TABLE_NAME"),
		os.Getenv("DYNAMODB_ASSIGNMENTS_TABLE_NAME"),
		os.Getenv("DYNAMODB_TASKS_TABLE_NAME"),
		os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME"),
	)
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation sweep for stale checkout attempts...")

	stale, err := store.GetStaleAttempts(ctx, staleAttemptThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stale attempts: %v", err)
		return err
	}

	if len(stale) == 0 {
		log.Println("No stale checkout attempts found.")
		return nil
	}

	log.Printf("Found %d stale checkout attempts. Re-enqueuing them...", len(stale))

	for _, attempt := range stale {
		job := &api.VerificationJob{
			TxRef:         attempt.TxRef,
			WeddingId:     attempt.WeddingId,
			InstallmentId: attempt.InstallmentId,
			Attempt:       1,
		}
		if err := sqsScheduler.ScheduleVerification(ctx, job, 0); err != nil {
			log.Printf("ERROR: failed to re-enqueue attempt %s: %v", attempt.TxRef, err)
			// Continue to the next attempt, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully re-enqueued attempt %s", attempt.TxRef)
	}

	log.Println("Reconciliation sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
