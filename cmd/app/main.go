package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/elegantevents/wedding-finance/pkg/completion"
	"github.com/elegantevents/wedding-finance/pkg/gateway"
	"github.com/elegantevents/wedding-finance/pkg/handlers"
	"github.com/elegantevents/wedding-finance/pkg/handlers/checkout"
	"github.com/elegantevents/wedding-finance/pkg/handlers/payments"
	"github.com/elegantevents/wedding-finance/pkg/handlers/weddings"
	"github.com/elegantevents/wedding-finance/pkg/reconciler"
	"github.com/elegantevents/wedding-finance/pkg/schedule"
	"github.com/elegantevents/wedding-finance/pkg/scheduler"
	dydbstore "github.com/elegantevents/wedding-finance/pkg/storage/dynamodb"
	"github.com/elegantevents/wedding-finance/pkg/websockets"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	bookingsTable := os.Getenv("DYNAMODB_BOOKINGS_TABLE_NAME")
	installmentsTable := os.Getenv("DYNAMODB_INSTALLMENTS_TABLE_NAME")
	attemptsTable := os.Getenv("DYNAMODB_ATTEMPTS_TABLE_NAME")
	assignmentsTable := os.Getenv("DYNAMODB_ASSIGNMENTS_TABLE_NAME")
	tasksTable := os.Getenv("DYNAMODB_TASKS_TABLE_NAME")
	connectionsTable := os.Getenv("DYNAMODB_CONNECTIONS_TABLE_NAME")
	if bookingsTable == "" || installmentsTable == "" || attemptsTable == "" || assignmentsTable == "" || tasksTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// Chapa gateway
	chapaKey := os.Getenv("CHAPA_SECRET_KEY")
	if chapaKey == "" {
		log.Fatal("CHAPA_SECRET_KEY environment variable not set")
	}
	chapa := gateway.NewChapaClient(chapaKey, os.Getenv("CHAPA_CALLBACK_URL"))

	// Storage
	store := dydbstore.New(dbClient, bookingsTable, installmentsTable, attemptsTable, assignmentsTable, tasksTable, connectionsTable)

	// Best-effort websocket push; the poller covers clients that miss it.
	var publisher websockets.Publisher = &websockets.NoOpPublisher{}
	if endpoint := os.Getenv("WEBSOCKET_API_ENDPOINT"); endpoint != "" {
		p, err := websockets.NewPublisher(store, store, endpoint)
		if err != nil {
			log.Fatalf("failed to create websocket publisher: %v", err)
		}
		publisher = p
	}

	// Domain services
	scheduleManager := schedule.NewManager(store, store)
	gate := completion.NewGate(store, store, store)
	sessions := reconciler.NewManager(chapa, store, store, publisher)
	defer sessions.Stop()

	router := handlers.NewRouter(handlers.Config{
		Payments: payments.NewHandler(scheduleManager, store, store),
		Checkout: checkout.NewHandler(store, store, chapa, sqsScheduler, sessions),
		Weddings: weddings.NewHandler(gate, store),
		Logger:   logger,
	})

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
