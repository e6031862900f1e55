package main

// Build the Lambda handler binary:
//   GOOS=linux GOARCH=arm64 go build -tags lambda.norpc -o bootstrap ./cmd/lambda-worker

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"cardrequest-backend/internal/bootstrap"
	"cardrequest-backend/internal/shared/config"
	"cardrequest-backend/internal/shared/metrics"
	"cardrequest-backend/internal/shared/telemetry"
	"cardrequest-backend/internal/workerproc"
)

var (
	initOnce  sync.Once
	initErr   error
	processor workerproc.Processor
)

func initApp() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		initErr = err
		return
	}
	processor = &workerproc.Archiver{Receipts: app.SubmissionsService, Store: app.Store}
}

func handler(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	initOnce.Do(initApp)
	if initErr != nil {
		log.Printf("bootstrap error: %v", initErr)
		failures := make([]events.SQSBatchItemFailure, 0, len(event.Records))
		for _, record := range event.Records {
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
		}
		return events.SQSEventResponse{BatchItemFailures: failures}, initErr
	}
	return handleBatch(ctx, processor, event), nil
}

// handleBatch reports only processing failures for redelivery. Messages that cannot be parsed are dropped.
func handleBatch(ctx context.Context, p workerproc.Processor, event events.SQSEvent) events.SQSEventResponse {
	failures := make([]events.SQSBatchItemFailure, 0)
	for _, record := range event.Records {
		metrics.IncReceiptJob(metrics.JobReceived)
		key, err := workerproc.HandleMessage(ctx, p, record.Body)
		fields := map[string]any{"sqs_message_id": record.MessageId}
		if err == nil {
			fields["storage_key"] = key
			telemetry.Info("worker.receipt.completed", fields)
			metrics.IncReceiptJob(metrics.JobCompleted)
			continue
		}
		fields["error"] = err.Error()
		var procErr workerproc.ErrProcess
		if errors.As(err, &procErr) {
			fields["submission_id"] = procErr.SubmissionID
			telemetry.Error("worker.receipt.failed", fields)
			metrics.IncReceiptJob(metrics.JobFailed)
			failures = append(failures, events.SQSBatchItemFailure{ItemIdentifier: record.MessageId})
			continue
		}
		telemetry.Error("worker.receipt.unrecoverable", fields)
		metrics.IncReceiptJob(metrics.JobUnrecoverable)
	}
	return events.SQSEventResponse{BatchItemFailures: failures}
}

func main() {
	lambda.Start(handler)
}
