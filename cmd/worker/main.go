package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"cardrequest-backend/internal/bootstrap"
	"cardrequest-backend/internal/shared/config"
	"cardrequest-backend/internal/shared/metrics"
	"cardrequest-backend/internal/shared/telemetry"
	"cardrequest-backend/internal/workerproc"
)

const (
	defaultSQSRegion          = "us-east-1"
	defaultVisibilitySeconds  = 120
	defaultWorkerConcurrency  = 4
	defaultShutdownTimeoutSec = 30
)

func main() {
	cfg := config.Load()

	queueURL := strings.TrimSpace(cfg.QueueURL)
	if queueURL == "" {
		log.Fatal("SUBMISSIONS_QUEUE_URL is required")
	}
	region := strings.TrimSpace(cfg.AWSRegion)
	if region == "" {
		region = defaultSQSRegion
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	visibilitySeconds := envInt("WORKER_VISIBILITY_TIMEOUT_SECONDS", defaultVisibilitySeconds)
	concurrency := envInt("WORKER_CONCURRENCY", defaultWorkerConcurrency)
	shutdownTimeout := time.Duration(envInt("WORKER_SHUTDOWN_TIMEOUT_SECONDS", defaultShutdownTimeoutSec)) * time.Second

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		log.Fatalf("load aws config: %v", err)
	}
	var sqsClient sqsAPI = sqs.NewFromConfig(awsCfg)

	app, err := bootstrap.BuildWith(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}
	defer app.Close()

	archiver := &workerproc.Archiver{Receipts: app.SubmissionsService, Store: app.Store}

	sem := make(chan struct{}, max(1, concurrency))
	var wg sync.WaitGroup

	log.Printf("worker started queue=%s concurrency=%d visibility=%ds", queueURL, concurrency, visibilitySeconds)

pollLoop:
	for {
		select {
		case <-ctx.Done():
			break pollLoop
		default:
		}

		resp, err := sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(queueURL),
			MaxNumberOfMessages: 10,
			WaitTimeSeconds:     20,
			VisibilityTimeout:   int32(visibilitySeconds),
			AttributeNames:      []sqstypes.QueueAttributeName{sqstypes.QueueAttributeName("ApproximateReceiveCount")},
		})
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				break pollLoop
			}
			log.Printf("receive message: %v", err)
			continue
		}

		for _, msg := range resp.Messages {
			select {
			case <-ctx.Done():
				break pollLoop
			case sem <- struct{}{}:
			}
			metrics.IncReceiptJob(metrics.JobReceived)
			wg.Add(1)
			go func(m sqstypes.Message) {
				defer wg.Done()
				defer func() { <-sem }()
				jobCtx, cancel := jobContext(ctx, time.Duration(visibilitySeconds)*time.Second)
				defer cancel()
				handleMessage(jobCtx, sqsClient, queueURL, archiver, m)
			}(msg)
		}
	}

	log.Printf("shutdown requested, waiting up to %s for in-flight jobs", shutdownTimeout)
	waitDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(waitDone)
	}()
	select {
	case <-waitDone:
	case <-time.After(shutdownTimeout):
		log.Printf("shutdown timeout reached; exiting with in-flight jobs")
	}
}

// jobContext detaches a job from shutdown so in-flight messages can finish during the drain.
// The job is still bounded by the visibility timeout.
func jobContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// handleMessage deletes the message once archived. Unparseable messages are deleted too; processing failures are left for redelivery.
func handleMessage(ctx context.Context, client sqsAPI, queueURL string, p workerproc.Processor, msg sqstypes.Message) {
	body := aws.ToString(msg.Body)

	decoded, meta, err := workerproc.ParseMessage(body)
	if err != nil {
		fields := baseFields(msg, 0, "")
		fields["body_len"] = meta.BodyLen
		if meta.BodySHA != "" {
			fields["body_sha256"] = meta.BodySHA
		}
		fields["error"] = err.Error()
		event := "worker.receipt.decode_failed"
		var unsupported workerproc.ErrUnsupported
		switch {
		case errors.As(err, new(workerproc.ErrEmptyBody)):
			event = "worker.receipt.empty_body"
		case errors.As(err, &unsupported):
			event = "worker.receipt.unsupported"
			if unsupported.RequestID != "" {
				fields["request_id"] = unsupported.RequestID
			}
		}
		telemetry.Error(event, fields)
		if deleteMessage(ctx, client, queueURL, msg, 0, "") {
			metrics.IncReceiptJob(metrics.JobUnrecoverable)
		}
		return
	}

	telemetry.Info("worker.receipt.received", baseFields(msg, decoded.SubmissionID, decoded.RequestID))

	key, err := workerproc.HandleMessage(ctx, p, body)
	if err != nil {
		fields := baseFields(msg, decoded.SubmissionID, decoded.RequestID)
		fields["error"] = err.Error()
		telemetry.Error("worker.receipt.failed", fields)
		metrics.IncReceiptJob(metrics.JobFailed)
		return
	}

	if deleteMessage(ctx, client, queueURL, msg, decoded.SubmissionID, decoded.RequestID) {
		fields := baseFields(msg, decoded.SubmissionID, decoded.RequestID)
		fields["storage_key"] = key
		telemetry.Info("worker.receipt.completed", fields)
		metrics.IncReceiptJob(metrics.JobCompleted)
	}
}

func deleteMessage(ctx context.Context, client sqsAPI, queueURL string, msg sqstypes.Message, submissionID int64, requestID string) bool {
	receipt := aws.ToString(msg.ReceiptHandle)
	if receipt == "" {
		fields := baseFields(msg, submissionID, requestID)
		fields["error"] = "missing receipt handle"
		telemetry.Error("worker.receipt.delete_failed", fields)
		return false
	}
	if _, err := client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: aws.String(receipt),
	}); err != nil {
		fields := baseFields(msg, submissionID, requestID)
		fields["error"] = err.Error()
		telemetry.Error("worker.receipt.delete_failed", fields)
		return false
	}
	return true
}

func baseFields(msg sqstypes.Message, submissionID int64, requestID string) map[string]any {
	fields := map[string]any{
		"sqs_message_id": aws.ToString(msg.MessageId),
		"receive_count":  receiveCount(msg),
	}
	if submissionID > 0 {
		fields["submission_id"] = submissionID
	}
	if strings.TrimSpace(requestID) != "" {
		fields["request_id"] = requestID
	}
	return fields
}

func receiveCount(msg sqstypes.Message) int {
	if msg.Attributes == nil {
		return 0
	}
	raw := msg.Attributes["ApproximateReceiveCount"]
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return parsed
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return val
}
