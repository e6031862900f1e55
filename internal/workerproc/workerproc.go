package workerproc

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"cardrequest-backend/internal/queue"
	"cardrequest-backend/internal/shared/storage/object"
)

// ReceiptPrefix is prepended to archived receipt names in the object store.
const ReceiptPrefix = "recibo_"

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{BodyLen: 0, BodySHA: ""}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrUnsupported indicates a message this worker does not handle: another event or no submission id.
type ErrUnsupported struct {
	Meta      MessageMeta
	Event     string
	RequestID string
}

func (e ErrUnsupported) Error() string {
	if e.Event != queue.EventSubmissionReceived {
		return "unsupported event " + e.Event
	}
	return "missing submission id"
}

// ErrProcess indicates processing failed after successful parsing.
type ErrProcess struct {
	SubmissionID int64
	RequestID    string
	Err          error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "archive receipt"
	}
	return "archive receipt: " + e.Err.Error()
}

func (e ErrProcess) Unwrap() error { return e.Err }

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (queue.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if msg.Event != queue.EventSubmissionReceived || msg.SubmissionID <= 0 {
		return msg, meta, ErrUnsupported{Meta: meta, Event: msg.Event, RequestID: msg.RequestID}
	}
	return msg, meta, nil
}

// ReceiptSource renders the receipt of a stored submission.
type ReceiptSource interface {
	Receipt(ctx context.Context, id int64) (string, []byte, error)
}

// Archiver writes the receipt of each received submission to the object store.
type Archiver struct {
	Receipts ReceiptSource
	Store    object.ObjectStore
}

// Archive stores the receipt for msg and returns its storage key.
func (a *Archiver) Archive(ctx context.Context, msg queue.Message) (string, error) {
	if a == nil || a.Receipts == nil || a.Store == nil {
		return "", errors.New("receipt archiver not configured")
	}
	fileName, body, err := a.Receipts.Receipt(ctx, msg.SubmissionID)
	if err != nil {
		return "", err
	}
	key, _, _, err := a.Store.Save(ctx, ReceiptPrefix, fileName, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	return key, nil
}

// Processor archives one decoded message.
type Processor interface {
	Archive(ctx context.Context, msg queue.Message) (string, error)
}

// HandleMessage parses, validates, and processes a message payload.
func HandleMessage(ctx context.Context, p Processor, body string) (string, error) {
	if p == nil {
		return "", errors.New("receipt archiver not configured")
	}
	msg, _, err := ParseMessage(body)
	if err != nil {
		return "", err
	}
	key, err := p.Archive(ctx, msg)
	if err != nil {
		return "", ErrProcess{SubmissionID: msg.SubmissionID, RequestID: msg.RequestID, Err: err}
	}
	return key, nil
}
