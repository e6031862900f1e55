package queue

import (
	"context"
	"encoding/json"
	"testing"
)

func TestEncodeMessageFieldNames(t *testing.T) {
	msg := Message{
		Event:        EventSubmissionReceived,
		SubmissionID: 42,
		Protocol:     "20240517-000042",
		RequestID:    "request-456",
		EnqueuedAt:   "2024-05-17T14:30:02Z",
		Version:      MessageVersion,
	}

	payload, err := EncodeMessage(msg)
	if err != nil {
		t.Fatalf("encode message: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("decode raw: %v", err)
	}
	for _, key := range []string{"event", "submissionId", "protocol", "requestId", "enqueuedAt", "version"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("missing key %q in %s", key, payload)
		}
	}

	got, err := DecodeMessage(payload)
	if err != nil {
		t.Fatalf("decode message: %v", err)
	}
	if got != msg {
		t.Fatalf("decoded %+v, want %+v", got, msg)
	}
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	if _, err := DecodeMessage([]byte("not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMemoryClientRecordsMessages(t *testing.T) {
	client := NewMemoryClient()
	if err := client.Send(context.Background(), Message{SubmissionID: 1}); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := client.Send(context.Background(), Message{SubmissionID: 2}); err != nil {
		t.Fatalf("send: %v", err)
	}
	got := client.Messages()
	if len(got) != 2 || got[0].SubmissionID != 1 || got[1].SubmissionID != 2 {
		t.Fatalf("unexpected messages: %+v", got)
	}
}
