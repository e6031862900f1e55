package queue

import "encoding/json"

// EventSubmissionReceived is published once a submission has been stored.
const EventSubmissionReceived = "submission.received"

// MessageVersion is bumped when Message changes shape.
const MessageVersion = 1

// Message is the payload sent to downstream queue consumers.
type Message struct {
	Event        string `json:"event"`
	SubmissionID int64  `json:"submissionId"`
	Protocol     string `json:"protocol"`
	RequestID    string `json:"requestId"`
	EnqueuedAt   string `json:"enqueuedAt"`
	Version      int    `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
