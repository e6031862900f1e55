package queue

import (
	"context"
	"sync"
)

// MemoryClient keeps sent messages in memory. Used in dev and tests.
type MemoryClient struct {
	mu   sync.Mutex
	msgs []Message
}

// NewMemoryClient constructs an empty MemoryClient.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{}
}

// Send records msg.
func (m *MemoryClient) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (m *MemoryClient) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.msgs))
	copy(out, m.msgs)
	return out
}

var _ Client = (*MemoryClient)(nil)
