package memory

import (
	"context"
	"sync"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
)

type Message struct {
	Topic string
	Event any
}

// Recorder keeps published events in memory. It is used when no broker is
// configured and in tests.
type Recorder struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(ctx context.Context, topic string, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, Message{Topic: topic, Event: event})
	return nil
}

// Messages returns a copy of everything published so far.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]Message, len(r.messages))
	copy(copied, r.messages)
	return copied
}

// Fail makes Publish return err until called again with nil.
func (r *Recorder) Fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.err = err
}

var _ interfaces.EventPublisher = (*Recorder)(nil)
