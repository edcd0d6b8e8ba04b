package interfaces

import "context"

// EventPublisher delivers domain events to a topic. Delivery failures are
// reported but callers treat them as non-fatal.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event any) error
}
