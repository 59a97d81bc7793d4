package events

import (
	"context"

	"blessindo/pkg/auth"

	"go.uber.org/zap"
)

// Publisher defines the interface for publishing domain events
type Publisher interface {
	Publish(ctx context.Context, exchange string, event *Event, headers Headers) error
	Close() error
}

// Emit publishes a catalog event when a publisher is configured. Failures are
// logged and never reach the caller.
func Emit(ctx context.Context, publisher Publisher, name string, payload any) {
	if publisher == nil {
		return
	}

	headers := Headers{
		TraceID:       GenerateTraceID(),
		CorrelationID: GenerateCorrelationID(),
	}

	event := NewEvent(name, EventVersionV1, payload, headers)
	if username, ok := auth.UsernameFrom(ctx); ok {
		event.Actor = username
	}

	if err := publisher.Publish(ctx, CatalogExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish catalog event",
			zap.String("event", name),
			zap.Error(err),
		)
	}
}
