package service

import (
	"context"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/pkg/events"

	"github.com/google/uuid"
)

// EventPublisher ships domain events to the bus. Implemented by pkg/nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// RealtimeDelivery pushes an event to every live connection of the recipients.
// Implementations must not block on slow or closed sockets.
type RealtimeDelivery interface {
	Deliver(ctx context.Context, recipients []uuid.UUID, event dto.RealtimeEvent) error
}

// publishBestEffort never fails the caller: the row is already durable.
func publishBestEffort(ctx context.Context, pub EventPublisher, log logger.ILogger, module string, event events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		log.Warn(module, "Failed to publish domain event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func deliverBestEffort(ctx context.Context, delivery RealtimeDelivery, log logger.ILogger, module string, recipients []uuid.UUID, event dto.RealtimeEvent) {
	if delivery == nil {
		return
	}
	if err := delivery.Deliver(ctx, recipients, event); err != nil {
		log.Warn(module, "Realtime delivery failed", map[string]interface{}{
			"type":     event.Type,
			"match_id": event.MatchId,
			"error":    err.Error(),
		})
	}
}
