package service

import (
	"context"
	"encoding/json"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// RealtimeSink is the local fan-out target. Implemented by websocket.Hub.
type RealtimeSink interface {
	SendToUser(userId uuid.UUID, payload []byte) int
}

type IDeliveryService interface {
	RealtimeDelivery
	Consume(ctx context.Context) error
}

type deliveryJob struct {
	Recipients []uuid.UUID       `json:"recipients"`
	Event      dto.RealtimeEvent `json:"event"`
}

// deliveryService puts realtime pushes on an in-process topic so the request
// path returns once the job is queued. Consume drains the topic into the sink.
type deliveryService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sink      RealtimeSink
	logger    logger.ILogger
}

func NewDeliveryService(pubSub *gochannel.GoChannel, topicName string, sink RealtimeSink, log logger.ILogger) IDeliveryService {
	return &deliveryService{
		pubSub:    pubSub,
		topicName: topicName,
		sink:      sink,
		logger:    log,
	}
}

func (s *deliveryService) Deliver(ctx context.Context, recipients []uuid.UUID, event dto.RealtimeEvent) error {
	payload, err := json.Marshal(deliveryJob{Recipients: recipients, Event: event})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	return s.pubSub.Publish(s.topicName, msg)
}

func (s *deliveryService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *deliveryService) processMessage(msg *message.Message) {
	// Pushes are not retried: the message is durable and history catches up.
	defer msg.Ack()

	var job deliveryJob
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		s.logger.Error("DeliveryService", "Failed to unmarshal delivery job", map[string]interface{}{
			"error": err,
		})
		return
	}

	frame, err := json.Marshal(job.Event)
	if err != nil {
		s.logger.Error("DeliveryService", "Failed to encode realtime event", map[string]interface{}{
			"error": err,
		})
		return
	}

	seen := make(map[uuid.UUID]struct{}, len(job.Recipients))
	for _, userId := range job.Recipients {
		if userId == uuid.Nil {
			continue
		}
		if _, dup := seen[userId]; dup {
			continue
		}
		seen[userId] = struct{}{}

		delivered := s.sink.SendToUser(userId, frame)
		s.logger.Debug("DeliveryService", "Realtime event dispatched", map[string]interface{}{
			"type":      job.Event.Type,
			"match_id":  job.Event.MatchId,
			"user_id":   userId,
			"delivered": delivered,
		})
	}
}
