package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeMatchCreated = "MATCH_CREATED"
	TypeMessageSent  = "MESSAGE_SENT"
)

func MatchCreated(matchId, userAId, userBId uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeMatchCreated,
		Data: map[string]interface{}{
			"match_id":    matchId.String(),
			"user_a_id":   userAId.String(),
			"user_b_id":   userBId.String(),
			"occurred_at": at.Format(time.RFC3339Nano),
		},
		OccurredAt: at,
	}
}

func MessageSent(matchId, messageId, senderId, recipientId uuid.UUID, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeMessageSent,
		Data: map[string]interface{}{
			"match_id":     matchId.String(),
			"message_id":   messageId.String(),
			"sender_id":    senderId.String(),
			"recipient_id": recipientId.String(),
			"occurred_at":  at.Format(time.RFC3339Nano),
		},
		OccurredAt: at,
	}
}
