package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageHistoryQuery struct {
	Limit  int
	Offset int
}

type MessageResponse struct {
	Id        uuid.UUID  `json:"id"`
	MatchId   uuid.UUID  `json:"matchId"`
	SenderId  uuid.UUID  `json:"senderId"`
	Content   string     `json:"content"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
