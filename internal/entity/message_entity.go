package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID
	MatchId   uuid.UUID
	SenderId  uuid.UUID
	Content   string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
