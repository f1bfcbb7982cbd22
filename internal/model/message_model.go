package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	MatchId   uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_match_created,priority:1"`
	SenderId  uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
	IsRead    bool      `gorm:"not null;default:false"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"not null;index:idx_messages_match_created,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}
