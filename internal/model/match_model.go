package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Match rows are keyed by the canonical pair: UserAId sorts before UserBId.
type Match struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserAId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,priority:1"`
	UserBId   uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_matches_pair,priority:2;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Match) TableName() string {
	return "matches"
}
