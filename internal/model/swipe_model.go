package model

import (
	"time"

	"github.com/google/uuid"
)

type Swipe struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SwiperId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_swipes_pair,priority:1"`
	SwipedId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_swipes_pair,priority:2;index"`
	IsLike      bool      `gorm:"not null"`
	IsSuperLike bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Swipe) TableName() string {
	return "swipes"
}
