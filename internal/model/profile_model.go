package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Profile is written by the profile service. The matching core only reads it
// to check that a swipe target exists and is active.
type Profile struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex"`
	DisplayName  string                      `gorm:"type:varchar(100)"`
	Bio          string                      `gorm:"type:text"`
	Age          int                         `gorm:"index"`
	Gender       string                      `gorm:"type:varchar(30)"`
	InterestedIn string                      `gorm:"type:varchar(30)"`
	Location     string                      `gorm:"type:varchar(120);index"`
	Interests    datatypes.JSONSlice[string] `gorm:"type:json"`
	Photos       datatypes.JSONSlice[string] `gorm:"type:json"`
	IsActive     bool                        `gorm:"not null"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
