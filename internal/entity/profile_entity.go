package entity

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	DisplayName  string
	Bio          string
	Age          int
	Gender       string
	InterestedIn string
	Location     string
	Interests    []string
	Photos       []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
