package entity

import (
	"time"

	"github.com/google/uuid"
)

// Swipe is one user's directional decision about another. It is written once
// and never changed.
type Swipe struct {
	Id          uuid.UUID
	SwiperId    uuid.UUID
	SwipedId    uuid.UUID
	IsLike      bool
	IsSuperLike bool
	CreatedAt   time.Time
}
