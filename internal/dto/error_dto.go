package dto

import (
	"fmt"

	"github.com/google/uuid"
)

// DuplicateSwipeError means the swiper already decided on this target.
// The first decision stands.
type DuplicateSwipeError struct {
	SwiperId uuid.UUID
	SwipedId uuid.UUID
}

func (e *DuplicateSwipeError) Error() string {
	return "already swiped on this user"
}

// ForbiddenError means the actor is not a participant of the referenced match.
type ForbiddenError struct {
	ActorId uuid.UUID
	MatchId uuid.UUID
}

func (e *ForbiddenError) Error() string {
	return "you are not a participant of this match"
}

type NotFoundError struct {
	Resource string
	Id       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ValidationError is a request that is well formed but semantically invalid.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
