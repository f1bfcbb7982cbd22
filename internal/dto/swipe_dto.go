package dto

import (
	"time"

	"github.com/google/uuid"
)

type SwipeRequest struct {
	SwipedId    uuid.UUID `json:"swipedId" validate:"required"`
	IsLike      *bool     `json:"isLike" validate:"required"`
	IsSuperLike bool      `json:"isSuperLike"`
}

type SwipeResponse struct {
	Id          uuid.UUID `json:"id"`
	SwiperId    uuid.UUID `json:"swiperId"`
	SwipedId    uuid.UUID `json:"swipedId"`
	IsLike      bool      `json:"isLike"`
	IsSuperLike bool      `json:"isSuperLike"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SwipeResultResponse is the POST /swipe payload. Match is set when IsMatch is true.
type SwipeResultResponse struct {
	Swipe   SwipeResponse  `json:"swipe"`
	IsMatch bool           `json:"isMatch"`
	Match   *MatchResponse `json:"match,omitempty"`
}
