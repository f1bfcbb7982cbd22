package dto

import (
	"time"

	"github.com/google/uuid"
)

type MatchResponse struct {
	Id        uuid.UUID `json:"id"`
	UserAId   uuid.UUID `json:"userAId"`
	UserBId   uuid.UUID `json:"userBId"`
	CreatedAt time.Time `json:"createdAt"`
}

// MatchSummaryResponse is one row of GET /matches from the caller's point of view.
type MatchSummaryResponse struct {
	MatchResponse
	OtherUserId uuid.UUID `json:"otherUserId"`
	UnreadCount int64     `json:"unreadCount"`
}
