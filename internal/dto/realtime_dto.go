package dto

import "github.com/google/uuid"

const (
	RealtimeEventNewMessage = "new_message"
	RealtimeEventNewMatch   = "new_match"
)

// RealtimeEvent is the server to client websocket frame.
type RealtimeEvent struct {
	Type    string           `json:"type"`
	MatchId uuid.UUID        `json:"matchId"`
	Message *MessageResponse `json:"message,omitempty"`
	Match   *MatchResponse   `json:"match,omitempty"`
}
