package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByMatchID struct {
	MatchID uuid.UUID
}

func (s ByMatchID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("match_id = ?", s.MatchID)
}

// UnreadFor selects messages the reader has not read yet: sent by the other
// participant and still flagged unread.
type UnreadFor struct {
	ReaderID uuid.UUID
}

func (s UnreadFor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sender_id <> ? AND is_read = ?", s.ReaderID, false)
}

// Chronological is the history order. The id tie-break keeps pages stable
// when two messages share a timestamp.
type Chronological struct{}

func (s Chronological) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}
