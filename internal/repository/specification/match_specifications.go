package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByPair matches a canonical pair. Callers canonicalize before building it.
type ByPair struct {
	UserAID uuid.UUID
	UserBID uuid.UUID
}

func (s ByPair) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_a_id = ? AND user_b_id = ?", s.UserAID, s.UserBID)
}

// ParticipantOf matches rows where the user is on either side of the pair.
type ParticipantOf struct {
	UserID uuid.UUID
}

func (s ParticipantOf) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(user_a_id = ? OR user_b_id = ?)", s.UserID, s.UserID)
}
