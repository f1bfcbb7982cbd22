package entity

import (
	"time"

	"github.com/google/uuid"
)

type Match struct {
	Id        uuid.UUID
	UserAId   uuid.UUID
	UserBId   uuid.UUID
	CreatedAt time.Time
	DeletedAt *time.Time
}

// PairKey identifies an unordered pair of users.
type PairKey struct {
	UserAId uuid.UUID
	UserBId uuid.UUID
}

// CanonicalPair orders two user ids so that {a,b} and {b,a} produce the same key.
func CanonicalPair(a, b uuid.UUID) PairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return PairKey{UserAId: a, UserBId: b}
}

func (k PairKey) String() string {
	return k.UserAId.String() + ":" + k.UserBId.String()
}

func (m *Match) Pair() PairKey {
	return PairKey{UserAId: m.UserAId, UserBId: m.UserBId}
}

func (m *Match) HasParticipant(userId uuid.UUID) bool {
	return userId != uuid.Nil && (m.UserAId == userId || m.UserBId == userId)
}

// OtherParticipant returns the counterparty of userId, false if userId is not in the match.
func (m *Match) OtherParticipant(userId uuid.UUID) (uuid.UUID, bool) {
	switch userId {
	case uuid.Nil:
		return uuid.Nil, false
	case m.UserAId:
		return m.UserBId, true
	case m.UserBId:
		return m.UserAId, true
	}
	return uuid.Nil, false
}
