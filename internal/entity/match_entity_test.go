package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	tests := []struct {
		name string
		x, y uuid.UUID
	}{
		{name: "already ordered", x: a, y: b},
		{name: "reversed", x: b, y: a},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := CanonicalPair(tt.x, tt.y)
			assert.Equal(t, a, pair.UserAId)
			assert.Equal(t, b, pair.UserBId)
		})
	}

	assert.Equal(t, CanonicalPair(a, b).String(), CanonicalPair(b, a).String())
}

func TestMatchParticipants(t *testing.T) {
	a, b, stranger := uuid.New(), uuid.New(), uuid.New()
	pair := CanonicalPair(a, b)
	m := &Match{Id: uuid.New(), UserAId: pair.UserAId, UserBId: pair.UserBId}

	assert.True(t, m.HasParticipant(a))
	assert.True(t, m.HasParticipant(b))
	assert.False(t, m.HasParticipant(stranger))
	assert.False(t, m.HasParticipant(uuid.Nil))

	other, ok := m.OtherParticipant(a)
	assert.True(t, ok)
	assert.Equal(t, b, other)

	other, ok = m.OtherParticipant(b)
	assert.True(t, ok)
	assert.Equal(t, a, other)

	_, ok = m.OtherParticipant(stranger)
	assert.False(t, ok)

	assert.Equal(t, pair, m.Pair())
}
