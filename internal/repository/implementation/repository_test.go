package implementation

import (
	"context"
	"testing"
	"time"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/model"
	"matchmaker-be/internal/repository/contract"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewSqliteDB("file::memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Profile{}, &model.Swipe{}, &model.Match{}, &model.Message{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newSwipe(swiper, swiped uuid.UUID, like bool) *entity.Swipe {
	return &entity.Swipe{
		Id:        uuid.New(),
		SwiperId:  swiper,
		SwipedId:  swiped,
		IsLike:    like,
		CreatedAt: time.Now().UTC(),
	}
}

func newMatch(a, b uuid.UUID) *entity.Match {
	pair := entity.CanonicalPair(a, b)
	return &entity.Match{
		Id:        uuid.New(),
		UserAId:   pair.UserAId,
		UserBId:   pair.UserBId,
		CreatedAt: time.Now().UTC(),
	}
}

func TestSwipeRepositoryDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewSwipeRepository(newTestDB(t))
	a, b := uuid.New(), uuid.New()

	first := newSwipe(a, b, true)
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, newSwipe(a, b, false))
	assert.ErrorIs(t, err, contract.ErrDuplicateSwipe)

	stored, err := repo.FindOne(ctx, specification.DirectedSwipe{SwiperID: a, SwipedID: b})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.Id, stored.Id)
	assert.True(t, stored.IsLike, "the first decision stands")

	// The reverse direction is a different swipe.
	assert.NoError(t, repo.Create(ctx, newSwipe(b, a, true)))
}

func TestSwipeRepositoryFindOneMissing(t *testing.T) {
	repo := NewSwipeRepository(newTestDB(t))

	swipe, err := repo.FindOne(context.Background(), specification.DirectedSwipe{SwiperID: uuid.New(), SwipedID: uuid.New()})
	assert.NoError(t, err)
	assert.Nil(t, swipe)
}

func TestFindUnmatchedReciprocalLikes(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	swipes := NewSwipeRepository(db)
	matches := NewMatchRepository(db)

	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	// a <-> b mutual, no match yet
	require.NoError(t, swipes.Create(ctx, newSwipe(a, b, true)))
	require.NoError(t, swipes.Create(ctx, newSwipe(b, a, true)))
	// a <-> c mutual, already matched
	require.NoError(t, swipes.Create(ctx, newSwipe(a, c, true)))
	require.NoError(t, swipes.Create(ctx, newSwipe(c, a, true)))
	require.NoError(t, matches.CreateIfAbsent(ctx, newMatch(a, c)))
	// a -> d like, d -> a pass
	require.NoError(t, swipes.Create(ctx, newSwipe(a, d, true)))
	require.NoError(t, swipes.Create(ctx, newSwipe(d, a, false)))

	pending, err := swipes.FindUnmatchedReciprocalLikes(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	pair := entity.CanonicalPair(a, b)
	assert.Equal(t, pair.UserAId, pending[0].SwiperId)
	assert.Equal(t, pair.UserBId, pending[0].SwipedId)
}

func TestMatchRepositoryCreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(newTestDB(t))
	a, b := uuid.New(), uuid.New()

	first := newMatch(a, b)
	require.NoError(t, repo.CreateIfAbsent(ctx, first))

	second := newMatch(b, a)
	err := repo.CreateIfAbsent(ctx, second)
	assert.ErrorIs(t, err, contract.ErrMatchConflict)

	pair := entity.CanonicalPair(a, b)
	count, err := repo.Count(ctx, specification.ByPair{UserAID: pair.UserAId, UserBID: pair.UserBId})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindOne(ctx, specification.ByPair{UserAID: pair.UserAId, UserBID: pair.UserBId})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.Id, stored.Id)
}

func TestMatchRepositoryParticipantOf(t *testing.T) {
	ctx := context.Background()
	repo := NewMatchRepository(newTestDB(t))
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, repo.CreateIfAbsent(ctx, newMatch(a, b)))
	require.NoError(t, repo.CreateIfAbsent(ctx, newMatch(c, a)))
	require.NoError(t, repo.CreateIfAbsent(ctx, newMatch(c, d)))

	mine, err := repo.FindAll(ctx, specification.ParticipantOf{UserID: a})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, m := range mine {
		assert.True(t, m.HasParticipant(a))
	}
}

func TestMessageRepositoryMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t))
	matchId, alice, bob := uuid.New(), uuid.New(), uuid.New()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	for i, sender := range []uuid.UUID{alice, bob, alice} {
		require.NoError(t, repo.Create(ctx, &entity.Message{
			Id:        uuid.New(),
			MatchId:   matchId,
			SenderId:  sender,
			Content:   "hello",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	readAt := base.Add(time.Minute)

	flipped, err := repo.MarkRead(ctx, matchId, bob, readAt)
	require.NoError(t, err)
	assert.Equal(t, int64(2), flipped, "bob reads alice's two messages")

	flipped, err = repo.MarkRead(ctx, matchId, bob, readAt.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(0), flipped, "second call is a no-op")

	unreadForAlice, err := repo.Count(ctx, specification.ByMatchID{MatchID: matchId}, specification.UnreadFor{ReaderID: alice})
	require.NoError(t, err)
	assert.Equal(t, int64(1), unreadForAlice)

	history, err := repo.FindAll(ctx, specification.ByMatchID{MatchID: matchId}, specification.Chronological{})
	require.NoError(t, err)
	require.Len(t, history, 3)
	for _, m := range history {
		if m.SenderId == alice {
			assert.True(t, m.IsRead)
			require.NotNil(t, m.ReadAt)
			assert.True(t, m.ReadAt.Equal(readAt), "readAt keeps the first read time")
		} else {
			assert.False(t, m.IsRead)
		}
	}
}

func TestMessageRepositoryChronologicalPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository(newTestDB(t))
	matchId, sender := uuid.New(), uuid.New()
	base := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		id := uuid.New()
		ids = append(ids, id)
		require.NoError(t, repo.Create(ctx, &entity.Message{
			Id:        id,
			MatchId:   matchId,
			SenderId:  sender,
			Content:   "m",
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		}))
	}

	page, err := repo.FindAll(ctx,
		specification.ByMatchID{MatchID: matchId},
		specification.Chronological{},
		specification.Pagination{Limit: 2, Offset: 1},
	)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[1], page[0].Id)
	assert.Equal(t, ids[2], page[1].Id)
}

func TestProfileRepositoryActive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProfileRepository(db)

	active := &model.Profile{Id: uuid.New(), UserId: uuid.New(), DisplayName: "A", IsActive: true, Interests: []string{"x"}}
	paused := &model.Profile{Id: uuid.New(), UserId: uuid.New(), DisplayName: "B", IsActive: false}
	require.NoError(t, db.Create(active).Error)
	require.NoError(t, db.Create(paused).Error)

	found, err := repo.FindOne(ctx, specification.ByUserID{UserID: active.UserId}, specification.ActiveProfiles{})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"x"}, found.Interests)

	found, err = repo.FindOne(ctx, specification.ByUserID{UserID: paused.UserId}, specification.ActiveProfiles{})
	require.NoError(t, err)
	assert.Nil(t, found)
}
