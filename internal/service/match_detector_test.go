package service

import (
	"context"
	"sync"
	"testing"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/model"
	"matchmaker-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMatches(t *testing.T, h *harness) int64 {
	t.Helper()
	var count int64
	require.NoError(t, h.db.Model(&model.Match{}).Count(&count).Error)
	return count
}

func TestMutualLikeCreatesOneMatch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob := h.user(t), h.user(t)

	first, err := h.swipes.Swipe(ctx, alice, like(bob))
	require.NoError(t, err)
	assert.False(t, first.IsMatch)

	second, err := h.swipes.Swipe(ctx, bob, like(alice))
	require.NoError(t, err)
	require.True(t, second.IsMatch)
	require.NotNil(t, second.Match)

	pair := entity.CanonicalPair(alice, bob)
	assert.Equal(t, pair.UserAId, second.Match.UserAId)
	assert.Equal(t, pair.UserBId, second.Match.UserBId)
	assert.Equal(t, int64(1), countMatches(t, h))

	created := h.publisher.ofType(events.TypeMatchCreated)
	require.Len(t, created, 1)
	assert.Equal(t, second.Match.Id.String(), created[0].Payload()["match_id"])

	notified := h.delivery.ofType(dto.RealtimeEventNewMatch)
	require.Len(t, notified, 1)
	assert.ElementsMatch(t, []uuid.UUID{alice, bob}, notified[0].Recipients)
}

func TestOneSidedLikeDoesNotMatch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob := h.user(t), h.user(t)

	_, err := h.swipes.Swipe(ctx, alice, like(bob))
	require.NoError(t, err)

	res, err := h.swipes.Swipe(ctx, bob, pass(alice))
	require.NoError(t, err)
	assert.False(t, res.IsMatch)
	assert.Nil(t, res.Match)
	assert.Zero(t, countMatches(t, h))
	assert.Empty(t, h.publisher.ofType(events.TypeMatchCreated))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob := h.user(t), h.user(t)

	ab, err := h.ledger.Record(ctx, alice, bob, true, false)
	require.NoError(t, err)
	ba, err := h.ledger.Record(ctx, bob, alice, true, false)
	require.NoError(t, err)

	first, err := h.detector.Evaluate(ctx, ab)
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := h.detector.Evaluate(ctx, ba)
	require.NoError(t, err)
	require.NotNil(t, again)

	assert.Equal(t, first.Id, again.Id)
	assert.Equal(t, int64(1), countMatches(t, h))
	assert.Len(t, h.publisher.ofType(events.TypeMatchCreated), 1, "only the creator announces")
}

func TestConcurrentEvaluateSharesMatch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob := h.user(t), h.user(t)

	ab, err := h.ledger.Record(ctx, alice, bob, true, false)
	require.NoError(t, err)
	ba, err := h.ledger.Record(ctx, bob, alice, true, false)
	require.NoError(t, err)

	const workers = 16
	results := make([]*entity.Match, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			swipe := ab
			if i%2 == 1 {
				swipe = ba
			}
			results[i], errs[i] = h.detector.Evaluate(ctx, swipe)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		require.NotNil(t, results[i])
		assert.Equal(t, results[0].Id, results[i].Id)
	}
	assert.Equal(t, int64(1), countMatches(t, h))
	assert.Len(t, h.publisher.ofType(events.TypeMatchCreated), 1)
}

func TestConcurrentMutualSwipes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob := h.user(t), h.user(t)

	var (
		wg      sync.WaitGroup
		results [2]*dto.SwipeResultResponse
		errs    [2]error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0], errs[0] = h.swipes.Swipe(ctx, alice, like(bob))
	}()
	go func() {
		defer wg.Done()
		results[1], errs[1] = h.swipes.Swipe(ctx, bob, like(alice))
	}()
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int64(1), countMatches(t, h))

	// Whichever call saw both swipes reports the match. When both did, they
	// report the same one.
	assert.True(t, results[0].IsMatch || results[1].IsMatch)
	if results[0].IsMatch && results[1].IsMatch {
		assert.Equal(t, results[0].Match.Id, results[1].Match.Id)
	}
}

func TestConflictRereadsExistingMatch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob := h.user(t), h.user(t)

	ab, err := h.ledger.Record(ctx, alice, bob, true, false)
	require.NoError(t, err)
	_, err = h.ledger.Record(ctx, bob, alice, true, false)
	require.NoError(t, err)

	// Another instance already inserted the match.
	pair := entity.CanonicalPair(alice, bob)
	existing := &model.Match{Id: uuid.New(), UserAId: pair.UserAId, UserBId: pair.UserBId}
	require.NoError(t, h.db.Create(existing).Error)

	match, err := h.detector.Evaluate(ctx, ab)
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, existing.Id, match.Id)
	assert.Empty(t, h.publisher.ofType(events.TypeMatchCreated))
}

func TestReconcileCreatesMissingMatches(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	alice, bob, carol := h.user(t), h.user(t), h.user(t)

	// Swipes recorded without evaluation, as after a crash.
	for _, s := range [][2]uuid.UUID{{alice, bob}, {bob, alice}, {alice, carol}} {
		_, err := h.ledger.Record(ctx, s[0], s[1], true, false)
		require.NoError(t, err)
	}

	matches, err := h.detector.Reconcile(ctx, 10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].HasParticipant(alice))
	assert.True(t, matches[0].HasParticipant(bob))

	again, err := h.detector.Reconcile(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Equal(t, int64(1), countMatches(t, h))
}
