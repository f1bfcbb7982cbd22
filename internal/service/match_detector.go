package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/repository/contract"
	"matchmaker-be/internal/repository/memory"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/internal/repository/unitofwork"
	"matchmaker-be/pkg/events"

	"github.com/google/uuid"
)

type IMatchDetector interface {
	// Evaluate returns the match for the swipe's pair when both sides liked each
	// other, nil otherwise. Concurrent calls for the same pair get the same match.
	Evaluate(ctx context.Context, swipe *entity.Swipe) (*entity.Match, error)
	// Reconcile re-runs Evaluate for mutual likes that never got a match.
	Reconcile(ctx context.Context, limit int) ([]*entity.Match, error)
}

type matchDetector struct {
	uowFactory unitofwork.RepositoryFactory
	ledger     ISwipeLedger
	locks      *pairLocks
	cache      *memory.MatchCache
	publisher  EventPublisher
	delivery   RealtimeDelivery
	logger     logger.ILogger
}

func NewMatchDetector(
	uowFactory unitofwork.RepositoryFactory,
	ledger ISwipeLedger,
	cache *memory.MatchCache,
	publisher EventPublisher,
	delivery RealtimeDelivery,
	log logger.ILogger,
) IMatchDetector {
	return &matchDetector{
		uowFactory: uowFactory,
		ledger:     ledger,
		locks:      newPairLocks(),
		cache:      cache,
		publisher:  publisher,
		delivery:   delivery,
		logger:     log,
	}
}

func (d *matchDetector) Evaluate(ctx context.Context, swipe *entity.Swipe) (*entity.Match, error) {
	if swipe == nil || !swipe.IsLike {
		return nil, nil
	}

	reverse, err := d.ledger.Lookup(ctx, swipe.SwipedId, swipe.SwiperId)
	if err != nil {
		return nil, err
	}
	if reverse == nil || !reverse.IsLike {
		return nil, nil
	}

	pair := entity.CanonicalPair(swipe.SwiperId, swipe.SwipedId)

	unlock := d.locks.Lock(pair.String())
	defer unlock()

	repo := d.uowFactory.NewUnitOfWork(ctx).MatchRepository()

	existing, err := repo.FindOne(ctx, specification.ByPair{UserAID: pair.UserAId, UserBID: pair.UserBId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	match := &entity.Match{
		Id:        uuid.New(),
		UserAId:   pair.UserAId,
		UserBId:   pair.UserBId,
		CreatedAt: time.Now().UTC(),
	}

	err = repo.CreateIfAbsent(ctx, match)
	if errors.Is(err, contract.ErrMatchConflict) {
		// Another instance won the insert. Its row is the match.
		winner, err := repo.FindOne(ctx, specification.ByPair{UserAID: pair.UserAId, UserBID: pair.UserBId})
		if err != nil {
			return nil, err
		}
		if winner == nil {
			return nil, fmt.Errorf("match for pair %s conflicts but is not readable", pair)
		}
		d.logger.Info("MatchDetector", "Lost match creation race, using existing match", map[string]interface{}{
			"match_id": winner.Id,
		})
		return winner, nil
	}
	if err != nil {
		return nil, err
	}

	d.cache.Save(match)
	d.announce(ctx, match)

	return match, nil
}

// announce runs only for the caller that actually inserted the match.
func (d *matchDetector) announce(ctx context.Context, match *entity.Match) {
	d.logger.Info("MatchDetector", "Match created", map[string]interface{}{
		"match_id":  match.Id,
		"user_a_id": match.UserAId,
		"user_b_id": match.UserBId,
	})

	publishBestEffort(ctx, d.publisher, d.logger, "MatchDetector",
		events.MatchCreated(match.Id, match.UserAId, match.UserBId, match.CreatedAt))

	deliverBestEffort(ctx, d.delivery, d.logger, "MatchDetector",
		[]uuid.UUID{match.UserAId, match.UserBId},
		dto.RealtimeEvent{
			Type:    dto.RealtimeEventNewMatch,
			MatchId: match.Id,
			Match:   mapper.ToMatchResponse(match),
		})
}

func (d *matchDetector) Reconcile(ctx context.Context, limit int) ([]*entity.Match, error) {
	uow := d.uowFactory.NewUnitOfWork(ctx)

	pending, err := uow.SwipeRepository().FindUnmatchedReciprocalLikes(ctx, limit)
	if err != nil {
		return nil, err
	}

	matches := make([]*entity.Match, 0, len(pending))
	for _, swipe := range pending {
		match, err := d.Evaluate(ctx, swipe)
		if err != nil {
			d.logger.Error("MatchDetector", "Reconcile evaluation failed", map[string]interface{}{
				"swipe_id": swipe.Id,
				"error":    err,
			})
			continue
		}
		if match != nil {
			matches = append(matches, match)
		}
	}

	d.logger.Info("MatchDetector", "Reconcile finished", map[string]interface{}{
		"pending":  len(pending),
		"resolved": len(matches),
	})
	return matches, nil
}
