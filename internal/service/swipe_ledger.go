package service

import (
	"context"
	"errors"
	"time"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/repository/contract"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISwipeLedger interface {
	Record(ctx context.Context, swiperId, swipedId uuid.UUID, isLike, isSuperLike bool) (*entity.Swipe, error)
	Lookup(ctx context.Context, swiperId, swipedId uuid.UUID) (*entity.Swipe, error)
}

type swipeLedger struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSwipeLedger(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISwipeLedger {
	return &swipeLedger{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (l *swipeLedger) Record(ctx context.Context, swiperId, swipedId uuid.UUID, isLike, isSuperLike bool) (*entity.Swipe, error) {
	if swiperId == uuid.Nil || swipedId == uuid.Nil {
		return nil, &dto.ValidationError{Field: "swipedId", Reason: "user id is required"}
	}
	if swiperId == swipedId {
		return nil, &dto.ValidationError{Field: "swipedId", Reason: "cannot swipe on yourself"}
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)

	target, err := uow.ProfileRepository().FindOne(ctx,
		specification.ByUserID{UserID: swipedId},
		specification.ActiveProfiles{},
	)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, &dto.NotFoundError{Resource: "profile", Id: swipedId}
	}

	existing, err := uow.SwipeRepository().FindOne(ctx, specification.DirectedSwipe{SwiperID: swiperId, SwipedID: swipedId})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &dto.DuplicateSwipeError{SwiperId: swiperId, SwipedId: swipedId}
	}

	swipe := &entity.Swipe{
		Id:          uuid.New(),
		SwiperId:    swiperId,
		SwipedId:    swipedId,
		IsLike:      isLike || isSuperLike, // a super like is a like
		IsSuperLike: isSuperLike,
		CreatedAt:   time.Now().UTC(),
	}

	// The unique index settles concurrent duplicates that both passed the pre-read.
	if err := uow.SwipeRepository().Create(ctx, swipe); err != nil {
		if errors.Is(err, contract.ErrDuplicateSwipe) {
			return nil, &dto.DuplicateSwipeError{SwiperId: swiperId, SwipedId: swipedId}
		}
		return nil, err
	}

	l.logger.Debug("SwipeLedger", "Swipe recorded", map[string]interface{}{
		"swipe_id":  swipe.Id,
		"swiper_id": swiperId,
		"swiped_id": swipedId,
		"is_like":   swipe.IsLike,
	})
	return swipe, nil
}

func (l *swipeLedger) Lookup(ctx context.Context, swiperId, swipedId uuid.UUID) (*entity.Swipe, error) {
	uow := l.uowFactory.NewUnitOfWork(ctx)
	return uow.SwipeRepository().FindOne(ctx, specification.DirectedSwipe{SwiperID: swiperId, SwipedID: swipedId})
}
