package service

import (
	"context"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/pkg/logger"

	"github.com/google/uuid"
)

// ISwipeService is the POST /swipe use case: record the decision, then check
// for reciprocity.
type ISwipeService interface {
	Swipe(ctx context.Context, swiperId uuid.UUID, req *dto.SwipeRequest) (*dto.SwipeResultResponse, error)
}

type swipeService struct {
	ledger   ISwipeLedger
	detector IMatchDetector
	logger   logger.ILogger
}

func NewSwipeService(ledger ISwipeLedger, detector IMatchDetector, log logger.ILogger) ISwipeService {
	return &swipeService{
		ledger:   ledger,
		detector: detector,
		logger:   log,
	}
}

func (s *swipeService) Swipe(ctx context.Context, swiperId uuid.UUID, req *dto.SwipeRequest) (*dto.SwipeResultResponse, error) {
	isLike := req.IsLike != nil && *req.IsLike

	swipe, err := s.ledger.Record(ctx, swiperId, req.SwipedId, isLike, req.IsSuperLike)
	if err != nil {
		return nil, err
	}

	match, err := s.detector.Evaluate(ctx, swipe)
	if err != nil {
		// The swipe is stored. A later reciprocal swipe or cmd/reconcile
		// creates the match.
		s.logger.Error("SwipeService", "Match evaluation failed", map[string]interface{}{
			"swipe_id": swipe.Id,
			"error":    err,
		})
		return nil, err
	}

	return &dto.SwipeResultResponse{
		Swipe:   mapper.ToSwipeResponse(swipe),
		IsMatch: match != nil,
		Match:   mapper.ToMatchResponse(match),
	}, nil
}
