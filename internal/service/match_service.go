package service

import (
	"context"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMatchService interface {
	ListMatches(ctx context.Context, userId uuid.UUID) ([]*dto.MatchSummaryResponse, error)
	GetForParticipant(ctx context.Context, matchId, userId uuid.UUID) (*entity.Match, error)
}

type matchService struct {
	uowFactory  unitofwork.RepositoryFactory
	authorizer  IMatchAuthorizer
	readTracker IReadTracker
}

func NewMatchService(uowFactory unitofwork.RepositoryFactory, authorizer IMatchAuthorizer, readTracker IReadTracker) IMatchService {
	return &matchService{
		uowFactory:  uowFactory,
		authorizer:  authorizer,
		readTracker: readTracker,
	}
}

// ListMatches returns the caller's matches, newest first.
func (s *matchService) ListMatches(ctx context.Context, userId uuid.UUID) ([]*dto.MatchSummaryResponse, error) {
	matches, err := s.uowFactory.NewUnitOfWork(ctx).MatchRepository().FindAll(ctx,
		specification.ParticipantOf{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.MatchSummaryResponse, 0, len(matches))
	for _, m := range matches {
		other, _ := m.OtherParticipant(userId)

		unread, err := s.readTracker.UnreadCount(ctx, m.Id, userId)
		if err != nil {
			return nil, err
		}

		res = append(res, &dto.MatchSummaryResponse{
			MatchResponse: *mapper.ToMatchResponse(m),
			OtherUserId:   other,
			UnreadCount:   unread,
		})
	}
	return res, nil
}

func (s *matchService) GetForParticipant(ctx context.Context, matchId, userId uuid.UUID) (*entity.Match, error) {
	return s.authorizer.Authorize(ctx, matchId, userId)
}
