package service

import (
	"context"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/repository/memory"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IMatchAuthorizer resolves a match and checks the caller takes part in it.
type IMatchAuthorizer interface {
	Authorize(ctx context.Context, matchId, userId uuid.UUID) (*entity.Match, error)
}

type matchAuthorizer struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.MatchCache
}

func NewMatchAuthorizer(uowFactory unitofwork.RepositoryFactory, cache *memory.MatchCache) IMatchAuthorizer {
	return &matchAuthorizer{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (a *matchAuthorizer) Authorize(ctx context.Context, matchId, userId uuid.UUID) (*entity.Match, error) {
	match, err := a.find(ctx, matchId)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return nil, &dto.NotFoundError{Resource: "match", Id: matchId}
	}
	if !match.HasParticipant(userId) {
		return nil, &dto.ForbiddenError{ActorId: userId, MatchId: matchId}
	}
	return match, nil
}

func (a *matchAuthorizer) find(ctx context.Context, matchId uuid.UUID) (*entity.Match, error) {
	if match, ok := a.cache.Get(matchId); ok {
		return match, nil
	}

	match, err := a.uowFactory.NewUnitOfWork(ctx).MatchRepository().FindOne(ctx, specification.ByID{ID: matchId})
	if err != nil || match == nil {
		return nil, err
	}

	a.cache.Save(match)
	return match, nil
}
