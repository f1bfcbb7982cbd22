package service

import (
	"context"
	"time"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IReadTracker interface {
	// MarkRead marks every message the other participant sent in the match as
	// read by readerId and returns how many changed. Calling it twice is a no-op.
	MarkRead(ctx context.Context, matchId, readerId uuid.UUID) (int64, error)
	// MarkReadIn does the same inside the caller's unit of work for an already
	// authorized match.
	MarkReadIn(ctx context.Context, uow unitofwork.UnitOfWork, match *entity.Match, readerId uuid.UUID) (int64, error)
	UnreadCount(ctx context.Context, matchId, readerId uuid.UUID) (int64, error)
}

type readTracker struct {
	uowFactory unitofwork.RepositoryFactory
	authorizer IMatchAuthorizer
	logger     logger.ILogger
}

func NewReadTracker(uowFactory unitofwork.RepositoryFactory, authorizer IMatchAuthorizer, log logger.ILogger) IReadTracker {
	return &readTracker{
		uowFactory: uowFactory,
		authorizer: authorizer,
		logger:     log,
	}
}

func (r *readTracker) MarkRead(ctx context.Context, matchId, readerId uuid.UUID) (int64, error) {
	match, err := r.authorizer.Authorize(ctx, matchId, readerId)
	if err != nil {
		return 0, err
	}
	return r.MarkReadIn(ctx, r.uowFactory.NewUnitOfWork(ctx), match, readerId)
}

func (r *readTracker) MarkReadIn(ctx context.Context, uow unitofwork.UnitOfWork, match *entity.Match, readerId uuid.UUID) (int64, error) {
	readAt := time.Now().UTC().Truncate(time.Microsecond)

	affected, err := uow.MessageRepository().MarkRead(ctx, match.Id, readerId, readAt)
	if err != nil {
		return 0, err
	}

	if affected > 0 {
		r.logger.Debug("ReadTracker", "Messages marked as read", map[string]interface{}{
			"match_id":  match.Id,
			"reader_id": readerId,
			"count":     affected,
		})
	}
	return affected, nil
}

func (r *readTracker) UnreadCount(ctx context.Context, matchId, readerId uuid.UUID) (int64, error) {
	return r.uowFactory.NewUnitOfWork(ctx).MessageRepository().Count(ctx,
		specification.ByMatchID{MatchID: matchId},
		specification.UnreadFor{ReaderID: readerId},
	)
}
