package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/pkg/logger"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/internal/repository/unitofwork"
	"matchmaker-be/pkg/events"

	"github.com/google/uuid"
)

type IChatService interface {
	Send(ctx context.Context, matchId, senderId uuid.UUID, content string) (*entity.Message, error)
	// History returns the match's messages oldest first and marks the ones sent
	// to readerId as read. The result shows the read state before marking.
	History(ctx context.Context, matchId, readerId uuid.UUID, page dto.MessageHistoryQuery) ([]*entity.Message, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	authorizer       IMatchAuthorizer
	readTracker      IReadTracker
	publisher        EventPublisher
	delivery         RealtimeDelivery
	maxMessageLength int
	logger           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	authorizer IMatchAuthorizer,
	readTracker IReadTracker,
	publisher EventPublisher,
	delivery RealtimeDelivery,
	maxMessageLength int,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		authorizer:       authorizer,
		readTracker:      readTracker,
		publisher:        publisher,
		delivery:         delivery,
		maxMessageLength: maxMessageLength,
		logger:           log,
	}
}

func (s *chatService) Send(ctx context.Context, matchId, senderId uuid.UUID, content string) (*entity.Message, error) {
	match, err := s.authorizer.Authorize(ctx, matchId, senderId)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &dto.ValidationError{Field: "content", Reason: "message cannot be empty"}
	}
	if s.maxMessageLength > 0 && utf8.RuneCountInString(content) > s.maxMessageLength {
		return nil, &dto.ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("message cannot exceed %d characters", s.maxMessageLength),
		}
	}

	// V7 ids grow with time, so the (created_at, id) order follows send order.
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	message := &entity.Message{
		Id:        id,
		MatchId:   match.Id,
		SenderId:  senderId,
		Content:   content,
		IsRead:    false,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	if err := s.uowFactory.NewUnitOfWork(ctx).MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	recipient, _ := match.OtherParticipant(senderId)

	deliverBestEffort(ctx, s.delivery, s.logger, "ChatService",
		[]uuid.UUID{recipient, senderId},
		dto.RealtimeEvent{
			Type:    dto.RealtimeEventNewMessage,
			MatchId: match.Id,
			Message: mapper.ToMessageResponse(message),
		})

	publishBestEffort(ctx, s.publisher, s.logger, "ChatService",
		events.MessageSent(match.Id, message.Id, senderId, recipient, message.CreatedAt))

	return message, nil
}

func (s *chatService) History(ctx context.Context, matchId, readerId uuid.UUID, page dto.MessageHistoryQuery) ([]*entity.Message, error) {
	if page.Limit < 0 || page.Offset < 0 {
		return nil, &dto.ValidationError{Field: "limit", Reason: "limit and offset must not be negative"}
	}

	match, err := s.authorizer.Authorize(ctx, matchId, readerId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.ByMatchID{MatchID: match.Id},
		specification.Chronological{},
		specification.Pagination{Limit: page.Limit, Offset: page.Offset},
	)
	if err != nil {
		return nil, err
	}

	if _, err := s.readTracker.MarkReadIn(ctx, uow, match, readerId); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return messages, nil
}
