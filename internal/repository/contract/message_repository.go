package contract

import (
	"context"
	"time"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// MarkRead flips unread messages of the other participant to read and
	// returns how many rows changed. Already read rows are never touched.
	MarkRead(ctx context.Context, matchId, readerId uuid.UUID, readAt time.Time) (int64, error)
}
