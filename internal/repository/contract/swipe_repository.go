package contract

import (
	"context"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/repository/specification"
)

type SwipeRepository interface {
	// Create inserts the swipe. ErrDuplicateSwipe if the directed pair already exists.
	Create(ctx context.Context, swipe *entity.Swipe) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Swipe, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Swipe, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindUnmatchedReciprocalLikes returns one like per mutually liked pair
	// that has no match row yet.
	FindUnmatchedReciprocalLikes(ctx context.Context, limit int) ([]*entity.Swipe, error)
}
