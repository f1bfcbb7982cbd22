package contract

import (
	"context"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/repository/specification"
)

type MatchRepository interface {
	// CreateIfAbsent inserts the match unless its canonical pair already exists,
	// in which case it returns ErrMatchConflict and leaves the table untouched.
	CreateIfAbsent(ctx context.Context, match *entity.Match) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
