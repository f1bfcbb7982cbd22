package contract

import (
	"context"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/repository/specification"
)

// ProfileRepository is read only: profiles are owned by the profile service.
type ProfileRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
}
