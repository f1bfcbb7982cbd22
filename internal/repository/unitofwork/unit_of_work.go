package unitofwork

import (
	"context"

	"matchmaker-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProfileRepository() contract.ProfileRepository
	SwipeRepository() contract.SwipeRepository
	MatchRepository() contract.MatchRepository
	MessageRepository() contract.MessageRepository
}
