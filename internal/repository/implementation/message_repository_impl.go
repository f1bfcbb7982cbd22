package implementation

import (
	"context"
	"fmt"
	"time"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/model"
	"matchmaker-be/internal/repository/contract"
	"matchmaker-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessageMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessageMapper(),
	}
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	m := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	*message = *r.mapper.ToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var models []*model.Message
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MessageRepositoryImpl) MarkRead(ctx context.Context, matchId, readerId uuid.UUID, readAt time.Time) (int64, error) {
	query := applySpecifications(
		r.db.WithContext(ctx).Model(&model.Message{}),
		specification.ByMatchID{MatchID: matchId},
		specification.UnreadFor{ReaderID: readerId},
	)
	res := query.Updates(map[string]interface{}{
		"is_read": true,
		"read_at": readAt,
	})
	if res.Error != nil {
		return 0, fmt.Errorf("mark messages read: %w", res.Error)
	}
	return res.RowsAffected, nil
}
