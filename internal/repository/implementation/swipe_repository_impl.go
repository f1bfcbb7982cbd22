package implementation

import (
	"context"
	"errors"
	"fmt"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/mapper"
	"matchmaker-be/internal/model"
	"matchmaker-be/internal/repository/contract"
	"matchmaker-be/internal/repository/specification"

	"gorm.io/gorm"
)

type SwipeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SwipeMapper
}

func NewSwipeRepository(db *gorm.DB) contract.SwipeRepository {
	return &SwipeRepositoryImpl{
		db:     db,
		mapper: mapper.NewSwipeMapper(),
	}
}

func (r *SwipeRepositoryImpl) Create(ctx context.Context, swipe *entity.Swipe) error {
	m := r.mapper.ToModel(swipe)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return contract.ErrDuplicateSwipe
		}
		return fmt.Errorf("insert swipe: %w", err)
	}
	*swipe = *r.mapper.ToEntity(m)
	return nil
}

func (r *SwipeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Swipe, error) {
	var m model.Swipe
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SwipeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Swipe, error) {
	var models []*model.Swipe
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SwipeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Swipe{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SwipeRepositoryImpl) FindUnmatchedReciprocalLikes(ctx context.Context, limit int) ([]*entity.Swipe, error) {
	var models []*model.Swipe
	// s.swiper_id < s.swiped_id keeps one row per pair, which is also the
	// canonical (user_a_id, user_b_id) order of the match table.
	query := r.db.WithContext(ctx).
		Table("swipes AS s").
		Select("s.*").
		Joins("JOIN swipes AS r ON r.swiper_id = s.swiped_id AND r.swiped_id = s.swiper_id").
		Joins("LEFT JOIN matches AS m ON m.user_a_id = s.swiper_id AND m.user_b_id = s.swiped_id").
		Where("s.is_like = ? AND r.is_like = ?", true, true).
		Where("s.swiper_id < s.swiped_id").
		Where("m.id IS NULL").
		Order("s.created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, fmt.Errorf("scan reciprocal likes: %w", err)
	}
	return r.mapper.ToEntities(models), nil
}
