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
	"gorm.io/gorm/clause"
)

type MatchRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MatchMapper
}

func NewMatchRepository(db *gorm.DB) contract.MatchRepository {
	return &MatchRepositoryImpl{
		db:     db,
		mapper: mapper.NewMatchMapper(),
	}
}

func (r *MatchRepositoryImpl) CreateIfAbsent(ctx context.Context, match *entity.Match) error {
	m := r.mapper.ToModel(match)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a_id"}, {Name: "user_b_id"}},
			DoNothing: true,
		}).
		Create(m)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return contract.ErrMatchConflict
		}
		return fmt.Errorf("insert match: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrMatchConflict
	}
	*match = *r.mapper.ToEntity(m)
	return nil
}

func (r *MatchRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Match, error) {
	var m model.Match
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *MatchRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Match, error) {
	var models []*model.Match
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *MatchRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Match{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
