package mapper

import (
	"time"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/model"

	"gorm.io/gorm"
)

type MatchMapper struct{}

func NewMatchMapper() *MatchMapper {
	return &MatchMapper{}
}

func (m *MatchMapper) ToEntity(mt *model.Match) *entity.Match {
	if mt == nil {
		return nil
	}
	// gorm.DeletedAt is struct { Time time.Time; Valid bool }
	var deletedAt *time.Time
	if mt.DeletedAt.Valid {
		t := mt.DeletedAt.Time
		deletedAt = &t
	}
	return &entity.Match{
		Id:        mt.Id,
		UserAId:   mt.UserAId,
		UserBId:   mt.UserBId,
		CreatedAt: mt.CreatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *MatchMapper) ToModel(mt *entity.Match) *model.Match {
	if mt == nil {
		return nil
	}
	var deletedAt gorm.DeletedAt
	if mt.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *mt.DeletedAt, Valid: true}
	}
	return &model.Match{
		Id:        mt.Id,
		UserAId:   mt.UserAId,
		UserBId:   mt.UserBId,
		CreatedAt: mt.CreatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *MatchMapper) ToEntities(matches []*model.Match) []*entity.Match {
	entities := make([]*entity.Match, len(matches))
	for i, mt := range matches {
		entities[i] = m.ToEntity(mt)
	}
	return entities
}
