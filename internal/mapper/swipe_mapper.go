package mapper

import (
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/model"
)

type SwipeMapper struct{}

func NewSwipeMapper() *SwipeMapper {
	return &SwipeMapper{}
}

func (m *SwipeMapper) ToEntity(s *model.Swipe) *entity.Swipe {
	if s == nil {
		return nil
	}
	return &entity.Swipe{
		Id:          s.Id,
		SwiperId:    s.SwiperId,
		SwipedId:    s.SwipedId,
		IsLike:      s.IsLike,
		IsSuperLike: s.IsSuperLike,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SwipeMapper) ToModel(s *entity.Swipe) *model.Swipe {
	if s == nil {
		return nil
	}
	return &model.Swipe{
		Id:          s.Id,
		SwiperId:    s.SwiperId,
		SwipedId:    s.SwipedId,
		IsLike:      s.IsLike,
		IsSuperLike: s.IsSuperLike,
		CreatedAt:   s.CreatedAt,
	}
}

func (m *SwipeMapper) ToEntities(swipes []*model.Swipe) []*entity.Swipe {
	entities := make([]*entity.Swipe, len(swipes))
	for i, s := range swipes {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
