package mapper

import (
	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:           p.Id,
		UserId:       p.UserId,
		DisplayName:  p.DisplayName,
		Bio:          p.Bio,
		Age:          p.Age,
		Gender:       p.Gender,
		InterestedIn: p.InterestedIn,
		Location:     p.Location,
		Interests:    []string(p.Interests),
		Photos:       []string(p.Photos),
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:           p.Id,
		UserId:       p.UserId,
		DisplayName:  p.DisplayName,
		Bio:          p.Bio,
		Age:          p.Age,
		Gender:       p.Gender,
		InterestedIn: p.InterestedIn,
		Location:     p.Location,
		Interests:    p.Interests,
		Photos:       p.Photos,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
