package mapper

import (
	"matchmaker-be/internal/dto"
	"matchmaker-be/internal/entity"
)

func ToSwipeResponse(s *entity.Swipe) dto.SwipeResponse {
	return dto.SwipeResponse{
		Id:          s.Id,
		SwiperId:    s.SwiperId,
		SwipedId:    s.SwipedId,
		IsLike:      s.IsLike,
		IsSuperLike: s.IsSuperLike,
		CreatedAt:   s.CreatedAt,
	}
}

func ToMatchResponse(m *entity.Match) *dto.MatchResponse {
	if m == nil {
		return nil
	}
	return &dto.MatchResponse{
		Id:        m.Id,
		UserAId:   m.UserAId,
		UserBId:   m.UserBId,
		CreatedAt: m.CreatedAt,
	}
}

func ToMessageResponse(m *entity.Message) *dto.MessageResponse {
	if m == nil {
		return nil
	}
	return &dto.MessageResponse{
		Id:        m.Id,
		MatchId:   m.MatchId,
		SenderId:  m.SenderId,
		Content:   m.Content,
		IsRead:    m.IsRead,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

func ToMessageResponses(messages []*entity.Message) []*dto.MessageResponse {
	res := make([]*dto.MessageResponse, len(messages))
	for i, m := range messages {
		res[i] = ToMessageResponse(m)
	}
	return res
}
