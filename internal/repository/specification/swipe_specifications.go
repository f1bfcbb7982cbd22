package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectedSwipe matches the single swipe SwiperID made on SwipedID.
type DirectedSwipe struct {
	SwiperID uuid.UUID
	SwipedID uuid.UUID
}

func (s DirectedSwipe) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("swiper_id = ? AND swiped_id = ?", s.SwiperID, s.SwipedID)
}

type BySwiperID struct {
	SwiperID uuid.UUID
}

func (s BySwiperID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("swiper_id = ?", s.SwiperID)
}

type OnlyLikes struct{}

func (s OnlyLikes) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_like = ?", true)
}
