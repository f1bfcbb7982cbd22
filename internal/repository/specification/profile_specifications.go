package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByUserID struct {
	UserID uuid.UUID
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ActiveProfiles struct{}

func (s ActiveProfiles) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
