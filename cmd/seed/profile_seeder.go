package main

import (
	"log"
	"time"

	"matchmaker-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// demoProfiles have fixed user ids so tokens minted for local testing stay valid
// across reseeds.
var demoProfiles = []model.Profile{
	{
		UserId:       uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		DisplayName:  "Amani",
		Bio:          "Weekend hikes and street food.",
		Age:          27,
		Gender:       "female",
		InterestedIn: "male",
		Location:     "Nairobi",
		Interests:    datatypes.JSONSlice[string]{"hiking", "food", "jazz"},
		Photos:       datatypes.JSONSlice[string]{},
		IsActive:     true,
	},
	{
		UserId:       uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7"),
		DisplayName:  "Brian",
		Bio:          "Coffee first.",
		Age:          29,
		Gender:       "male",
		InterestedIn: "female",
		Location:     "Nairobi",
		Interests:    datatypes.JSONSlice[string]{"coffee", "running"},
		Photos:       datatypes.JSONSlice[string]{},
		IsActive:     true,
	},
	{
		UserId:       uuid.MustParse("a3bb189e-8bf9-3888-9912-ace4e6543002"),
		DisplayName:  "Chebet",
		Bio:          "Paused for now.",
		Age:          25,
		Gender:       "female",
		InterestedIn: "everyone",
		Location:     "Mombasa",
		Interests:    datatypes.JSONSlice[string]{"books"},
		Photos:       datatypes.JSONSlice[string]{},
		IsActive:     false,
	},
}

// SeedProfiles upserts the demo profiles by user id.
func SeedProfiles(db *gorm.DB) {
	now := time.Now().UTC()

	for _, p := range demoProfiles {
		p.Id = uuid.New()
		p.CreatedAt = now
		p.UpdatedAt = now

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"display_name", "bio", "age", "gender", "interested_in", "location", "interests", "photos", "is_active", "updated_at"}),
		}).Create(&p).Error
		if err != nil {
			log.Printf("Failed to seed profile %s: %v", p.DisplayName, err)
			continue
		}
		log.Printf("Seeded profile %s (%s)", p.DisplayName, p.UserId)
	}
}
