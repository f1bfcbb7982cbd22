package main

import (
	"log"
	"os"

	"matchmaker-be/internal/model"
	"matchmaker-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. AutoMigrate All Models
	log.Println("Step 1: Running AutoMigrate for 4 Tables...")

	models := []interface{}{
		&model.Profile{},
		&model.Swipe{},
		&model.Match{},
		&model.Message{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 4. Post-Migration: constraints the models do not declare
	log.Println("Step 2: Creating constraints...")

	postMigrationSQL := []string{
		`DO $$ BEGIN
		   IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'fk_messages_match') THEN
		     ALTER TABLE messages ADD CONSTRAINT fk_messages_match
		       FOREIGN KEY (match_id) REFERENCES matches(id) ON DELETE CASCADE;
		   END IF;
		 END $$;`,
		`DO $$ BEGIN
		   IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_matches_canonical') THEN
		     ALTER TABLE matches ADD CONSTRAINT chk_matches_canonical CHECK (user_a_id < user_b_id);
		   END IF;
		 END $$;`,
		`DO $$ BEGIN
		   IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_swipes_not_self') THEN
		     ALTER TABLE swipes ADD CONSTRAINT chk_swipes_not_self CHECK (swiper_id <> swiped_id);
		   END IF;
		 END $$;`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("✅ Success: Database migration completed successfully via GORM.")
}
