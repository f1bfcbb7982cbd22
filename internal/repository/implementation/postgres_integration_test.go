package implementation

import (
	"context"
	"log"
	"os"
	"testing"

	"matchmaker-be/internal/entity"
	"matchmaker-be/internal/model"
	"matchmaker-be/internal/repository/contract"
	"matchmaker-be/internal/repository/specification"
	"matchmaker-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPostgresMatchPair runs against a real Postgres when DB_CONNECTION_STRING is set.
func TestPostgresMatchPair(t *testing.T) {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Swipe{}, &model.Match{}))

	ctx := context.Background()
	repo := NewMatchRepository(db)
	a, b := uuid.New(), uuid.New()
	pair := entity.CanonicalPair(a, b)

	t.Cleanup(func() {
		db.Unscoped().Where("user_a_id = ? AND user_b_id = ?", pair.UserAId, pair.UserBId).Delete(&model.Match{})
	})

	t.Run("Go and Postgres agree on uuid order", func(t *testing.T) {
		var less bool
		require.NoError(t, db.Raw("SELECT ?::uuid < ?::uuid", pair.UserAId.String(), pair.UserBId.String()).Scan(&less).Error)
		assert.True(t, less)
	})

	t.Run("second insert conflicts", func(t *testing.T) {
		require.NoError(t, repo.CreateIfAbsent(ctx, newMatch(a, b)))
		assert.ErrorIs(t, repo.CreateIfAbsent(ctx, newMatch(b, a)), contract.ErrMatchConflict)

		count, err := repo.Count(ctx, specification.ByPair{UserAID: pair.UserAId, UserBID: pair.UserBId})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
