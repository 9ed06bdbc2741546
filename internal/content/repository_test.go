package content

import (
	"context"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&Item{}))
	return db
}

func TestRepository_CreateAndCount(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	for _, topic := range []string{"Polynomials", "polynomials", "Probability"} {
		require.NoError(t, repo.Create(ctx, &Item{
			Topic:      topic,
			Type:       TypeExplanation,
			Difficulty: adaptive.Medium,
			Content:    "A polynomial is a sum of terms.",
			Embedding:  pgvector.NewVector(make([]float32, EmbeddingDimensions)),
		}))
	}

	n, err := repo.CountByTopic(ctx, "POLYNOMIALS")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestRepository_CreateRejectsUnknownEnums(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &Item{Topic: "x", Type: "summary", Difficulty: adaptive.Easy, Content: "c"})
	assert.Error(t, err)

	err = repo.Create(ctx, &Item{Topic: "x", Type: TypeQuestion, Difficulty: "extreme", Content: "c"})
	assert.Error(t, err)
}

func TestRepository_CreateRejectsWrongEmbeddingWidth(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	err := repo.Create(ctx, &Item{
		Topic:      "Polynomials",
		Type:       TypeExplanation,
		Difficulty: adaptive.Medium,
		Content:    "A polynomial is a sum of terms.",
		Embedding:  pgvector.NewVector(make([]float32, 3072)),
	})
	assert.ErrorIs(t, err, ErrEmbeddingWidth)

	n, err := repo.CountByTopic(ctx, "Polynomials")
	require.NoError(t, err)
	assert.Zero(t, n)
}
