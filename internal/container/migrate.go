package container

import (
	"fmt"

	"github.com/saulo-duarte/adaptive-tutor/internal/chat"
	"github.com/saulo-duarte/adaptive-tutor/internal/content"
	"github.com/saulo-duarte/adaptive-tutor/internal/quiz"
	"gorm.io/gorm"
)

// Migrate creates the tutor tables and the vector index used by retrieval.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&content.Item{},
		&chat.Session{},
		&chat.Message{},
		&quiz.Session{},
		&quiz.Answer{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec(`CREATE INDEX IF NOT EXISTS content_items_embedding_idx
		ON content_items USING hnsw (embedding vector_cosine_ops)`).Error; err != nil {
		return fmt.Errorf("create embedding index: %w", err)
	}
	return nil
}
