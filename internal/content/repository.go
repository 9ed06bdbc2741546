package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"github.com/saulo-duarte/adaptive-tutor/internal/retrieval"
	"gorm.io/gorm"
)

var ErrEmbeddingWidth = errors.New("embedding width does not match content store")

type Repository interface {
	retrieval.Store
	Create(ctx context.Context, item *Item) error
	CountByTopic(ctx context.Context, topic string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, item *Item) error {
	if !item.Type.IsValid() {
		return fmt.Errorf("invalid content type %q", item.Type)
	}
	if !item.Difficulty.IsValid() {
		return fmt.Errorf("invalid difficulty %q", item.Difficulty)
	}
	if n := len(item.Embedding.Slice()); n != EmbeddingDimensions {
		return fmt.Errorf("%w: got %d values, want %d", ErrEmbeddingWidth, n, EmbeddingDimensions)
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) CountByTopic(ctx context.Context, topic string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Item{}).Where("LOWER(topic) = LOWER(?)", topic).Count(&n).Error
	return n, err
}

// SearchByTopic ranks the topic's items by cosine similarity to embedding.
func (r *repository) SearchByTopic(ctx context.Context, embedding []float32, topic string, limit int) ([]retrieval.Match, error) {
	vec := pgvector.NewVector(embedding)
	var rows []retrieval.Match
	err := r.db.WithContext(ctx).Raw(`
		SELECT topic, content, 1 - (embedding <=> ?) AS similarity
		FROM content_items
		WHERE LOWER(topic) = LOWER(?)
		ORDER BY embedding <=> ?
		LIMIT ?`, vec, topic, vec, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search content for topic %q: %w", topic, err)
	}
	return rows, nil
}

func (r *repository) Search(ctx context.Context, embedding []float32, limit int) ([]retrieval.Match, error) {
	vec := pgvector.NewVector(embedding)
	var rows []retrieval.Match
	err := r.db.WithContext(ctx).Raw(`
		SELECT topic, content, 1 - (embedding <=> ?) AS similarity
		FROM content_items
		ORDER BY embedding <=> ?
		LIMIT ?`, vec, vec, limit).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}
	return rows, nil
}
