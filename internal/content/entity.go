package content

import (
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
)

type Type string

const (
	TypeExplanation   Type = "explanation"
	TypeQuestion      Type = "question"
	TypeMisconception Type = "misconception"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeExplanation, TypeQuestion, TypeMisconception:
		return true
	}
	return false
}

// EmbeddingDimensions is the width of content_items.embedding and must match
// the vector(768) column tag below.
const EmbeddingDimensions = 768

// Item is one chunk of curriculum text. Items are written by ingestion and
// only changed by topic maintenance.
type Item struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	Topic      string              `gorm:"type:text;not null;index" json:"topic"`
	Type       Type                `gorm:"type:text;not null;default:explanation" json:"type"`
	Difficulty adaptive.Difficulty `gorm:"type:text;not null;default:medium" json:"difficulty"`
	Content    string              `gorm:"type:text;not null" json:"content"`
	Embedding  pgvector.Vector     `gorm:"type:vector(768)" json:"-"`
	CreatedAt  time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (Item) TableName() string {
	return "content_items"
}
