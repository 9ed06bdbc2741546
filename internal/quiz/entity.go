package quiz

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"gorm.io/gorm"
)

// Session tracks one run of quiz questions. Difficulty is the level of the
// most recently generated question.
type Session struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Topic          string              `gorm:"type:text;not null;index" json:"topic"`
	Difficulty     adaptive.Difficulty `gorm:"type:text;not null;default:medium" json:"difficulty"`
	TotalQuestions int                 `gorm:"not null;default:0" json:"total_questions"`
	CorrectAnswers int                 `gorm:"not null;default:0" json:"correct_answers"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`

	Answers []Answer `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (Session) TableName() string {
	return "quiz_sessions"
}

func (s *Session) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Answer is the append-only log streaks are computed from.
type Answer struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	SessionID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"session_id"`
	Question      string              `gorm:"type:text;not null" json:"question"`
	UserAnswer    string              `gorm:"type:text;not null" json:"user_answer"`
	CorrectAnswer string              `gorm:"type:text;not null" json:"correct_answer"`
	IsCorrect     bool                `gorm:"not null" json:"is_correct"`
	Difficulty    adaptive.Difficulty `gorm:"type:text;not null" json:"difficulty"`
	CreatedAt     time.Time           `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Answer) TableName() string {
	return "quiz_answers"
}
