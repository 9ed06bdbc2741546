package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Session struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Topic        string    `gorm:"type:text;not null;index" json:"topic"`
	MessageCount int       `gorm:"not null;default:0" json:"message_count"`
	StartedAt    time.Time `gorm:"autoCreateTime" json:"started_at"`

	Messages []Message `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

func (Session) TableName() string {
	return "chat_sessions"
}

func (s *Session) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Message rows are append-only; ID breaks ties between equal timestamps.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Role      Role      `gorm:"type:text;not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "chat_messages"
}
