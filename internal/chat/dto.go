package chat

import (
	"time"

	"github.com/google/uuid"
)

type MessageRequest struct {
	Message   string     `json:"message" validate:"required"`
	Topic     string     `json:"topic" validate:"required"`
	SessionID *uuid.UUID `json:"sessionId,omitempty"`
}

type MessageResponse struct {
	SessionID           uuid.UUID `json:"sessionId"`
	Response            string    `json:"response"`
	RelevantContentUsed bool      `json:"relevantContentUsed"`
}

type HistoryMessage struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryResponse struct {
	Messages []HistoryMessage `json:"messages"`
}

func ToHistoryResponse(messages []Message) HistoryResponse {
	out := HistoryResponse{Messages: make([]HistoryMessage, 0, len(messages))}
	for _, m := range messages {
		out.Messages = append(out.Messages, HistoryMessage{Role: m.Role, Content: m.Content, CreatedAt: m.CreatedAt})
	}
	return out
}
