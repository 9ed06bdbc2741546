package quiz

import (
	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/aiquiz"
)

type GenerateRequest struct {
	Topic     string     `json:"topic" validate:"required"`
	SessionID *uuid.UUID `json:"sessionId,omitempty"`
}

type PerformanceSnapshot struct {
	Mastery            int `json:"mastery"`
	ConsecutiveCorrect int `json:"consecutiveCorrect"`
	ConsecutiveWrong   int `json:"consecutiveWrong"`
}

type GenerateResponse struct {
	SessionID  uuid.UUID           `json:"sessionId"`
	Question   aiquiz.Question     `json:"question"`
	Difficulty adaptive.Difficulty `json:"difficulty"`
	Context    PerformanceSnapshot `json:"context"`
}

type SubmitRequest struct {
	SessionID     uuid.UUID `json:"sessionId" validate:"required"`
	UserAnswer    string    `json:"userAnswer" validate:"required"`
	CorrectAnswer string    `json:"correctAnswer" validate:"required"`
	Question      string    `json:"question"`
}

type SubmitResponse struct {
	IsCorrect          bool   `json:"isCorrect"`
	Message            string `json:"message"`
	Accuracy           int    `json:"accuracy"`
	TotalQuestions     int    `json:"totalQuestions"`
	CorrectAnswers     int    `json:"correctAnswers"`
	NextDifficultyHint string `json:"nextDifficultyHint"`
}
