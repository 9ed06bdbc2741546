package quiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/aiquiz"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/sirupsen/logrus"
)

// ContentTopK is how many curriculum excerpts feed question generation.
const ContentTopK = 2

type Retriever interface {
	Retrieve(ctx context.Context, query, sessionTopic string, topK int) []string
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
	Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error)
}

type service struct {
	repo      Repository
	retriever Retriever
	loader    *adaptive.Loader
	questions aiquiz.Service
}

func NewService(repo Repository, retriever Retriever, loader *adaptive.Loader, questions aiquiz.Service) Service {
	return &service{
		repo:      repo,
		retriever: retriever,
		loader:    loader,
		questions: questions,
	}
}

func (s *service) session(ctx context.Context, id *uuid.UUID, topic string) (*Session, error) {
	if id != nil && *id != uuid.Nil {
		return s.repo.FindByID(ctx, *id)
	}
	sess := &Session{Topic: topic, Difficulty: adaptive.Medium}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create quiz session: %w", err)
	}
	return sess, nil
}

func (s *service) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	log := config.WithContext(ctx).WithField("topic", req.Topic)

	sess, err := s.session(ctx, req.SessionID, req.Topic)
	if err != nil {
		log.WithError(err).Warn("Could not resolve quiz session")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{"session_id": sess.ID, "topic": sess.Topic})

	qc := s.loader.QuizContext(ctx, sess.ID, sess.Topic, sess.Difficulty)
	next := adaptive.NextDifficulty(qc.ConsecutiveCorrect, qc.ConsecutiveWrong, qc.CurrentDifficulty)

	if err := s.repo.UpdateDifficulty(ctx, sess.ID, next); err != nil {
		log.WithError(err).Error("Failed to store quiz difficulty")
		return nil, fmt.Errorf("update quiz difficulty: %w", err)
	}

	content := s.retriever.Retrieve(ctx, fmt.Sprintf("Generate a %s question about %s", next, sess.Topic), sess.Topic, ContentTopK)

	qc.CurrentDifficulty = next
	question, err := s.questions.GenerateQuestion(ctx, qc, content)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"previous_difficulty": sess.Difficulty,
		"difficulty":          next,
		"consecutive_correct": qc.ConsecutiveCorrect,
		"consecutive_wrong":   qc.ConsecutiveWrong,
	}).Info("Adaptive quiz question ready")

	return &GenerateResponse{
		SessionID:  sess.ID,
		Question:   question,
		Difficulty: next,
		Context: PerformanceSnapshot{
			Mastery:            qc.Mastery,
			ConsecutiveCorrect: qc.ConsecutiveCorrect,
			ConsecutiveWrong:   qc.ConsecutiveWrong,
		},
	}, nil
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*SubmitResponse, error) {
	log := config.WithContext(ctx).WithField("session_id", req.SessionID)

	isCorrect := strings.EqualFold(strings.TrimSpace(req.UserAnswer), strings.TrimSpace(req.CorrectAnswer))
	answer := &Answer{
		SessionID:     req.SessionID,
		Question:      req.Question,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		IsCorrect:     isCorrect,
	}

	sess, err := s.repo.RecordAnswer(ctx, answer)
	if err != nil {
		log.WithError(err).Warn("Failed to record quiz answer")
		return nil, err
	}

	accuracy := Accuracy(sess.CorrectAnswers, sess.TotalQuestions)
	log.WithFields(logrus.Fields{
		"is_correct": isCorrect,
		"accuracy":   accuracy,
		"total":      sess.TotalQuestions,
	}).Info("Quiz answer recorded")

	return &SubmitResponse{
		IsCorrect:          isCorrect,
		Message:            FeedbackMessage(isCorrect, accuracy),
		Accuracy:           accuracy,
		TotalQuestions:     sess.TotalQuestions,
		CorrectAnswers:     sess.CorrectAnswers,
		NextDifficultyHint: NextDifficultyHint(isCorrect, answer.Difficulty),
	}, nil
}
