package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"github.com/sirupsen/logrus"
)

// ContentTopK is how many curriculum excerpts a chat turn may use.
const ContentTopK = 3

type Retriever interface {
	Retrieve(ctx context.Context, query, sessionTopic string, topK int) []string
}

type Service interface {
	SendMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error)
	History(ctx context.Context, sessionID uuid.UUID) ([]Message, error)
}

type service struct {
	repo      Repository
	retriever Retriever
	loader    *adaptive.Loader
	composer  *adaptive.Composer
	generator llm.Generator
	params    llm.Request
}

func NewService(repo Repository, retriever Retriever, loader *adaptive.Loader, composer *adaptive.Composer, generator llm.Generator, params llm.Request) Service {
	return &service{
		repo:      repo,
		retriever: retriever,
		loader:    loader,
		composer:  composer,
		generator: generator,
		params:    params,
	}
}

func (s *service) session(ctx context.Context, id *uuid.UUID, topic string) (*Session, error) {
	if id != nil && *id != uuid.Nil {
		return s.repo.FindByID(ctx, *id)
	}
	sess := &Session{Topic: topic}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}
	return sess, nil
}

func (s *service) SendMessage(ctx context.Context, req MessageRequest) (*MessageResponse, error) {
	log := config.WithContext(ctx).WithField("topic", req.Topic)

	sess, err := s.session(ctx, req.SessionID, req.Topic)
	if err != nil {
		log.WithError(err).Warn("Could not resolve chat session")
		return nil, err
	}
	log = log.WithFields(logrus.Fields{"session_id": sess.ID, "topic": sess.Topic})

	if err := s.repo.AppendMessage(ctx, &Message{SessionID: sess.ID, Role: RoleUser, Content: req.Message}); err != nil {
		log.WithError(err).Error("Failed to save user message")
		return nil, fmt.Errorf("save user message: %w", err)
	}

	content := s.retriever.Retrieve(ctx, req.Message, sess.Topic, ContentTopK)
	uc := s.loader.ChatContext(ctx, sess.ID, sess.Topic)

	llmReq := s.params
	llmReq.Prompt = s.composer.ChatRequest(uc, content, req.Message)

	answer, err := s.generator.Generate(ctx, llmReq)
	if err != nil {
		log.WithError(err).Error("Failed to generate tutor response")
		return nil, fmt.Errorf("generate tutor response: %w", err)
	}

	if err := s.repo.AppendMessage(ctx, &Message{SessionID: sess.ID, Role: RoleAssistant, Content: answer}); err != nil {
		log.WithError(err).Error("Failed to save tutor response")
		return nil, fmt.Errorf("save tutor response: %w", err)
	}

	log.WithFields(logrus.Fields{
		"mastery":          uc.Mastery,
		"content_snippets": len(content),
	}).Info("Chat turn completed")

	return &MessageResponse{
		SessionID:           sess.ID,
		Response:            answer,
		RelevantContentUsed: len(content) > 0,
	}, nil
}

func (s *service) History(ctx context.Context, sessionID uuid.UUID) ([]Message, error) {
	if _, err := s.repo.FindByID(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.repo.History(ctx, sessionID)
}
