package aiquiz

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
)

type Service interface {
	GenerateQuestion(ctx context.Context, qc adaptive.QuizContext, content []string) (Question, error)
}

type service struct {
	generator llm.Generator
	composer  *adaptive.Composer
	params    llm.Request
}

// NewService builds a question generator. params carries the sampling
// settings copied into every request; its Prompt is ignored.
func NewService(generator llm.Generator, composer *adaptive.Composer, params llm.Request) Service {
	return &service{generator: generator, composer: composer, params: params}
}

func (s *service) GenerateQuestion(ctx context.Context, qc adaptive.QuizContext, content []string) (Question, error) {
	log := config.WithContext(ctx).WithField("difficulty", qc.CurrentDifficulty)

	req := s.params
	req.Prompt = s.composer.QuizRequest(qc, content)

	raw, err := s.generator.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to generate quiz question")
		return Question{}, fmt.Errorf("generate quiz question: %w", err)
	}
	log.Debugf("Raw quiz response:\n%s", raw)

	q := Parse(raw, qc.CurrentDifficulty)
	log.WithField("question", q.Question).Info("Quiz question generated")
	return q, nil
}
