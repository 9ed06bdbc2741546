package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/aiquiz"
	"github.com/saulo-duarte/adaptive-tutor/internal/chat"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/content"
	"github.com/saulo-duarte/adaptive-tutor/internal/ingest"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"github.com/saulo-duarte/adaptive-tutor/internal/quiz"
	"github.com/saulo-duarte/adaptive-tutor/internal/retrieval"
)

type Container struct {
	ChatContainer *chat.ChatContainer
	QuizContainer *quiz.QuizContainer
	Ingest        *ingest.Service
}

// New connects to the database, migrates it and wires every feature.
func New(ctx context.Context, s config.Settings) (*Container, error) {
	config.InitLogger(s.LogLevel)

	if s.EmbeddingDims != content.EmbeddingDimensions {
		return nil, fmt.Errorf("EMBEDDING_DIMENSIONS is %d but content_items.embedding holds %d values", s.EmbeddingDims, content.EmbeddingDimensions)
	}

	if err := config.Connect(ctx, s.DatabaseDSN); err != nil {
		return nil, err
	}
	if err := Migrate(config.DB); err != nil {
		return nil, err
	}

	provider, err := llm.NewProvider(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("create llm provider: %w", err)
	}

	keywords := retrieval.DefaultKeywordTable()
	if s.TopicKeywordsFile != "" {
		if keywords, err = retrieval.LoadKeywordTable(s.TopicKeywordsFile); err != nil {
			return nil, err
		}
	}

	contentRepo := content.NewRepository(config.DB)
	gate := retrieval.NewGate(contentRepo, provider, keywords, retrieval.DefaultThresholds())
	loader := adaptive.NewLoader(adaptive.NewRepository(config.DB))
	composer := adaptive.NewComposer(adaptive.Policy{Level: s.CurriculumLevel, Region: s.CurriculumRegion})
	params := llm.Request{Temperature: s.Temperature, TopP: s.TopP}

	questions := aiquiz.NewService(provider, composer, params)

	return &Container{
		ChatContainer: chat.NewChatContainer(config.DB, gate, loader, composer, provider, params),
		QuizContainer: quiz.NewQuizContainer(config.DB, gate, loader, questions),
		Ingest:        ingest.NewService(contentRepo, provider, ingest.ExtractPDF, ingest.DefaultPause),
	}, nil
}
