package retrieval

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"github.com/sirupsen/logrus"
)

// Match is one ranked candidate from the content store.
type Match struct {
	Topic      string
	Content    string
	Similarity float64
}

// Store ranks stored content by similarity to a query vector, best first.
type Store interface {
	SearchByTopic(ctx context.Context, embedding []float32, topic string, limit int) ([]Match, error)
	Search(ctx context.Context, embedding []float32, limit int) ([]Match, error)
}

type Thresholds struct {
	// TopicMin is the inclusive floor for same-topic matches.
	TopicMin float64
	// CrossTopicMin is the exclusive floor for matches from any topic.
	CrossTopicMin float64
	// CrossTopicPool is how many candidates the fallback inspects.
	CrossTopicPool int
}

func DefaultThresholds() Thresholds {
	return Thresholds{TopicMin: 0.4, CrossTopicMin: 0.8, CrossTopicPool: 10}
}

type Gate struct {
	store      Store
	embedder   llm.Embedder
	keywords   *KeywordTable
	thresholds Thresholds
}

func NewGate(store Store, embedder llm.Embedder, keywords *KeywordTable, thresholds Thresholds) *Gate {
	if keywords == nil {
		keywords = DefaultKeywordTable()
	}
	return &Gate{store: store, embedder: embedder, keywords: keywords, thresholds: thresholds}
}

// Retrieve returns curriculum snippets relevant to the query, best first.
// It never fails: every error degrades to an empty result.
func (g *Gate) Retrieve(ctx context.Context, query, sessionTopic string, topK int) []string {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"topic": sessionTopic, "top_k": topK})

	if topK <= 0 {
		return nil
	}

	if other, ok := g.keywords.ForeignTopic(query, sessionTopic); ok {
		log.WithField("detected_topic", other).Info("Query looks off-topic, skipping retrieval")
		return nil
	}

	out, err := g.retrieve(ctx, log, query, sessionTopic, topK)
	if err != nil {
		log.WithError(err).Error("Retrieval failed, continuing without curriculum content")
		return nil
	}
	return out
}

func (g *Gate) retrieve(ctx context.Context, log logrus.FieldLogger, query, sessionTopic string, topK int) ([]string, error) {
	vec, err := g.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	exact, err := g.store.SearchByTopic(ctx, vec, sessionTopic, topK)
	if err != nil {
		return nil, fmt.Errorf("topic search: %w", err)
	}

	var relevant []string
	for _, m := range exact {
		if m.Similarity >= g.thresholds.TopicMin {
			relevant = append(relevant, m.Content)
		}
	}
	if len(relevant) > 0 {
		log.WithField("matches", len(relevant)).Debug("Found relevant content for topic")
		return relevant, nil
	}
	log.WithField("candidates", len(exact)).Debug("No relevant same-topic content, trying cross-topic search")

	cross, err := g.store.Search(ctx, vec, g.thresholds.CrossTopicPool)
	if err != nil {
		return nil, fmt.Errorf("cross-topic search: %w", err)
	}

	for _, m := range cross {
		if len(relevant) == topK {
			break
		}
		if m.Similarity > g.thresholds.CrossTopicMin {
			relevant = append(relevant, m.Content)
		}
	}
	if len(relevant) == 0 {
		log.Info("No relevant content found in any topic")
	}
	return relevant, nil
}
