package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byTopic    []Match
	all        []Match
	topicErr   error
	allErr     error
	topicCalls int
	allCalls   int
	lastTopic  string
	lastLimit  int
}

func (f *fakeStore) SearchByTopic(_ context.Context, _ []float32, topic string, limit int) ([]Match, error) {
	f.topicCalls++
	f.lastTopic = topic
	f.lastLimit = limit
	if f.topicErr != nil {
		return nil, f.topicErr
	}
	if len(f.byTopic) > limit {
		return f.byTopic[:limit], nil
	}
	return f.byTopic, nil
}

func (f *fakeStore) Search(_ context.Context, _ []float32, limit int) ([]Match, error) {
	f.allCalls++
	f.lastLimit = limit
	if f.allErr != nil {
		return nil, f.allErr
	}
	if len(f.all) > limit {
		return f.all[:limit], nil
	}
	return f.all, nil
}

func newGate(store Store, emb llm.Embedder) *Gate {
	return NewGate(store, emb, DefaultKeywordTable(), DefaultThresholds())
}

func TestRetrieve_TopicMismatchSkipsStore(t *testing.T) {
	store := &fakeStore{byTopic: []Match{{Content: "x", Similarity: 0.99}}}
	emb := llm.NewMockProvider()

	got := newGate(store, emb).Retrieve(context.Background(), "What is the probability of rolling a six?", "Polynomials", 3)

	assert.Empty(t, got)
	assert.Zero(t, store.topicCalls)
	assert.Zero(t, store.allCalls)
	assert.Empty(t, emb.Embedded)
}

func TestRetrieve_SubstringMismatchSkipsStore(t *testing.T) {
	cases := []struct {
		query string
		topic string
	}{
		{"Can you explain this using an example?", "Polynomials"},
		{"Generate a medium question about Quadratic Equations", "Quadratic Equations"},
		{"what is 2x² here", "Polynomials"},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			store := &fakeStore{byTopic: []Match{{Content: "leak", Similarity: 0.99}}}
			emb := llm.NewMockProvider()

			got := newGate(store, emb).Retrieve(context.Background(), tc.query, tc.topic, 3)

			assert.Empty(t, got)
			assert.Zero(t, store.topicCalls)
			assert.Empty(t, emb.Embedded)
		})
	}
}

func TestRetrieve_ExactTopicThreshold(t *testing.T) {
	store := &fakeStore{byTopic: []Match{
		{Content: "relevant", Similarity: 0.9},
		{Content: "weak", Similarity: 0.35},
	}}

	got := newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "How do polynomials behave?", "Polynomials", 3)

	assert.Equal(t, []string{"relevant"}, got)
	assert.Equal(t, 1, store.topicCalls)
	assert.Zero(t, store.allCalls)
	assert.Equal(t, "Polynomials", store.lastTopic)
	assert.Equal(t, 3, store.lastLimit)
}

func TestRetrieve_ThresholdIsInclusive(t *testing.T) {
	store := &fakeStore{byTopic: []Match{{Content: "edge", Similarity: 0.4}}}

	got := newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "explain polynomial degree", "Polynomials", 3)

	assert.Equal(t, []string{"edge"}, got)
}

func TestRetrieve_CrossTopicFallback(t *testing.T) {
	store := &fakeStore{
		byTopic: []Match{{Content: "weak", Similarity: 0.2}},
		all: []Match{
			{Content: "a", Similarity: 0.95},
			{Content: "b", Similarity: 0.85},
			{Content: "exactly-threshold", Similarity: 0.8},
			{Content: "c", Similarity: 0.81},
		},
	}

	got := newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "explain polynomial degree", "Polynomials", 2)

	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, store.allCalls)
	assert.Equal(t, 10, store.lastLimit)
}

func TestRetrieve_CrossTopicWhenTopicEmpty(t *testing.T) {
	store := &fakeStore{all: []Match{{Content: "near", Similarity: 0.7}}}

	got := newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "what is a polynomial", "Polynomials", 3)

	assert.Empty(t, got)
	assert.Equal(t, 1, store.topicCalls)
	assert.Equal(t, 1, store.allCalls)
}

func TestRetrieve_EmbedOnce(t *testing.T) {
	store := &fakeStore{}
	emb := llm.NewMockProvider()

	newGate(store, emb).Retrieve(context.Background(), "what is a polynomial", "Polynomials", 3)

	assert.Len(t, emb.Embedded, 1)
}

func TestRetrieve_ErrorsDegradeToEmpty(t *testing.T) {
	emb := llm.NewMockProvider()
	emb.EmbedErr = errors.New("connection refused")
	store := &fakeStore{byTopic: []Match{{Content: "x", Similarity: 0.9}}}

	assert.Empty(t, newGate(store, emb).Retrieve(context.Background(), "what is a polynomial", "Polynomials", 3))
	assert.Zero(t, store.topicCalls)

	store = &fakeStore{topicErr: errors.New("db down")}
	assert.Empty(t, newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "what is a polynomial", "Polynomials", 3))

	store = &fakeStore{allErr: errors.New("db down")}
	assert.Empty(t, newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "what is a polynomial", "Polynomials", 3))
}

func TestRetrieve_NonPositiveTopK(t *testing.T) {
	store := &fakeStore{byTopic: []Match{{Content: "x", Similarity: 0.9}}}
	assert.Empty(t, newGate(store, llm.NewMockProvider()).Retrieve(context.Background(), "polynomial", "Polynomials", 0))
	assert.Zero(t, store.topicCalls)
}

func TestKeywordTable_ForeignTopic(t *testing.T) {
	table := DefaultKeywordTable()

	topic, ok := table.ForeignTopic("What is the PROBABILITY of rain?", "Polynomials")
	require.True(t, ok)
	assert.Equal(t, "probability", topic)

	topic, ok = table.ForeignTopic("Can you explain this using an example?", "Polynomials")
	require.True(t, ok, "stems match inside words")
	assert.Equal(t, "trigonometry", topic)

	topic, ok = table.ForeignTopic("Generate a medium question about Quadratic Equations", "Quadratic Equations")
	require.True(t, ok, "stems the session topic shares with another topic still count")
	assert.Equal(t, "algebra", topic)

	topic, ok = table.ForeignTopic("what is 2x² here", "Polynomials")
	require.True(t, ok)
	assert.Equal(t, "quadratic equations", topic)

	_, ok = table.ForeignTopic("What is the sine of 30 degrees?", "trigonometry")
	assert.True(t, ok, "degree belongs to polynomials")
}

func TestNewKeywordTable_RejectsEmptyTopic(t *testing.T) {
	_, err := NewKeywordTable(map[string][]string{" ": {"x"}})
	assert.Error(t, err)
}
