package llm

import (
	"context"
	"sync"
)

// MockProvider returns canned generations and embeddings in FIFO order and
// records every prompt and embedded text.
type MockProvider struct {
	mu          sync.Mutex
	generations []MockResult
	embeddings  [][]float32
	EmbedErr    error
	Prompts     []string
	Embedded    []string
}

type MockResult struct {
	Text string
	Err  error
}

func NewMockProvider(generations ...MockResult) *MockProvider {
	return &MockProvider{generations: generations}
}

func (m *MockProvider) QueueEmbedding(vec []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.embeddings = append(m.embeddings, vec)
}

func (m *MockProvider) Generate(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Prompts = append(m.Prompts, req.Prompt)
	if len(m.generations) == 0 {
		return "", ErrEmptyResponse
	}
	next := m.generations[0]
	m.generations = m.generations[1:]
	return next.Text, next.Err
}

func (m *MockProvider) Embed(_ context.Context, text string) ([]float32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Embedded = append(m.Embedded, text)
	if m.EmbedErr != nil {
		return nil, m.EmbedErr
	}
	if len(m.embeddings) == 0 {
		return []float32{1, 0, 0}, nil
	}
	vec := m.embeddings[0]
	m.embeddings = m.embeddings[1:]
	return vec, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}
