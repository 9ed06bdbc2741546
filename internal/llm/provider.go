package llm

import (
	"context"
	"errors"
)

// Generator turns a prompt into free text.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Embedder turns text into a fixed-width vector matching the content store column.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Provider is a generation endpoint that can do both.
type Provider interface {
	Generator
	Embedder
	ModelID() string
}

type Request struct {
	Prompt string
	// Model overrides the provider's default model when set.
	Model       string
	Temperature float64
	TopP        float64
}

var (
	ErrEmptyResponse  = errors.New("empty response from model")
	ErrEmptyEmbedding = errors.New("empty embedding from model")
)
