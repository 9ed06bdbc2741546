package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OllamaProvider talks to Ollama through its OpenAI-compatible /v1 API.
type OllamaProvider struct {
	client      *openai.Client
	model       string
	embedModel  string
	temperature float64
	topP        float64
}

type OllamaConfig struct {
	BaseURL     string
	Model       string
	EmbedModel  string
	Temperature float64
	TopP        float64
}

func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("ollama base url is required")
	}
	if cfg.Model == "" || cfg.EmbedModel == "" {
		return nil, fmt.Errorf("ollama generation and embedding models are required")
	}

	// Ollama ignores the key but the client requires one.
	config := openai.DefaultConfig("ollama")
	config.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")

	return &OllamaProvider{
		client:      openai.NewClientWithConfig(config),
		model:       cfg.Model,
		embedModel:  cfg.EmbedModel,
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
	}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (string, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}
	temperature := p.temperature
	if req.Temperature > 0 {
		temperature = req.Temperature
	}
	topP := p.topP
	if req.TopP > 0 {
		topP = req.TopP
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(temperature),
		TopP:        float32(topP),
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OllamaProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := p.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.EmbeddingModel(p.embedModel),
	})
	if err != nil {
		return nil, fmt.Errorf("ollama embed: %w", err)
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return resp.Data[0].Embedding, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}
