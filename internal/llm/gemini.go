package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

type GeminiProvider struct {
	client      *genai.Client
	model       string
	embedModel  string
	dimensions  int32
	temperature float64
	topP        float64
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	EmbedModel  string
	Dimensions  int
	Temperature float64
	TopP        float64
}

func NewGeminiProvider(ctx context.Context, cfg GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       cfg.Model,
		embedModel:  cfg.EmbedModel,
		dimensions:  int32(cfg.Dimensions),
		temperature: cfg.Temperature,
		topP:        cfg.TopP,
	}, nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req Request) (string, error) {
	model := p.model
	if req.Model != "" {
		model = req.Model
	}

	temp := float32(p.temperature)
	if req.Temperature > 0 {
		temp = float32(req.Temperature)
	}
	topP := float32(p.topP)
	if req.TopP > 0 {
		topP = float32(req.TopP)
	}

	result, err := p.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature: &temp,
		TopP:        &topP,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	var cfg *genai.EmbedContentConfig
	if p.dimensions > 0 {
		dims := p.dimensions
		cfg = &genai.EmbedContentConfig{OutputDimensionality: &dims}
	}

	result, err := p.client.Models.EmbedContent(ctx, p.embedModel, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini embed: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return result.Embeddings[0].Values, nil
}

func (p *GeminiProvider) ModelID() string {
	return p.model
}
