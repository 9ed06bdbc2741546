package llm

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/adaptive-tutor/internal/config"
)

// NewProvider builds the configured provider wrapped with call timeouts.
func NewProvider(ctx context.Context, s config.Settings) (Provider, error) {
	var base Provider
	var err error

	switch s.LLMProvider {
	case "ollama":
		base, err = NewOllamaProvider(OllamaConfig{
			BaseURL:     s.OllamaBaseURL,
			Model:       s.OllamaModel,
			EmbedModel:  s.OllamaEmbedModel,
			Temperature: s.Temperature,
			TopP:        s.TopP,
		})
	case "gemini":
		base, err = NewGeminiProvider(ctx, GeminiConfig{
			APIKey:      s.GeminiAPIKey,
			Model:       s.GeminiModel,
			EmbedModel:  s.GeminiEmbedModel,
			Dimensions:  s.EmbeddingDims,
			Temperature: s.Temperature,
			TopP:        s.TopP,
		})
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", s.LLMProvider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", s.LLMProvider, err)
	}

	config.Logger.WithField("provider", s.LLMProvider).WithField("model", base.ModelID()).Info("LLM provider ready")
	return WithTimeout(base, s.GenerationTimeout, s.EmbeddingTimeout), nil
}
