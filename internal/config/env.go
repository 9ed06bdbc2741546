package config

import (
	"os"
	"strconv"
	"time"
)

type Settings struct {
	Port           string
	DatabaseDSN    string
	LogLevel       string
	CorsOrigin     string
	RequestTimeout time.Duration

	LLMProvider       string
	OllamaBaseURL     string
	OllamaModel       string
	OllamaEmbedModel  string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiEmbedModel  string
	Temperature       float64
	TopP              float64
	GenerationTimeout time.Duration
	EmbeddingTimeout  time.Duration
	EmbeddingDims     int

	TopicKeywordsFile string
	CurriculumLevel   string
	CurriculumRegion  string
}

func Load() Settings {
	return Settings{
		Port:           GetEnv("PORT", "3000"),
		DatabaseDSN:    GetEnv("DATABASE_DSN", "postgres://postgres@localhost:5432/ai_tutor_dev?sslmode=disable"),
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
		CorsOrigin:     GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		RequestTimeout: GetEnvDuration("REQUEST_TIMEOUT", 2*time.Minute),

		LLMProvider:       GetEnv("LLM_PROVIDER", "ollama"),
		OllamaBaseURL:     GetEnv("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		OllamaModel:       GetEnv("OLLAMA_MODEL", "mistral:7b"),
		OllamaEmbedModel:  GetEnv("OLLAMA_EMBED_MODEL", "nomic-embed-text"),
		GeminiAPIKey:      GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:       GetEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiEmbedModel:  GetEnv("GEMINI_EMBED_MODEL", "text-embedding-004"),
		Temperature:       GetEnvFloat("LLM_TEMPERATURE", 0.7),
		TopP:              GetEnvFloat("LLM_TOP_P", 0.9),
		GenerationTimeout: GetEnvDuration("GENERATION_TIMEOUT", 90*time.Second),
		EmbeddingTimeout:  GetEnvDuration("EMBEDDING_TIMEOUT", 15*time.Second),
		EmbeddingDims:     GetEnvInt("EMBEDDING_DIMENSIONS", 768),

		TopicKeywordsFile: GetEnv("TOPIC_KEYWORDS_FILE", ""),
		CurriculumLevel:   GetEnv("CURRICULUM_LEVEL", "Class 10 CBSE"),
		CurriculumRegion:  GetEnv("CURRICULUM_REGION", "Indian"),
	}
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Logger.WithField("key", key).Warnf("invalid integer %q, using %d", v, fallback)
		return fallback
	}
	return n
}

func GetEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		Logger.WithField("key", key).Warnf("invalid number %q, using %v", v, fallback)
		return fallback
	}
	return f
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		Logger.WithField("key", key).Warnf("invalid duration %q, using %s", v, fallback)
		return fallback
	}
	return d
}
