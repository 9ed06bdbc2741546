package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/saulo-duarte/adaptive-tutor/internal/adaptive"
	"github.com/saulo-duarte/adaptive-tutor/internal/config"
	"github.com/saulo-duarte/adaptive-tutor/internal/content"
	"github.com/saulo-duarte/adaptive-tutor/internal/llm"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultPause is the gap kept between embedding calls.
const DefaultPause = 100 * time.Millisecond

type Store interface {
	Create(ctx context.Context, item *content.Item) error
	CountByTopic(ctx context.Context, topic string) (int64, error)
}

type Options struct {
	Topic      string
	Type       content.Type
	Difficulty adaptive.Difficulty
}

func (o *Options) normalize() error {
	o.Topic = strings.TrimSpace(o.Topic)
	if o.Topic == "" {
		o.Topic = "General"
	}
	if o.Type == "" {
		o.Type = content.TypeExplanation
	}
	if o.Difficulty == "" {
		o.Difficulty = adaptive.Medium
	}
	if !o.Type.IsValid() {
		return fmt.Errorf("invalid content type %q", o.Type)
	}
	if !o.Difficulty.IsValid() {
		return fmt.Errorf("invalid difficulty %q", o.Difficulty)
	}
	return nil
}

type Summary struct {
	Documents   int
	FailedFiles []string
	Chunks      int
	Stored      int
	Skipped     int
	Failed      int
	TopicTotal  int64
}

type Service struct {
	store    Store
	embedder llm.Embedder
	extract  TextExtractor
	limiter  *rate.Limiter
}

// NewService builds an ingester. A zero pause disables pacing.
func NewService(store Store, embedder llm.Embedder, extract TextExtractor, pause time.Duration) *Service {
	limit := rate.Inf
	if pause > 0 {
		limit = rate.Every(pause)
	}
	if extract == nil {
		extract = ExtractPDF
	}
	return &Service{
		store:    store,
		embedder: embedder,
		extract:  extract,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// IngestDirectory embeds and stores every PDF in dir. A file or chunk that
// fails is logged and skipped; only a bad directory or options abort the run.
func (s *Service) IngestDirectory(ctx context.Context, dir string, opts Options) (*Summary, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	log := config.WithContext(ctx).WithFields(logrus.Fields{"dir": dir, "topic": opts.Topic})

	files, err := pdfFiles(dir)
	if err != nil {
		return nil, err
	}
	log.Infof("Found %d PDF files", len(files))

	summary := &Summary{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		text, err := s.extract(path)
		if err != nil {
			log.WithError(err).WithField("file", filepath.Base(path)).Error("Failed to extract PDF text")
			summary.FailedFiles = append(summary.FailedFiles, filepath.Base(path))
			continue
		}
		summary.Documents++

		chunks := ChunkText(text, DefaultChunkSize, DefaultChunkOverlap)
		summary.Chunks += len(chunks)
		if err := s.storeChunks(ctx, log.WithField("file", filepath.Base(path)), chunks, opts, summary); err != nil {
			return summary, err
		}
	}

	total, err := s.store.CountByTopic(ctx, opts.Topic)
	if err != nil {
		log.WithError(err).Warn("Failed to count stored content")
	}
	summary.TopicTotal = total

	log.WithFields(logrus.Fields{
		"documents": summary.Documents,
		"stored":    summary.Stored,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	}).Info("Ingestion finished")
	return summary, nil
}

func (s *Service) storeChunks(ctx context.Context, log logrus.FieldLogger, chunks []string, opts Options, summary *Summary) error {
	for i, raw := range chunks {
		chunk := CleanText(raw)
		if len(chunk) < MinChunkLength {
			summary.Skipped++
			continue
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		vec, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			log.WithError(err).Errorf("Failed to embed chunk %d/%d", i+1, len(chunks))
			summary.Failed++
			continue
		}

		item := &content.Item{
			Topic:      opts.Topic,
			Type:       opts.Type,
			Difficulty: opts.Difficulty,
			Content:    chunk,
			Embedding:  pgvector.NewVector(vec),
		}
		if err := s.store.Create(ctx, item); err != nil {
			log.WithError(err).Errorf("Failed to store chunk %d/%d", i+1, len(chunks))
			summary.Failed++
			continue
		}
		summary.Stored++
		log.Debugf("Stored chunk %d/%d", i+1, len(chunks))
	}
	return nil
}

func pdfFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
