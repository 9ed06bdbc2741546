package llm

import (
	"context"
	"fmt"
	"time"
)

type timeoutProvider struct {
	next         Provider
	generateWait time.Duration
	embedWait    time.Duration
}

// WithTimeout bounds every call to the wrapped provider. A zero duration leaves
// that call unbounded.
func WithTimeout(next Provider, generate, embed time.Duration) Provider {
	return &timeoutProvider{next: next, generateWait: generate, embedWait: embed}
}

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (string, error) {
	if p.generateWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.generateWait)
		defer cancel()
	}
	out, err := p.next.Generate(ctx, req)
	if err != nil && ctx.Err() != nil {
		return "", fmt.Errorf("generation timed out after %s: %w", p.generateWait, err)
	}
	return out, err
}

func (p *timeoutProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	if p.embedWait > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.embedWait)
		defer cancel()
	}
	out, err := p.next.Embed(ctx, text)
	if err != nil && ctx.Err() != nil {
		return nil, fmt.Errorf("embedding timed out after %s: %w", p.embedWait, err)
	}
	return out, err
}

func (p *timeoutProvider) ModelID() string {
	return p.next.ModelID()
}
