package generator

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"

	"quill/config"
	"quill/internal/domain/service"
)

const defaultInitialBackoff = 500 * time.Millisecond

// retryingGenerator decorates a ContentGenerator with bounded
// retry-with-backoff. Once the attempt budget is spent the last error is
// returned unchanged, so the caller's failure handling still applies.
type retryingGenerator struct {
	inner          service.ContentGenerator
	maxRetries     uint64
	initialBackoff time.Duration
}

// WithRetry wraps the generator according to configuration. With maxRetries
// set to zero the generator is returned as-is.
func WithRetry(inner service.ContentGenerator, cfg *config.Config) service.ContentGenerator {
	if cfg == nil || cfg.Generator == nil || cfg.Generator.MaxRetries <= 0 {
		return inner
	}

	initialBackoff := cfg.Generator.InitialBackoff
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}

	return &retryingGenerator{
		inner:          inner,
		maxRetries:     uint64(cfg.Generator.MaxRetries),
		initialBackoff: initialBackoff,
	}
}

// Complete retries the inner generator with exponential backoff until it
// succeeds, the retry budget runs out, or ctx is cancelled.
func (g *retryingGenerator) Complete(ctx context.Context, prompt string) (string, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = g.initialBackoff

	var result string
	operation := func() error {
		text, err := g.inner.Complete(ctx, prompt)
		if err != nil {
			return err
		}
		result = text

		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, g.maxRetries), ctx))
	if err != nil {
		return "", err
	}

	return result, nil
}
