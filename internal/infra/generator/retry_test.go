package generator

import (
	"context"
	"testing"
	"time"

	"quill/config"
	mockSvc "quill/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retryConfig(maxRetries int) *config.Config {
	return &config.Config{
		Generator: &config.GeneratorConfig{
			MaxRetries:     maxRetries,
			InitialBackoff: time.Millisecond,
		},
	}
}

func TestWithRetry_DisabledReturnsInnerUnchanged(t *testing.T) {
	inner := mockSvc.NewMockContentGenerator(t)

	assert.Same(t, inner, WithRetry(inner, retryConfig(0)))
	assert.Same(t, inner, WithRetry(inner, &config.Config{}))
	assert.Same(t, inner, WithRetry(inner, nil))
}

func TestRetryingGenerator_SucceedsAfterTransientFailure(t *testing.T) {
	inner := mockSvc.NewMockContentGenerator(t)
	ctx := context.Background()

	inner.EXPECT().
		Complete(ctx, "prompt").
		Return("", errors.New("transient")).
		Once()
	inner.EXPECT().
		Complete(ctx, "prompt").
		Return("recovered", nil).
		Once()

	generator := WithRetry(inner, retryConfig(2))

	text, err := generator.Complete(ctx, "prompt")

	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
}

func TestRetryingGenerator_ExhaustedBudgetReturnsLastError(t *testing.T) {
	inner := mockSvc.NewMockContentGenerator(t)
	ctx := context.Background()

	// One initial attempt plus two retries.
	inner.EXPECT().
		Complete(ctx, "prompt").
		Return("", errors.New("still down")).
		Times(3)

	generator := WithRetry(inner, retryConfig(2))

	text, err := generator.Complete(ctx, "prompt")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "still down")
}

func TestRetryingGenerator_ContextCancellationStopsRetries(t *testing.T) {
	inner := mockSvc.NewMockContentGenerator(t)
	ctx, cancel := context.WithCancel(context.Background())

	inner.EXPECT().
		Complete(ctx, "prompt").
		RunAndReturn(func(ctx context.Context, prompt string) (string, error) {
			cancel()
			return "", errors.New("transient")
		}).
		Once()

	generator := WithRetry(inner, retryConfig(5))

	_, err := generator.Complete(ctx, "prompt")

	require.Error(t, err)
}
