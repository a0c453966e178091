package llm

import (
	"context"
	"time"
)

// retryBackoffBase is the wait before the second attempt; each further
// attempt doubles it (1s, 2s, 4s, ...). Tests shrink it.
var retryBackoffBase = time.Second

type generateFunc func(ctx context.Context, system, prompt string, tier ModelTier) (string, error)

// GenerateContentWithRetry calls GenerateContent with bounded attempts and
// exponential backoff between them. This retries transient network failures
// only; it is independent of any caller-level regeneration loop.
func GenerateContentWithRetry(ctx context.Context, c Client, system, prompt string, tier ModelTier, maxAttempts int) (string, error) {
	return withRetry(ctx, c, c.GenerateContent, system, prompt, tier, maxAttempts)
}

// GenerateJSONWithRetry calls GenerateJSON with bounded attempts and
// exponential backoff between them.
func GenerateJSONWithRetry(ctx context.Context, c Client, system, prompt string, tier ModelTier, maxAttempts int) (string, error) {
	return withRetry(ctx, c, c.GenerateJSON, system, prompt, tier, maxAttempts)
}

func withRetry(ctx context.Context, c Client, generate generateFunc, system, prompt string, tier ModelTier, maxAttempts int) (string, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			// Sleep observes ctx so cancellation is not delayed by a
			// pending backoff.
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryBackoffBase << (attempt - 1)):
			}
		}

		text, err := generate(ctx, system, prompt, tier)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	return "", &APICallError{
		Model:    c.GetModel(tier),
		Attempts: maxAttempts,
		Cause:    lastErr,
	}
}
