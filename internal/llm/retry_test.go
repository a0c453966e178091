package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastBackoff(t *testing.T) {
	t.Helper()
	old := retryBackoffBase
	retryBackoffBase = time.Millisecond
	t.Cleanup(func() { retryBackoffBase = old })
}

func TestGenerateJSONWithRetry_FirstAttemptSucceeds(t *testing.T) {
	client := NewMockClient(MockResponse{Text: `{"ok": true}`})

	text, err := GenerateJSONWithRetry(context.Background(), client, "sys", "prompt", TierStandard, 3)

	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, 1, client.Calls())
}

func TestGenerateJSONWithRetry_RecoversAfterTransientFailure(t *testing.T) {
	fastBackoff(t)
	client := NewMockClient(
		MockResponse{Err: errors.New("rate limited")},
		MockResponse{Text: `{"ok": true}`},
	)

	text, err := GenerateJSONWithRetry(context.Background(), client, "sys", "prompt", TierStandard, 3)

	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, text)
	assert.Equal(t, 2, client.Calls())
}

func TestGenerateJSONWithRetry_Exhaustion(t *testing.T) {
	fastBackoff(t)
	client := NewMockClient(MockResponse{Err: errors.New("boom")})

	_, err := GenerateJSONWithRetry(context.Background(), client, "sys", "prompt", TierStandard, 3)

	require.Error(t, err)
	var apiErr *APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 3, apiErr.Attempts)
	assert.Equal(t, "mock-standard", apiErr.Model)
	assert.EqualError(t, apiErr.Cause, "boom")
	assert.Equal(t, 3, client.Calls())
}

func TestGenerateContentWithRetry_ContextCancelledDuringBackoff(t *testing.T) {
	client := NewMockClient(MockResponse{Err: errors.New("boom")})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := GenerateContentWithRetry(ctx, client, "sys", "prompt", TierStandard, 3)
		done <- err
	}()

	// First attempt fails immediately; cancel while the 1s backoff is pending.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, client.Calls())
	case <-time.After(2 * time.Second):
		t.Fatal("retry did not observe cancellation")
	}
}

func TestGenerateContentWithRetry_CancelledBeforeCall(t *testing.T) {
	client := NewMockClient(MockResponse{Text: "unused"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateContentWithRetry(ctx, client, "sys", "prompt", TierStandard, 3)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, client.Calls())
}

func TestWithRetry_MinimumOneAttempt(t *testing.T) {
	client := NewMockClient(MockResponse{Text: "ok"})

	text, err := GenerateContentWithRetry(context.Background(), client, "", "prompt", TierLite, 0)

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 1, client.Calls())
}

func TestAPICallError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &APICallError{Model: "gemini-2.5-flash", Attempts: 3, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "gemini-2.5-flash")
}
