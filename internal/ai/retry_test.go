package ai

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newRetryTestClient(maxRetries int) *Client {
	return &Client{
		retry: RetryConfig{
			MaxRetries:        maxRetries,
			InitialBackoff:    time.Millisecond,
			MaxBackoff:        5 * time.Millisecond,
			BackoffMultiplier: 2.0,
			Timeout:           time.Second,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestRetryWithBackoff_SucceedsFirstAttempt(t *testing.T) {
	c := newRetryTestClient(3)

	calls := 0
	err := c.retryWithBackoff(context.Background(), "test", func(ctx context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got: %d", calls)
	}
}

func TestRetryWithBackoff_RetriesTransientErrors(t *testing.T) {
	c := newRetryTestClient(3)

	calls := 0
	err := c.retryWithBackoff(context.Background(), "test", func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("529 overloaded")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected eventual success, got: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got: %d", calls)
	}
}

func TestRetryWithBackoff_GivesUpAfterMaxRetries(t *testing.T) {
	c := newRetryTestClient(2)

	calls := 0
	err := c.retryWithBackoff(context.Background(), "test", func(ctx context.Context) error {
		calls++
		return errors.New("connection reset")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 3 { // initial attempt + 2 retries
		t.Errorf("expected 3 calls, got: %d", calls)
	}
}

func TestRetryWithBackoff_StopsOnNonRetriableError(t *testing.T) {
	c := newRetryTestClient(3)

	calls := 0
	err := c.retryWithBackoff(context.Background(), "test", func(ctx context.Context) error {
		calls++
		return errors.New("401 invalid api key")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got: %d", calls)
	}
}

func TestRetryWithBackoff_RespectsContextCancellation(t *testing.T) {
	c := newRetryTestClient(5)

	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := c.retryWithBackoff(ctx, "test", func(attemptCtx context.Context) error {
		calls++
		cancel()
		return errors.New("timeout")
	})
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got: %d", calls)
	}
}

func TestIsRetriableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("rate limit exceeded"), true},
		{errors.New("HTTP 429 Too Many Requests"), true},
		{errors.New("server overloaded"), true},
		{errors.New("context deadline exceeded"), true},
		{errors.New("connection refused"), true},
		{errors.New("invalid request: missing field"), false},
		{errors.New("401 unauthorized"), false},
	}
	for _, tt := range tests {
		if got := isRetriableError(tt.err); got != tt.want {
			t.Errorf("isRetriableError(%v): expected %v, got %v", tt.err, tt.want, got)
		}
	}
}

func TestGetModel_EnvOverride(t *testing.T) {
	t.Setenv("FORMA_MODEL", "claude-test-model")
	if got := GetModel(); got != "claude-test-model" {
		t.Errorf("expected env override, got: %s", got)
	}

	t.Setenv("FORMA_MODEL", "")
	if got := GetModel(); got != ModelDefault {
		t.Errorf("expected default model, got: %s", got)
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	if _, err := NewClient(Config{}); err == nil {
		t.Error("expected an error without an API key")
	}
}
