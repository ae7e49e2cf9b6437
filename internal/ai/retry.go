package ai

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// RetryConfig holds retry configuration for API calls. Retries are internal
// to this package; once a generation call reports failure upward, the plan
// executor treats it as final.
type RetryConfig struct {
	MaxRetries        int           // Maximum number of retries (default: 3)
	InitialBackoff    time.Duration // Initial backoff duration (default: 1s)
	MaxBackoff        time.Duration // Maximum backoff duration (default: 30s)
	BackoffMultiplier float64       // Backoff multiplier (default: 2.0)
	Timeout           time.Duration // Per-request timeout (default: 120s)
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:        3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
		Timeout:           120 * time.Second,
	}
}

// retryWithBackoff runs fn with the client's rate limiter, per-attempt
// timeout, and exponential backoff on retriable errors.
func (c *Client) retryWithBackoff(ctx context.Context, operation string, fn func(context.Context) error) error {
	var lastErr error
	backoff := c.retry.InitialBackoff

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s rate limit wait: %w", operation, err)
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.retry.Timeout)
		err := fn(attemptCtx)
		cancel()

		if err == nil {
			return nil
		}
		lastErr = err

		if !isRetriableError(err) {
			return err
		}
		if attempt == c.retry.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = time.Duration(float64(backoff) * c.retry.BackoffMultiplier)
		if backoff > c.retry.MaxBackoff {
			backoff = c.retry.MaxBackoff
		}
	}

	return fmt.Errorf("%s failed after %d retries: %w", operation, c.retry.MaxRetries, lastErr)
}

// isRetriableError reports whether an API error is worth retrying.
// Transport hiccups, rate limits, and server-side overload are retriable;
// auth and validation errors are not.
func isRetriableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"rate limit",
		"429",
		"500",
		"502",
		"503",
		"529",
		"overloaded",
		"timeout",
		"deadline exceeded",
		"connection reset",
		"connection refused",
		"eof",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
