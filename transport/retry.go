package transport

import (
	"context"
	"math"
	"net/http"
	"time"
)

// tooManyRequests is the error code the API puts in its error collection when
// a request was throttled.
const tooManyRequests = "too many requests"

// RetryPolicy describes the exponential backoff applied to rate-limited
// responses: the n-th retry waits Unit * Base^n.
type RetryPolicy struct {
	Base float64
	Unit time.Duration
	// MaxAttempts caps the number of retries. Zero means unbounded.
	MaxAttempts int
}

// DefaultRetryPolicy waits 2s, 4s, 8s, ... and never gives up. A persistent
// rate limit blocks the caller until its context is cancelled.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Base: 2, Unit: time.Second}
}

// maxDelay is the longest wait Delay reports; later attempts saturate here.
const maxDelay = time.Duration(math.MaxInt64)

// Delay returns the wait before the given (1-based) retry attempt.
func (p RetryPolicy) Delay(attempt int) time.Duration {
	delay := float64(p.Unit) * math.Pow(p.Base, float64(attempt))
	if math.IsNaN(delay) || delay >= float64(maxDelay) {
		return maxDelay
	}
	return time.Duration(delay)
}

// IsRateLimited reports whether the response is a 403 whose error collection
// contains the "too many requests" code. A 403 without that structure is not
// treated as throttling.
func IsRateLimited(resp *Response) bool {
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		return false
	}
	for _, entry := range resp.errorEntries() {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if code, _ := fields["error"].(string); code == tooManyRequests {
			return true
		}
	}
	return false
}

// withRetry runs request until it yields a response that is not rate limited.
// Transport failures are returned immediately and never retried.
func (t *Transport) withRetry(ctx context.Context, request func() (*Response, error)) (*Response, error) {
	attempt := 0
	for {
		resp, err := request()
		if err != nil {
			return nil, err
		}
		if !IsRateLimited(resp) {
			return resp, nil
		}

		attempt++
		if t.retry.MaxAttempts > 0 && attempt > t.retry.MaxAttempts {
			return nil, &RateLimitError{Attempts: attempt - 1}
		}

		delay := t.retry.Delay(attempt)
		t.warnf("too many requests, sleeping for %s", delay)

		select {
		case <-t.clock.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
