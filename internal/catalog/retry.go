package catalog

import (
	"context"
	"time"
)

// Retry policy for the single-product read path. The upstream is known to
// drop connections intermittently; a short fixed delay between a handful of
// attempts masks that without masking genuine absence.
const retryMaxAttempts = 5

// Vars rather than consts so tests can shrink the waits.
var (
	retryDelay   = 1200 * time.Millisecond
	retryTimeout = 15 * time.Second
)

// GetProductWithRetry fetches one product, retrying transient failures up to
// retryMaxAttempts with a fixed delay. Each attempt runs under its own
// timeout that aborts the in-flight request. A confirmed 404 short-circuits
// immediately, as does cancellation of the parent context.
func (c *Client) GetProductWithRetry(ctx context.Context, id int64) (*Product, error) {
	var lastErr error
	for attempt := 1; attempt <= retryMaxAttempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, retryTimeout)
		product, err := c.GetProduct(attemptCtx, id)
		cancel()
		if err == nil {
			return product, nil
		}
		if IsNotFound(err) {
			return nil, err
		}
		lastErr = err

		if attempt == retryMaxAttempts {
			break
		}
		timer := time.NewTimer(retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, &APIError{Message: ctx.Err().Error()}
		case <-timer.C:
		}
	}
	return nil, lastErr
}
