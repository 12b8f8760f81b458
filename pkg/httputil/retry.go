package httputil

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/deckforge/deckforge/pkg/errors"
)

// RetryableError marks an error as transient so [Retry] attempts the
// operation again. Errors coded NETWORK_ERROR, TIMEOUT or RATE_LIMITED
// are treated as transient without wrapping.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry executes fn up to attempts times, doubling delay after each
// failed attempt. Permanent errors are returned immediately; the last
// transient error is returned when all attempts fail, or ctx.Err() if
// the context is cancelled while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the defaults used by the generator and
// image providers: 3 attempts starting at 1 second.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func isRetryable(err error) bool {
	if stderrors.As(err, new(*RetryableError)) {
		return true
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeNetwork, errors.ErrCodeTimeout, errors.ErrCodeRateLimited:
		return true
	}
	return false
}
