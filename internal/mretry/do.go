package mretry

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
)

// Permanent wraps an error that must not be retried — the same signal
// backoff.Permanent uses, re-exported so callers don't need to import
// cenkalti/backoff directly.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do runs fn under the policy in c, retrying on any error fn returns that
// isn't wrapped in Permanent, until MaxRetries attempts are exhausted or ctx
// is cancelled. It returns the last error on exhaustion.
func Do(ctx context.Context, c Config, fn func() error) error {
	if err := c.Validate(); err != nil {
		return err
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = c.InitialBackoff
	eb.MaxInterval = c.MaxBackoff
	eb.RandomizationFactor = c.JitterFactor
	eb.Multiplier = 2.0
	eb.MaxElapsedTime = 0 // bounded by MaxRetries, not wall-clock

	policy := backoff.WithMaxRetries(eb, uint64(c.MaxRetries-1))
	policy2 := backoff.WithContext(policy, ctx)

	var lastErr error
	err := backoff.Retry(func() error {
		lastErr = fn()
		return lastErr
	}, policy2)

	if err == nil {
		return nil
	}

	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Unwrap()
	}

	if lastErr != nil {
		return lastErr
	}
	return err
}
