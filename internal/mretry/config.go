// Package mretry is a retry combinator: an explicit {max_attempts,
// min_delay, max_delay, jitter} configuration plus a Do(ctx, fn) that drives
// github.com/cenkalti/backoff/v4 with it (Design Note: "Retry decorator" →
// an explicit retry combinator taking a config and a cancellation token).
package mretry

import (
	"fmt"
	"time"
)

// The Default* values mirror the teacher's pkg/mretry outbox defaults; the
// Rpc* values are the RPC retry policy of spec.md §4.4 (5 attempts, base
// 0.2s, cap 2.0s).
const (
	DefaultMaxRetries     = 10
	DefaultInitialBackoff = 1 * time.Second
	DefaultMaxBackoff     = 30 * time.Minute
	DefaultJitterFactor   = 0.25

	// RpcMaxRetries and friends are the concrete policy spec.md §4.4 mandates
	// for send_and_confirm.
	RpcMaxRetries     = 5
	RpcInitialBackoff = 200 * time.Millisecond
	RpcMaxBackoff     = 2 * time.Second
	RpcJitterFactor   = 0.25
)

// Config is a fluent, validated retry policy.
type Config struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	JitterFactor   float64
}

// DefaultMetadataOutboxConfig returns the teacher-shaped generic default
// policy (kept for callers that don't need the tighter RPC policy).
func DefaultMetadataOutboxConfig() Config {
	return Config{
		MaxRetries:     DefaultMaxRetries,
		InitialBackoff: DefaultInitialBackoff,
		MaxBackoff:     DefaultMaxBackoff,
		JitterFactor:   DefaultJitterFactor,
	}
}

// DefaultRpcConfig is the policy spec.md §4.4 requires for send_and_confirm:
// up to 5 attempts, base 0.2s, cap 2.0s, with jitter.
func DefaultRpcConfig() Config {
	return Config{
		MaxRetries:     RpcMaxRetries,
		InitialBackoff: RpcInitialBackoff,
		MaxBackoff:     RpcMaxBackoff,
		JitterFactor:   RpcJitterFactor,
	}
}

func (c Config) WithMaxRetries(n int) Config {
	c.MaxRetries = n
	return c
}

func (c Config) WithInitialBackoff(d time.Duration) Config {
	c.InitialBackoff = d
	return c
}

func (c Config) WithMaxBackoff(d time.Duration) Config {
	c.MaxBackoff = d
	return c
}

func (c Config) WithJitterFactor(f float64) Config {
	c.JitterFactor = f
	return c
}

// ConfigValidationError reports which field of a Config failed validation.
type ConfigValidationError struct {
	Field   string
	Message string
}

func (e ConfigValidationError) Error() string {
	return fmt.Sprintf("mretry: invalid %s: %s", e.Field, e.Message)
}

// Validate checks the policy is internally consistent.
func (c Config) Validate() error {
	if c.MaxRetries < 1 {
		return ConfigValidationError{Field: "MaxRetries", Message: "must be >= 1"}
	}
	if c.InitialBackoff <= 0 {
		return ConfigValidationError{Field: "InitialBackoff", Message: "must be > 0"}
	}
	if c.MaxBackoff <= 0 {
		return ConfigValidationError{Field: "MaxBackoff", Message: "must be > 0"}
	}
	if c.MaxBackoff < c.InitialBackoff {
		return ConfigValidationError{Field: "MaxBackoff", Message: "must be >= InitialBackoff"}
	}
	if c.JitterFactor < 0.0 || c.JitterFactor > 1.0 {
		return ConfigValidationError{Field: "JitterFactor", Message: "must be in range [0.0, 1.0]"}
	}
	return nil
}
