package mretry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMetadataOutboxConfig(t *testing.T) {
	cfg := DefaultMetadataOutboxConfig()

	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultInitialBackoff, cfg.InitialBackoff)
	assert.Equal(t, DefaultMaxBackoff, cfg.MaxBackoff)
	assert.Equal(t, DefaultJitterFactor, cfg.JitterFactor)
}

func TestDefaultRpcConfig(t *testing.T) {
	cfg := DefaultRpcConfig()

	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.InitialBackoff)
	assert.Equal(t, 2*time.Second, cfg.MaxBackoff)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithMaxRetries(t *testing.T) {
	cfg := DefaultMetadataOutboxConfig().WithMaxRetries(5)

	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, DefaultInitialBackoff, cfg.InitialBackoff)
}

func TestConfig_Chaining(t *testing.T) {
	cfg := DefaultMetadataOutboxConfig().
		WithMaxRetries(5).
		WithInitialBackoff(2 * time.Second).
		WithMaxBackoff(1 * time.Hour).
		WithJitterFactor(0.5)

	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.InitialBackoff)
	assert.Equal(t, 1*time.Hour, cfg.MaxBackoff)
	assert.Equal(t, 0.5, cfg.JitterFactor)
}

func TestConfig_Validate_InvalidMaxRetries(t *testing.T) {
	cfg := DefaultMetadataOutboxConfig().WithMaxRetries(0)
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MaxRetries")
	assert.Contains(t, err.Error(), "must be >= 1")
}

func TestConfig_Validate_MaxBackoffLessThanInitial(t *testing.T) {
	cfg := Config{
		MaxRetries:     10,
		InitialBackoff: 10 * time.Second,
		MaxBackoff:     5 * time.Second,
		JitterFactor:   0.25,
	}
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be >= InitialBackoff")
}

func TestConfig_Validate_InvalidJitterFactor(t *testing.T) {
	cfg := DefaultMetadataOutboxConfig().WithJitterFactor(1.1)
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JitterFactor")
}

func TestConfigValidationError_Error(t *testing.T) {
	err := ConfigValidationError{Field: "TestField", Message: "test message"}
	assert.Equal(t, "mretry: invalid TestField: test message", err.Error())
}

func TestDo_SucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	cfg := DefaultMetadataOutboxConfig().
		WithMaxRetries(3).
		WithInitialBackoff(time.Millisecond).
		WithMaxBackoff(time.Millisecond)

	err := Do(contextBackground(), cfg, func() error {
		attempts++
		if attempts < 3 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestDo_ExhaustsRetries(t *testing.T) {
	attempts := 0
	cfg := DefaultMetadataOutboxConfig().
		WithMaxRetries(2).
		WithInitialBackoff(time.Millisecond).
		WithMaxBackoff(time.Millisecond)

	err := Do(contextBackground(), cfg, func() error {
		attempts++
		return errTransient
	})

	assert.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDo_PermanentStopsImmediately(t *testing.T) {
	attempts := 0
	cfg := DefaultMetadataOutboxConfig().WithMaxRetries(5)

	err := Do(contextBackground(), cfg, func() error {
		attempts++
		return Permanent(errTransient)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
