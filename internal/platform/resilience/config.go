package resilience

import (
	"fmt"
	"time"
)

// CircuitBreakerConfig tunes the breaker in front of the stats backend.
// A zero field falls back to StatsBackendDefaults.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit.
	FailureThreshold int
	// OpenTimeout is how long calls are rejected before trial requests go
	// through again.
	OpenTimeout time.Duration
	// HalfOpenMaxReq caps concurrent trial requests and is also the number
	// of successes needed to close the circuit.
	HalfOpenMaxReq int
}

// StatsBackendDefaults suits a page fetching a handful of resources per
// request: a broken backend opens the circuit after one failed page load.
func StatsBackendDefaults() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

// Validate rejects explicit settings the breaker cannot run with.
// A disabled breaker is always valid.
func (c CircuitBreakerConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.FailureThreshold < 1 {
		return fmt.Errorf("circuit breaker failure threshold must be >= 1, got %d", c.FailureThreshold)
	}
	if c.OpenTimeout <= 0 {
		return fmt.Errorf("circuit breaker open timeout must be positive, got %s", c.OpenTimeout)
	}
	if c.HalfOpenMaxReq < 1 {
		return fmt.Errorf("circuit breaker half-open requests must be >= 1, got %d", c.HalfOpenMaxReq)
	}
	return nil
}

func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	defaults := StatsBackendDefaults()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}
