package resilience

import (
	"errors"
	"testing"
	"time"
)

var errBackendDown = errors.New("backend down")

func failing() error { return errBackendDown }
func passing() error { return nil }

func TestBreaker_OpensAndRecovers(t *testing.T) {
	b := NewBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Do(failing, nil); !errors.Is(err, errBackendDown) {
		t.Fatalf("expected call error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Do(failing, nil)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	err := b.Do(func() error { called = true; return nil }, nil)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if called {
		t.Fatalf("open breaker must not run the call")
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open after timeout, got %s", state)
	}
	if err := b.Do(passing, nil); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_IgnoresNonCountedErrors(t *testing.T) {
	b := NewBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	rejected := errors.New("club already exists")

	for i := 0; i < 3; i++ {
		_ = b.Do(func() error { return rejected }, func(err error) bool { return !errors.Is(err, rejected) })
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("business errors must not open the breaker, got %s", state)
	}
}

func TestBreaker_Disabled(t *testing.T) {
	b := NewBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 5; i++ {
		if err := b.Do(failing, nil); !errors.Is(err, errBackendDown) {
			t.Fatalf("disabled breaker must pass errors through, got %v", err)
		}
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("disabled breaker must stay closed, got %s", state)
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	cfg := CircuitBreakerConfig{Enabled: true}.withDefaults()
	defaults := StatsBackendDefaults()
	if cfg.FailureThreshold != defaults.FailureThreshold || cfg.OpenTimeout != defaults.OpenTimeout || cfg.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("unexpected config with defaults: %+v", cfg)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     CircuitBreakerConfig
		wantErr bool
	}{
		{name: "defaults", cfg: StatsBackendDefaults()},
		{name: "disabled ignores zero values", cfg: CircuitBreakerConfig{}},
		{name: "zero threshold", cfg: CircuitBreakerConfig{Enabled: true, FailureThreshold: 0, OpenTimeout: time.Second, HalfOpenMaxReq: 1}, wantErr: true},
		{name: "zero open timeout", cfg: CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, HalfOpenMaxReq: 1}, wantErr: true},
		{name: "zero half-open requests", cfg: CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected validation error for %+v", tc.cfg)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}
