package middleware

import (
	"testing"
)

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	rl := newRateLimiter(600) // burst of 60

	for i := 0; i < 10; i++ {
		if err := rl.Allow("10.0.0.1"); err != nil {
			t.Fatalf("request %d rejected: %v", i, err)
		}
	}
}

func TestRateLimiterRejectsBurstOverflow(t *testing.T) {
	rl := newRateLimiter(10) // burst of 1

	if err := rl.Allow("10.0.0.1"); err != nil {
		t.Fatalf("first request rejected: %v", err)
	}
	if err := rl.Allow("10.0.0.1"); err == nil {
		t.Error("burst overflow was not rejected")
	}
	// Other sources keep their own budget.
	if err := rl.Allow("10.0.0.2"); err != nil {
		t.Errorf("independent source rejected: %v", err)
	}
}

func TestRateLimiterZeroConfigFallsBack(t *testing.T) {
	rl := newRateLimiter(0)
	if err := rl.Allow("10.0.0.1"); err != nil {
		t.Errorf("fallback limiter rejected first request: %v", err)
	}
}
