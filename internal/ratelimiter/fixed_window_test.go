package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedWindowRateLimiter(t *testing.T) {
	limit := 5
	rl := NewFixedWindowLimiter(limit, time.Second)

	for i := 0; i < limit; i++ {
		allowed, _ := rl.Allow("10.0.0.1")
		if !allowed {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}

	allowed, retryAfter := rl.Allow("10.0.0.1")
	if allowed {
		t.Error("request over the limit should be denied")
	}
	if retryAfter != time.Second {
		t.Errorf("retryAfter = %v, want %v", retryAfter, time.Second)
	}

	// a different client has its own window
	if allowed, _ := rl.Allow("10.0.0.2"); !allowed {
		t.Error("an unrelated client should not be throttled")
	}
}
