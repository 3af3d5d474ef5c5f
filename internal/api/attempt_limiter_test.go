package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterBlocksAfterLimit(t *testing.T) {
	limiter := newAttemptLimiter()
	now := time.Now()
	window := 15 * time.Minute

	for attempt := 0; attempt < 5; attempt++ {
		if limiter.tooManyRecent("1.2.3.4", now, 5, window) {
			t.Fatalf("expected attempt %d to be allowed", attempt)
		}
		limiter.addFailure("1.2.3.4", now, window)
	}

	if !limiter.tooManyRecent("1.2.3.4", now, 5, window) {
		t.Fatalf("expected sixth attempt to be blocked")
	}
	if limiter.tooManyRecent("5.6.7.8", now, 5, window) {
		t.Fatalf("expected another address to be unaffected")
	}
}

func TestAttemptLimiterWindowExpiry(t *testing.T) {
	limiter := newAttemptLimiter()
	now := time.Now()
	window := 15 * time.Minute

	for attempt := 0; attempt < 5; attempt++ {
		limiter.addFailure("1.2.3.4", now, window)
	}
	if !limiter.tooManyRecent("1.2.3.4", now, 5, window) {
		t.Fatalf("expected block inside the window")
	}

	later := now.Add(window + time.Minute)
	if limiter.tooManyRecent("1.2.3.4", later, 5, window) {
		t.Fatalf("expected old failures to expire")
	}
}

func TestAttemptLimiterReset(t *testing.T) {
	limiter := newAttemptLimiter()
	now := time.Now()
	window := 15 * time.Minute

	for attempt := 0; attempt < 5; attempt++ {
		limiter.addFailure("1.2.3.4", now, window)
	}
	limiter.reset("1.2.3.4")
	if limiter.tooManyRecent("1.2.3.4", now, 5, window) {
		t.Fatalf("expected reset to clear recorded failures")
	}
}
