package folio

import (
	"net/http"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestLimiter(max int, window time.Duration) (*ipLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := newIPLimiter(max, window)
	l.now = clock.now
	return l, clock
}

func TestIPLimiterBlocksAfterMax(t *testing.T) {
	limiter, _ := newTestLimiter(2, time.Minute)
	ip := "203.0.113.10"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first event to be allowed")
	}
	if !limiter.Allow(ip) {
		t.Fatalf("expected second event to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected third event to be blocked")
	}
}

func TestIPLimiterResetsAfterWindow(t *testing.T) {
	limiter, clock := newTestLimiter(1, time.Minute)
	ip := "203.0.113.20"

	if !limiter.Allow(ip) {
		t.Fatalf("expected first event to be allowed")
	}
	if limiter.Allow(ip) {
		t.Fatalf("expected second event to be blocked")
	}

	clock.t = clock.t.Add(61 * time.Second)
	if !limiter.Allow(ip) {
		t.Fatalf("expected event after window to be allowed")
	}
}

func TestIPLimiterIsPerIP(t *testing.T) {
	limiter, _ := newTestLimiter(1, time.Minute)

	if !limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be allowed")
	}
	if !limiter.Allow("203.0.113.31") {
		t.Fatalf("expected second ip to be allowed independently")
	}
	if limiter.Allow("203.0.113.30") {
		t.Fatalf("expected first ip to be blocked after max")
	}
}

func TestIPLimiterPrunesIdleIPs(t *testing.T) {
	limiter, clock := newTestLimiter(1, time.Minute)
	limiter.Allow("203.0.113.40")
	clock.t = clock.t.Add(2 * time.Minute)
	limiter.Allow("203.0.113.41")
	if _, ok := limiter.hits["203.0.113.40"]; ok {
		t.Error("idle ip should have been pruned")
	}
}

func TestMediaResizeIsRateLimited(t *testing.T) {
	a := setupTestApp(t, testContent(t))
	a.resizeLimiter, _ = newTestLimiter(1, time.Minute)

	if rec := get(a, "/media/me.png?w=10", false); rec.Code != http.StatusOK {
		t.Fatalf("first resize = %d, want 200", rec.Code)
	}
	// Memoised renditions are not limited.
	if rec := get(a, "/media/me.png?w=10", false); rec.Code != http.StatusOK {
		t.Fatalf("cached resize = %d, want 200", rec.Code)
	}
	if rec := get(a, "/media/me.png?w=12", false); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second new resize = %d, want 429", rec.Code)
	}
}
