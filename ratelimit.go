package folio

import (
	"sync"
	"time"
)

// ipLimiter allows at most max events per client IP within a sliding window.
// It guards work that is expensive to repeat, such as resizing an image that
// is not memoised yet.
type ipLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	now    func() time.Time
	sweep  time.Time
}

func newIPLimiter(max int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		now:    time.Now,
	}
}

// Allow records an event for ip and reports whether it is within the limit.
// Rejected events are not recorded.
func (l *ipLimiter) Allow(ip string) bool {
	now := l.now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.sweep) >= l.window {
		l.prune(cutoff)
		l.sweep = now
	}

	kept := recent(l.hits[ip], cutoff)
	if len(kept) >= l.max {
		l.hits[ip] = kept
		return false
	}
	l.hits[ip] = append(kept, now)
	return true
}

// prune drops IPs with no events after cutoff. Callers hold l.mu.
func (l *ipLimiter) prune(cutoff time.Time) {
	for ip, hits := range l.hits {
		if kept := recent(hits, cutoff); len(kept) == 0 {
			delete(l.hits, ip)
		} else {
			l.hits[ip] = kept
		}
	}
}

func recent(hits []time.Time, cutoff time.Time) []time.Time {
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}
