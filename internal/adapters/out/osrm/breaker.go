package osrm

import (
	"sync"
	"time"
)

// circuitBreaker keeps the client from hammering a routing provider that is
// already failing. After failureThreshold consecutive failures the provider
// is skipped until cooldown elapses; a single success closes it again.
type circuitBreaker struct {
	mu               sync.Mutex
	failures         int
	failureThreshold int
	cooldown         time.Duration
	openedAt         time.Time
	now              func() time.Time
}

func newCircuitBreaker(failureThreshold int, cooldown time.Duration, now func() time.Time) *circuitBreaker {
	return &circuitBreaker{
		failureThreshold: failureThreshold,
		cooldown:         cooldown,
		now:              now,
	}
}

// allow reports whether a provider call may be attempted.
func (b *circuitBreaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.failures < b.failureThreshold {
		return true
	}

	if b.now().Sub(b.openedAt) >= b.cooldown {
		// half-open: let one attempt through
		b.failures = b.failureThreshold - 1
		return true
	}

	return false
}

func (b *circuitBreaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
}

func (b *circuitBreaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	if b.failures >= b.failureThreshold {
		b.openedAt = b.now()
	}
}
