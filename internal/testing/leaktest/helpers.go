// Package leaktest reports goroutines left behind by connection handlers and pools.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// SettleTimeout is how long Check waits for the goroutine count to fall back
const SettleTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count at Check against a baseline
type GoroutineChecker struct {
	t        testing.TB
	baseline int
	timeout  time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, baseline: runtime.NumGoroutine(), timeout: SettleTimeout}
}

// Check fails the test if more than tolerance goroutines above the baseline are
// still running once SettleTimeout has passed. It returns as soon as the count settles.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if n, ok := g.settle(tolerance); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d", g.baseline, n, tolerance)
	}
}

func (g *GoroutineChecker) settle(tolerance int) (int, bool) {
	deadline := time.Now().Add(g.timeout)
	for {
		n := runtime.NumGoroutine()
		if n-g.baseline <= tolerance {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		runtime.Gosched()
		time.Sleep(pollInterval)
	}
}
