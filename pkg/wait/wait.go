// Package wait provides bounded polling and retry primitives used by the
// browser facade and by test code for flaky interactions.
package wait

import (
	"time"
)

const (
	// DefaultTimeout is the polling timeout used when a Spec leaves it unset
	// via DefaultSpec.
	DefaultTimeout = 30 * time.Second

	// DefaultInterval is the delay between successive condition checks.
	DefaultInterval = 500 * time.Millisecond
)

// Spec describes one bounded wait: how long to keep polling and how long to
// sleep between checks. A Spec is ephemeral; build one per call.
type Spec struct {
	// Timeout is the total wall-clock budget for the wait. A non-positive
	// timeout means the condition is never polled and Until returns false.
	Timeout time.Duration

	// Interval is the sleep between condition checks. Non-positive values
	// fall back to DefaultInterval.
	Interval time.Duration
}

// DefaultSpec returns a Spec with the package default timeout and interval.
func DefaultSpec() Spec {
	return Spec{Timeout: DefaultTimeout, Interval: DefaultInterval}
}

// Until polls cond every spec.Interval until it returns true or spec.Timeout
// elapses. It returns true on the first truthy result and false once the
// budget is exhausted; it never returns an error. A panic inside cond counts
// as "not yet satisfied" and does not abort the wait.
//
// Total wall-clock time is bounded by spec.Timeout + spec.Interval.
func Until(cond func() bool, spec Spec) bool {
	interval := spec.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	deadline := time.Now().Add(spec.Timeout)
	for time.Now().Before(deadline) {
		if evaluate(cond) {
			return true
		}
		time.Sleep(interval)
	}
	return false
}

// evaluate runs cond, converting a panic into a false result so a flaky
// predicate cannot abort the surrounding wait.
func evaluate(cond func() bool) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return cond()
}
