package counter

import "sync/atomic"

// Process-local counters for traffic against the backend API. The /metrics
// monitor covers the HTTP side of the admin app; these cover the outbound
// client so the dashboard can show how chatty a session has been.

var (
	requests atomic.Int64
	failures atomic.Int64
)

// AddRequest records one outbound backend call.
func AddRequest() {
	requests.Add(1)
}

// AddFailure records a backend call that ended in a transport error or a
// non-2xx status.
func AddFailure() {
	failures.Add(1)
}

// Requests returns the total number of backend calls since start.
func Requests() int64 {
	return requests.Load()
}

// Failures returns the number of failed backend calls since start.
func Failures() int64 {
	return failures.Load()
}

// Reset zeroes both counters. Test helper.
func Reset() {
	requests.Store(0)
	failures.Store(0)
}
