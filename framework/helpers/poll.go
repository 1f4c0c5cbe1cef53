package helpers

import (
	"time"
)

// PollForSpecificResultValue calls testFn at intervals until it returns the expected value or the
// timeout elapses. It returns true if the value was seen. The first call happens immediately.
// A call that is already in progress when the timeout elapses is not interrupted, so testFn should
// bound its own running time.
func PollForSpecificResultValue[V comparable](
	testFn func() V,
	timeout time.Duration,
	interval time.Duration,
	expectedValue V,
) bool {
	if testFn() == expectedValue {
		return true
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	for {
		select {
		case <-deadline.C:
			return false
		case <-ticker.C:
			if testFn() == expectedValue {
				return true
			}
		}
	}
}
