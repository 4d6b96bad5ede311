// Package monitoring defines the error reporting contract used across the
// catalog. The default implementation is a no-op; infra/monitoring installs
// Sentry when configured.
package monitoring

import (
	"fmt"
	"time"
)

// Monitor defines methods used for error reporting.
type Monitor interface {
	CaptureException(err error, tags map[string]string)
	Flush(timeout time.Duration)
}

type NopMonitor struct{}

func (NopMonitor) CaptureException(error, map[string]string) {}
func (NopMonitor) Flush(time.Duration)                       {}

var current Monitor = NopMonitor{}

// Init sets the global monitor implementation.
func Init(m Monitor) {
	if m != nil {
		current = m
	}
}

// CaptureException records the error with optional tags.
func CaptureException(err error, tags map[string]string) {
	if current != nil {
		current.CaptureException(err, tags)
	}
}

// Recover reports a panic in the calling goroutine through the monitor and
// re-raises it. It must be deferred directly: recover only stops the unwind
// when called from the deferred function itself.
func Recover() {
	if r := recover(); r != nil {
		if current != nil {
			current.CaptureException(fmt.Errorf("panic: %v", r), nil)
			current.Flush(2 * time.Second)
		}
		panic(r)
	}
}

// Flush flushes buffered events.
func Flush(d time.Duration) {
	if current != nil {
		current.Flush(d)
	}
}
