package browser

import (
	"fmt"
	"time"
)

// UnsupportedBackendError reports a backend name that is not one of the
// supported kinds. It is returned before any driver state is touched.
type UnsupportedBackendError struct {
	Kind string
}

func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("unsupported browser backend %q (supported: chrome, firefox, edge)", e.Kind)
}

// SessionStartError reports that the underlying browser process or remote
// connection could not be established. It is fatal to the test.
type SessionStartError struct {
	Kind     Kind
	Endpoint string // empty for local launches
	Err      error
}

func (e *SessionStartError) Error() string {
	if e.Endpoint != "" {
		return fmt.Sprintf("failed to start %s session at %s: %v", e.Kind, e.Endpoint, e.Err)
	}
	return fmt.Sprintf("failed to start %s session: %v", e.Kind, e.Err)
}

func (e *SessionStartError) Unwrap() error { return e.Err }

// ElementNotReadyError reports that an element did not satisfy the readiness
// condition for an action within the explicit-wait timeout. It carries the
// locator, the unmet condition, the elapsed wait and the driver's underlying
// error so the failure can be diagnosed without rerunning.
type ElementNotReadyError struct {
	Locator   string
	Condition Condition
	Elapsed   time.Duration
	Err       error
}

func (e *ElementNotReadyError) Error() string {
	msg := fmt.Sprintf("element %q not %s after %s", e.Locator, e.Condition, e.Elapsed.Round(time.Millisecond))
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the driver error behind the readiness failure, so causes
// like an invalid selector stay distinguishable from a plain timeout.
func (e *ElementNotReadyError) Unwrap() error { return e.Err }
