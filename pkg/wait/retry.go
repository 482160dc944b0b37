package wait

import (
	"errors"
	"fmt"
	"time"
)

// RetryOptions configures a Do call.
type RetryOptions struct {
	// MaxAttempts is the total number of invocations, including the first.
	// Must be positive.
	MaxAttempts int

	// Delay is the sleep between attempts. Zero means retry immediately.
	Delay time.Duration

	// RetryIf decides whether an error is worth another attempt. Nil means
	// every error is retryable. A non-matching error is returned to the
	// caller immediately, without further attempts.
	RetryIf func(error) bool
}

// On builds a RetryIf predicate that matches any of the given sentinel
// errors via errors.Is.
func On(targets ...error) func(error) bool {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// Do invokes op up to opts.MaxAttempts times, sleeping opts.Delay between
// attempts. Retries happen only for errors matching opts.RetryIf. On
// exhaustion Do returns an *ExhaustedError wrapping the last error, so
// errors.Is and errors.As against the original error still match.
func Do(op func() error, opts RetryOptions) error {
	if opts.MaxAttempts <= 0 {
		return &ConfigError{Field: "MaxAttempts", Reason: "must be positive"}
	}

	retryIf := opts.RetryIf
	if retryIf == nil {
		retryIf = func(error) bool { return true }
	}

	var last error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if !retryIf(err) {
			return err
		}
		last = err

		if attempt < opts.MaxAttempts && opts.Delay > 0 {
			time.Sleep(opts.Delay)
		}
	}

	return &ExhaustedError{Attempts: opts.MaxAttempts, Err: last}
}

// ExhaustedError reports that every attempt of a Do call failed. It wraps
// the last error encountered; earlier distinct errors are not aggregated.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap exposes the final attempt's error for errors.Is/errors.As.
func (e *ExhaustedError) Unwrap() error { return e.Err }

// ConfigError reports invalid retry or wait configuration. It is returned
// before the operation is ever invoked.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
