// Package browser provides the session lifecycle and element interaction
// layer of the framework, built on Playwright.
//
// The package is organized around three pieces:
//
//  1. Manager: owns the Playwright driver and the set of live sessions. It
//     selects a backend (chrome, firefox, edge; local process or remote
//     endpoint), applies the run options, and guarantees the underlying
//     browser process is terminated on every exit path.
//  2. Session: one live browser connection, owned by exactly one test.
//     Sessions are never pooled or reused; each test acquires a fresh one
//     and releases it at the end regardless of outcome.
//  3. Element: a lazy facade over a selector. Every action first waits for
//     its readiness condition up to the configured explicit-wait timeout,
//     then performs exactly one operation. On timeout the action fails with
//     ElementNotReadyError; nothing silently no-ops.
//
// Element actions do not retry. Compose with pkg/wait when an interaction is
// known to be flaky:
//
//	err := wait.Do(func() error {
//	    return session.Element("#submit").Click()
//	}, wait.RetryOptions{MaxAttempts: 3, Delay: time.Second})
//
// # Session lifecycle
//
//	manager := browser.NewManager(browser.WithLogger(log))
//	session, err := manager.Acquire(browser.KindChrome, browser.OptionsFromConfig(cfg))
//	if err != nil {
//	    // *UnsupportedBackendError or *SessionStartError
//	}
//	defer manager.Release(session) // idempotent, never fails
//
// Release is safe to call twice and safe to call on sessions the manager no
// longer tracks; teardown paths in test fixtures do not need to coordinate.
package browser
