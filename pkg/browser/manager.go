package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Manager owns the Playwright driver and every live session. One Manager
// serves a whole test process; sessions themselves are not shared between
// tests.
type Manager struct {
	mu       sync.Mutex
	pw       *playwright.Playwright
	sessions map[string]*Session
	started  bool
	log      *zap.Logger
	reporter Reporter
}

// ManagerOption customizes a Manager.
type ManagerOption func(*Manager)

// WithLogger attaches a structured logger. Defaults to a nop logger.
func WithLogger(log *zap.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithReporter attaches an event reporter for session lifecycle and action
// failures. Defaults to a reporter derived from the logger.
func WithReporter(r Reporter) ManagerOption {
	return func(m *Manager) {
		if r != nil {
			m.reporter = r
		}
	}
}

// NewManager creates a session manager. The Playwright driver is started
// lazily on the first Acquire.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.reporter == nil {
		m.reporter = NewZapReporter(m.log)
	}
	return m
}

// ensureStarted installs and runs the Playwright driver once. Callers hold
// m.mu.
func (m *Manager) ensureStarted() error {
	if m.started {
		return nil
	}

	// Driver output is noise for test runs; discard it.
	runOpts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(runOpts); err != nil {
		return fmt.Errorf("failed to install playwright driver: %w", err)
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return fmt.Errorf("failed to start playwright driver: %w", err)
	}

	m.pw = pw
	m.started = true
	return nil
}

// Acquire creates exactly one active session of the given kind. Unknown
// kinds fail with *UnsupportedBackendError before the driver is touched;
// launch or connection failures fail with *SessionStartError. Any partially
// constructed browser resources are closed on the error path.
func (m *Manager) Acquire(kind Kind, opts Options) (*Session, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureStarted(); err != nil {
		return nil, &SessionStartError{Kind: kind, Endpoint: opts.RemoteURL, Err: err}
	}

	br, err := m.connect(kind, opts)
	if err != nil {
		return nil, &SessionStartError{Kind: kind, Endpoint: opts.RemoteURL, Err: err}
	}

	context, err := br.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.WindowWidth,
			Height: opts.WindowHeight,
		},
	})
	if err != nil {
		br.Close()
		return nil, &SessionStartError{Kind: kind, Endpoint: opts.RemoteURL,
			Err: fmt.Errorf("failed to create context: %w", err)}
	}

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		br.Close()
		return nil, &SessionStartError{Kind: kind, Endpoint: opts.RemoteURL,
			Err: fmt.Errorf("failed to create page: %w", err)}
	}

	page.SetDefaultTimeout(float64(opts.ExplicitWait.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(opts.PageLoadTimeout.Milliseconds()))

	session := &Session{
		ID:        uuid.NewString(),
		Kind:      kind,
		Endpoint:  opts.RemoteURL,
		CreatedAt: time.Now(),
		state:     StateActive,

		driver:       newPlaywrightDriver(page),
		browser:      br,
		context:      context,
		baseURL:      opts.BaseURL,
		explicitWait: opts.ExplicitWait,
		pageLoad:     opts.PageLoadTimeout,
		reporter:     m.reporter,
	}

	m.sessions[session.ID] = session
	m.reporter.SessionStarted(session.ID, kind)
	m.log.Debug("session acquired",
		zap.String("session_id", session.ID),
		zap.String("backend", string(kind)),
		zap.Bool("headless", opts.Headless),
		zap.String("endpoint", opts.RemoteURL))

	return session, nil
}

// connect launches a local browser or connects to a remote endpoint.
// Callers hold m.mu.
func (m *Manager) connect(kind Kind, opts Options) (playwright.Browser, error) {
	browserType := m.pw.Chromium
	if kind == KindFirefox {
		browserType = m.pw.Firefox
	}

	if opts.RemoteURL != "" {
		br, err := browserType.Connect(opts.RemoteURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s: %w", opts.RemoteURL, err)
		}
		return br, nil
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	if kind == KindEdge {
		// Edge is driven through the chromium driver's msedge channel.
		launchOpts.Channel = playwright.String("msedge")
	}

	br, err := browserType.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to launch %s: %w", kind, err)
	}
	return br, nil
}

// Release closes a session and its underlying browser resources. It is
// idempotent: releasing nil or an already-closed session is a silent no-op,
// and it never fails. A live session the manager no longer tracks is still
// closed, so the browser process terminates on every exit path, but no
// sessionEnded event is emitted for it: the reporter never saw it start.
// Close errors are swallowed so teardown never masks the test's own failure.
func (m *Manager) Release(session *Session) {
	if session == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if session.state == StateClosed {
		return
	}
	_, tracked := m.sessions[session.ID]
	session.close()
	if !tracked {
		return
	}
	delete(m.sessions, session.ID)
	m.reporter.SessionEnded(session.ID)
	m.log.Debug("session released", zap.String("session_id", session.ID))
}

// Active reports how many sessions are currently live.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Stop releases every live session and shuts the Playwright driver down.
// Safe to call when the driver was never started.
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, session := range m.sessions {
		session.close()
		delete(m.sessions, id)
		m.reporter.SessionEnded(id)
	}

	if m.started && m.pw != nil {
		if err := m.pw.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright driver: %w", err)
		}
		m.started = false
		m.pw = nil
	}
	return nil
}
