package browser

import (
	"time"

	"github.com/seamq/seam/pkg/config"
)

// Kind identifies a browser backend.
type Kind string

const (
	KindChrome  Kind = "chrome"
	KindFirefox Kind = "firefox"
	KindEdge    Kind = "edge"
)

// ParseKind validates a backend name. Unknown names fail with
// *UnsupportedBackendError before any native process is spawned.
func ParseKind(name string) (Kind, error) {
	switch Kind(name) {
	case KindChrome, KindFirefox, KindEdge:
		return Kind(name), nil
	default:
		return "", &UnsupportedBackendError{Kind: name}
	}
}

// State tracks where a session is in its lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateClosed:
		return "closed"
	default:
		return "uninitialized"
	}
}

// Options configures a new session. Zero values fall back to the package
// defaults in Acquire.
type Options struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool

	// WindowWidth and WindowHeight set the viewport size.
	WindowWidth  int
	WindowHeight int

	// BaseURL is prepended by Session.Open for relative paths.
	BaseURL string

	// RemoteURL, when set, connects to a remote browser endpoint instead of
	// launching a local process.
	RemoteURL string

	// ExplicitWait bounds element readiness waits.
	ExplicitWait time.Duration

	// PageLoadTimeout bounds navigations.
	PageLoadTimeout time.Duration
}

const (
	DefaultWindowWidth  = 1920
	DefaultWindowHeight = 1080
	DefaultExplicitWait = 30 * time.Second
	DefaultPageLoad     = 30 * time.Second
)

// OptionsFromConfig maps the run configuration onto session options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Headless:        cfg.Headless,
		WindowWidth:     cfg.WindowWidth(),
		WindowHeight:    cfg.WindowHeight(),
		BaseURL:         cfg.BaseURL,
		RemoteURL:       cfg.RemoteURL,
		ExplicitWait:    cfg.ExplicitWait.Std(),
		PageLoadTimeout: cfg.PageLoadTimeout.Std(),
	}
}

func (o Options) withDefaults() Options {
	if o.WindowWidth <= 0 {
		o.WindowWidth = DefaultWindowWidth
	}
	if o.WindowHeight <= 0 {
		o.WindowHeight = DefaultWindowHeight
	}
	if o.ExplicitWait <= 0 {
		o.ExplicitWait = DefaultExplicitWait
	}
	if o.PageLoadTimeout <= 0 {
		o.PageLoadTimeout = DefaultPageLoad
	}
	return o
}
