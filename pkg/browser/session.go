package browser

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session is one live browser connection, owned by exactly one test. All
// methods are synchronous and blocking.
type Session struct {
	ID        string
	Kind      Kind
	Endpoint  string // remote endpoint, empty for local sessions
	CreatedAt time.Time

	state        State
	driver       PageDriver
	browser      playwright.Browser
	context      playwright.BrowserContext
	baseURL      string
	explicitWait time.Duration
	pageLoad     time.Duration
	reporter     Reporter
}

// State returns the session's lifecycle state.
func (s *Session) State() State { return s.state }

// close tears down page, context and browser in order, swallowing errors so
// every resource gets a close attempt. The manager serializes calls.
func (s *Session) close() {
	if s.driver != nil {
		_ = s.driver.Close()
	}
	if s.context != nil {
		_ = s.context.Close()
	}
	if s.browser != nil {
		_ = s.browser.Close()
	}
	s.state = StateClosed
}

// Open navigates to a path relative to the session's base URL. Absolute
// URLs are used as-is.
func (s *Session) Open(path string) error {
	target := path
	if s.baseURL != "" && !strings.Contains(path, "://") {
		joined, err := url.JoinPath(s.baseURL, path)
		if err != nil {
			return fmt.Errorf("cannot join %q with base URL %q: %w", path, s.baseURL, err)
		}
		target = joined
	}
	return s.Navigate(target)
}

// Navigate loads an absolute URL, waiting up to the page-load timeout.
func (s *Session) Navigate(rawURL string) error {
	if err := s.driver.Goto(rawURL, s.pageLoad); err != nil {
		s.reporter.ActionFailed(s.ID, rawURL, "navigation failed")
		return fmt.Errorf("navigation to %s failed: %w", rawURL, err)
	}
	return nil
}

// URL returns the current page URL.
func (s *Session) URL() string {
	return s.driver.URL()
}

// Title returns the current page title.
func (s *Session) Title() (string, error) {
	return s.driver.Title()
}

// Refresh reloads the current page.
func (s *Session) Refresh() error {
	return s.driver.Reload()
}

// Back navigates one step back in history.
func (s *Session) Back() error {
	return s.driver.Back()
}

// Forward navigates one step forward in history.
func (s *Session) Forward() error {
	return s.driver.Forward()
}

// Eval runs a JavaScript expression in the page.
func (s *Session) Eval(js string) (interface{}, error) {
	return s.driver.Evaluate(js)
}

// ScrollToTop scrolls the page to the top.
func (s *Session) ScrollToTop() error {
	_, err := s.driver.Evaluate("window.scrollTo(0, 0)")
	return err
}

// ScrollToBottom scrolls the page to the bottom.
func (s *Session) ScrollToBottom() error {
	_, err := s.driver.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
	return err
}

// ReadText extracts visible text. With a selector it reads that element's
// text after a readiness wait; with an empty selector it extracts the text
// of the whole page, skipping script and style content.
func (s *Session) ReadText(selector string) (string, error) {
	if selector != "" {
		return s.Element(selector).Text()
	}
	html, err := s.driver.Content()
	if err != nil {
		return "", fmt.Errorf("failed to read page content: %w", err)
	}
	return extractText(html)
}
