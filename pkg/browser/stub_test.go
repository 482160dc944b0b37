package browser

import (
	"errors"
	"fmt"
	"time"
)

// stubDriver is an in-memory PageDriver for exercising the facade without a
// live browser. WaitFor blocks for the full timeout on selectors that are
// not marked ready, mirroring a real bounded wait.
type stubDriver struct {
	ready map[string]bool
	texts map[string]string

	url     string
	title   string
	content string

	failClick  error
	failFill   error
	failGoto   error
	failSelect error
	waitErr    error // overrides the generic timeout error from WaitFor

	calls []string
}

func newStubDriver() *stubDriver {
	return &stubDriver{
		ready: make(map[string]bool),
		texts: make(map[string]string),
	}
}

func (d *stubDriver) record(format string, args ...interface{}) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *stubDriver) Goto(url string, timeout time.Duration) error {
	d.record("goto %s", url)
	if d.failGoto != nil {
		return d.failGoto
	}
	d.url = url
	return nil
}

func (d *stubDriver) URL() string              { return d.url }
func (d *stubDriver) Title() (string, error)   { return d.title, nil }
func (d *stubDriver) Reload() error            { d.record("reload"); return nil }
func (d *stubDriver) Back() error              { d.record("back"); return nil }
func (d *stubDriver) Forward() error           { d.record("forward"); return nil }
func (d *stubDriver) Content() (string, error) { return d.content, nil }

func (d *stubDriver) Evaluate(js string) (interface{}, error) {
	d.record("eval %s", js)
	return nil, nil
}

func (d *stubDriver) WaitFor(selector string, cond Condition, timeout time.Duration) error {
	d.record("wait %s %s", selector, cond)
	if d.ready[selector] {
		return nil
	}
	time.Sleep(timeout)
	if d.waitErr != nil {
		return d.waitErr
	}
	return errors.New("timed out waiting for selector")
}

func (d *stubDriver) Click(selector string, timeout time.Duration) error {
	d.record("click %s", selector)
	return d.failClick
}

func (d *stubDriver) Fill(selector, value string, timeout time.Duration) error {
	d.record("fill %s=%s", selector, value)
	return d.failFill
}

func (d *stubDriver) TextContent(selector string, timeout time.Duration) (string, error) {
	d.record("text %s", selector)
	return d.texts[selector], nil
}

func (d *stubDriver) SelectOption(selector, value string, timeout time.Duration) error {
	d.record("select %s=%s", selector, value)
	return d.failSelect
}

func (d *stubDriver) Close() error { d.record("close"); return nil }

// recordingReporter captures emitted events for assertions.
type recordingReporter struct {
	started []string
	ended   []string
	failed  []string
}

func (r *recordingReporter) SessionStarted(id string, kind Kind) {
	r.started = append(r.started, id)
}

func (r *recordingReporter) SessionEnded(id string) {
	r.ended = append(r.ended, id)
}

func (r *recordingReporter) ActionFailed(sessionID, locator, reason string) {
	r.failed = append(r.failed, locator+": "+reason)
}

// newStubSession builds an active session backed by the stub driver with a
// short explicit wait so not-ready paths stay fast.
func newStubSession(d PageDriver) *Session {
	return &Session{
		ID:           "stub-session",
		Kind:         KindChrome,
		CreatedAt:    time.Now(),
		state:        StateActive,
		driver:       d,
		baseURL:      "https://app.example.com",
		explicitWait: 100 * time.Millisecond,
		pageLoad:     time.Second,
		reporter:     nopReporter{},
	}
}
