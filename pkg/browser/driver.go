package browser

import (
	"time"
)

// Condition names an element readiness requirement.
type Condition string

const (
	// ConditionPresent requires the element to exist in the DOM.
	ConditionPresent Condition = "present"

	// ConditionVisible requires the element to exist and be visible.
	ConditionVisible Condition = "visible"
)

// PageDriver is the minimal capability the framework needs from a browser
// automation backend. The Playwright adapter implements it for real
// sessions; tests substitute a stub so the facade can be exercised without
// a live browser.
type PageDriver interface {
	// Goto navigates to an absolute URL, waiting for the load event up to
	// the timeout.
	Goto(url string, timeout time.Duration) error

	URL() string
	Title() (string, error)
	Reload() error
	Back() error
	Forward() error

	// Evaluate runs a JavaScript expression in the page and returns its
	// result.
	Evaluate(js string) (interface{}, error)

	// Content returns the full HTML of the page.
	Content() (string, error)

	// WaitFor blocks until the element matching selector satisfies cond or
	// the timeout elapses, in which case it returns an error.
	WaitFor(selector string, cond Condition, timeout time.Duration) error

	Click(selector string, timeout time.Duration) error
	Fill(selector, value string, timeout time.Duration) error
	TextContent(selector string, timeout time.Duration) (string, error)
	SelectOption(selector, value string, timeout time.Duration) error

	// Close releases the page. Errors are advisory; teardown continues.
	Close() error
}
