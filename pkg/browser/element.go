package browser

import (
	"fmt"
	"time"
)

// Element is a lazy facade over a selector. Nothing is resolved until an
// action runs; each action waits for its readiness condition up to the
// session's explicit-wait timeout and then performs exactly one operation.
//
// Actions never retry. Wrap calls with wait.Do when an interaction is
// expected to be flaky.
type Element struct {
	session  *Session
	selector string
}

// Element returns a facade for the given selector. Resolution happens at
// action time, so holding an Element for a not-yet-rendered node is fine.
func (s *Session) Element(selector string) *Element {
	return &Element{session: s, selector: selector}
}

// Selector returns the logical locator this element is bound to.
func (e *Element) Selector() string { return e.selector }

// Click waits for the element to be visible, then clicks it once.
func (e *Element) Click() error {
	return e.act("click", ConditionVisible, func() error {
		return e.session.driver.Click(e.selector, e.session.explicitWait)
	})
}

// Type waits for the element to be visible, then replaces its value with
// text. The field is cleared first.
func (e *Element) Type(text string) error {
	return e.act("type", ConditionVisible, func() error {
		return e.session.driver.Fill(e.selector, text, e.session.explicitWait)
	})
}

// Text waits for the element to be visible and returns its text content.
func (e *Element) Text() (string, error) {
	var text string
	err := e.act("read text", ConditionVisible, func() error {
		var err error
		text, err = e.session.driver.TextContent(e.selector, e.session.explicitWait)
		return err
	})
	return text, err
}

// SelectOption waits for the element to be visible and selects the option
// with the given value.
func (e *Element) SelectOption(value string) error {
	return e.act("select option", ConditionVisible, func() error {
		return e.session.driver.SelectOption(e.selector, value, e.session.explicitWait)
	})
}

// Present reports whether the element appears in the DOM within the
// explicit-wait timeout. It never fails; use Require for the throwing
// variant.
func (e *Element) Present() bool {
	return e.session.driver.WaitFor(e.selector, ConditionPresent, e.session.explicitWait) == nil
}

// Visible reports whether the element becomes visible within the
// explicit-wait timeout. It never fails; use Require for the throwing
// variant.
func (e *Element) Visible() bool {
	return e.session.driver.WaitFor(e.selector, ConditionVisible, e.session.explicitWait) == nil
}

// Require waits for the element to satisfy cond and fails with
// *ElementNotReadyError when it does not within the explicit-wait timeout.
func (e *Element) Require(cond Condition) error {
	start := time.Now()
	if err := e.session.driver.WaitFor(e.selector, cond, e.session.explicitWait); err != nil {
		return e.notReady(cond, time.Since(start), err)
	}
	return nil
}

// act runs the shared wait-then-do sequence for a single action.
func (e *Element) act(action string, cond Condition, do func() error) error {
	start := time.Now()
	if err := e.session.driver.WaitFor(e.selector, cond, e.session.explicitWait); err != nil {
		return e.notReady(cond, time.Since(start), err)
	}
	if err := do(); err != nil {
		e.session.reporter.ActionFailed(e.session.ID, e.selector, action+" failed")
		return fmt.Errorf("%s on %q failed: %w", action, e.selector, err)
	}
	return nil
}

func (e *Element) notReady(cond Condition, elapsed time.Duration, cause error) error {
	err := &ElementNotReadyError{
		Locator:   e.selector,
		Condition: cond,
		Elapsed:   elapsed,
		Err:       cause,
	}
	e.session.reporter.ActionFailed(e.session.ID, e.selector, err.Error())
	return err
}
