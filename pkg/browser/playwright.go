package browser

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"
)

// playwrightDriver adapts a playwright.Page to the PageDriver interface.
type playwrightDriver struct {
	page playwright.Page
}

func newPlaywrightDriver(page playwright.Page) *playwrightDriver {
	return &playwrightDriver{page: page}
}

func millis(d time.Duration) *float64 {
	return playwright.Float(float64(d.Milliseconds()))
}

func (d *playwrightDriver) Goto(url string, timeout time.Duration) error {
	_, err := d.page.Goto(url, playwright.PageGotoOptions{
		Timeout: millis(timeout),
	})
	return err
}

func (d *playwrightDriver) URL() string {
	return d.page.URL()
}

func (d *playwrightDriver) Title() (string, error) {
	return d.page.Title()
}

func (d *playwrightDriver) Reload() error {
	_, err := d.page.Reload()
	return err
}

func (d *playwrightDriver) Back() error {
	_, err := d.page.GoBack()
	return err
}

func (d *playwrightDriver) Forward() error {
	_, err := d.page.GoForward()
	return err
}

func (d *playwrightDriver) Evaluate(js string) (interface{}, error) {
	return d.page.Evaluate(js)
}

func (d *playwrightDriver) Content() (string, error) {
	return d.page.Content()
}

func (d *playwrightDriver) WaitFor(selector string, cond Condition, timeout time.Duration) error {
	state := playwright.WaitForSelectorStateVisible
	if cond == ConditionPresent {
		state = playwright.WaitForSelectorStateAttached
	}

	_, err := d.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		State:   state,
		Timeout: millis(timeout),
	})
	if err != nil {
		return fmt.Errorf("wait for %q (%s): %w", selector, cond, err)
	}
	return nil
}

func (d *playwrightDriver) Click(selector string, timeout time.Duration) error {
	return d.page.Click(selector, playwright.PageClickOptions{
		Timeout: millis(timeout),
	})
}

func (d *playwrightDriver) Fill(selector, value string, timeout time.Duration) error {
	return d.page.Fill(selector, value, playwright.PageFillOptions{
		Timeout: millis(timeout),
	})
}

func (d *playwrightDriver) TextContent(selector string, timeout time.Duration) (string, error) {
	return d.page.TextContent(selector, playwright.PageTextContentOptions{
		Timeout: millis(timeout),
	})
}

func (d *playwrightDriver) SelectOption(selector, value string, timeout time.Duration) error {
	_, err := d.page.SelectOption(selector, playwright.SelectOptionValues{
		Values: &[]string{value},
	}, playwright.PageSelectOptionOptions{
		Timeout: millis(timeout),
	})
	return err
}

func (d *playwrightDriver) Close() error {
	return d.page.Close()
}
