// Package pages provides a page-object helper on top of a WebDriver session:
// element visibility checks and bounded waits for elements or text to render.
package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/selenium"
)

const (
	// DefaultWaitTimeout bounds how long the wait helpers poll before giving up.
	DefaultWaitTimeout = 5 * time.Second

	waitPollInterval = 100 * time.Millisecond
)

// Element is the subset of a WebDriver element that page objects need.
type Element interface {
	IsDisplayed() (bool, error)
	Text() (string, error)
	Click() error
}

// Driver is the subset of a WebDriver session that page objects need. Keeping it
// narrow makes fakes easy; FromSelenium adapts a real session.
type Driver interface {
	Get(url string) error
	CurrentURL() (string, error)
	FindElement(by, value string) (Element, error)
	FindElements(by, value string) ([]Element, error)
	Title() (string, error)
}

// By is an element locator: a WebDriver location strategy plus its value.
type By struct {
	Using string
	Value string
}

func (b By) String() string {
	return fmt.Sprintf("%s=%q", b.Using, b.Value)
}

func ByCSS(value string) By   { return By{Using: selenium.ByCSSSelector, Value: value} }
func ByXPath(value string) By { return By{Using: selenium.ByXPATH, Value: value} }
func ByID(value string) By    { return By{Using: selenium.ByID, Value: value} }

// ElementNotDisplayedError is returned when a wait times out before the expected
// element or text became visible (or, for disappearance waits, stopped being
// visible).
type ElementNotDisplayedError struct {
	Message string
}

func (e ElementNotDisplayedError) Error() string {
	return e.Message
}

// Page is a helper for interacting with one page of the site under test. Page
// objects for specific pages embed it and add their own accessors.
type Page struct {
	driver         Driver
	waitForTimeout time.Duration
}

func NewPage(driver Driver) *Page {
	return &Page{driver: driver, waitForTimeout: DefaultWaitTimeout}
}

// SetWaitForTimeout overrides the timeout used by the WaitFor helpers.
func (p *Page) SetWaitForTimeout(timeout time.Duration) {
	p.waitForTimeout = timeout
}

func (p *Page) WaitForTimeout() time.Duration {
	return p.waitForTimeout
}

func (p *Page) Driver() Driver {
	return p.driver
}

// Open navigates the browser to the given URL.
func (p *Page) Open(url string) error {
	return p.driver.Get(url)
}

func (p *Page) URL() (string, error) {
	return p.driver.CurrentURL()
}

func (p *Page) Title() (string, error) {
	return p.driver.Title()
}

// IsElementVisible reports whether the element is present on the page and
// displayed. An element that exists but is hidden, or does not exist at all, is
// not visible.
func (p *Page) IsElementVisible(by By) bool {
	element, err := p.driver.FindElement(by.Using, by.Value)
	if err != nil {
		return false
	}
	displayed, err := element.IsDisplayed()
	if err != nil {
		return false
	}
	return displayed
}

// WaitForRenderedElement waits until the element is present and displayed,
// returning it. It returns ElementNotDisplayedError if the timeout expires first.
func (p *Page) WaitForRenderedElement(by By) (Element, error) {
	var found Element
	err := p.waitFor(func() bool {
		element, err := p.driver.FindElement(by.Using, by.Value)
		if err != nil {
			return false
		}
		displayed, err := element.IsDisplayed()
		if err != nil || !displayed {
			return false
		}
		found = element
		return true
	}, fmt.Sprintf("element %s was not displayed", by))
	if err != nil {
		return nil, err
	}
	return found, nil
}

// WaitForAnyRenderedElementOf waits until at least one of the locators matches a
// displayed element, returning the first one found.
func (p *Page) WaitForAnyRenderedElementOf(locators ...By) (Element, error) {
	var found Element
	err := p.waitFor(func() bool {
		for _, by := range locators {
			element, err := p.driver.FindElement(by.Using, by.Value)
			if err != nil {
				continue
			}
			if displayed, err := element.IsDisplayed(); err == nil && displayed {
				found = element
				return true
			}
		}
		return false
	}, fmt.Sprintf("none of the elements %v were displayed", locators))
	if err != nil {
		return nil, err
	}
	return found, nil
}

// WaitForTextToAppear waits until the text is visible somewhere on the page.
func (p *Page) WaitForTextToAppear(text string) error {
	return p.waitFor(func() bool {
		return p.containsVisibleText(text)
	}, fmt.Sprintf("text %q did not appear", text))
}

// WaitForTextToDisappear waits until the text is no longer visible on the page.
func (p *Page) WaitForTextToDisappear(text string) error {
	return p.waitFor(func() bool {
		return !p.containsVisibleText(text)
	}, fmt.Sprintf("text %q did not disappear", text))
}

func (p *Page) containsVisibleText(text string) bool {
	xpath := fmt.Sprintf("//*[contains(text(),%s)]", xpathStringLiteral(text))
	elements, err := p.driver.FindElements(selenium.ByXPATH, xpath)
	if err != nil {
		return false
	}
	for _, element := range elements {
		if displayed, err := element.IsDisplayed(); err == nil && displayed {
			return true
		}
	}
	return false
}

func (p *Page) waitFor(condition func() bool, timeoutMessage string) error {
	if condition() {
		return nil
	}
	deadline := time.NewTimer(p.waitForTimeout)
	defer deadline.Stop()
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-deadline.C:
			return ElementNotDisplayedError{Message: timeoutMessage}
		case <-ticker.C:
			if condition() {
				return nil
			}
		}
	}
}

// xpathStringLiteral quotes a string for use in an XPath expression, falling back
// to concat() when the text contains both quote characters.
func xpathStringLiteral(s string) string {
	if !strings.Contains(s, `'`) {
		return `'` + s + `'`
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, `'`)
	quoted := make([]string, 0, len(parts)*2)
	for i, part := range parts {
		if i > 0 {
			quoted = append(quoted, `"'"`)
		}
		if part != "" {
			quoted = append(quoted, `'`+part+`'`)
		}
	}
	return "concat(" + strings.Join(quoted, ",") + ")"
}
