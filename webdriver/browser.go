package webdriver

import (
	"fmt"
	"strings"
)

// Browser identifies a supported browser type.
type Browser string

const (
	Chrome   Browser = "chrome"
	Firefox  Browser = "firefox"
	HTMLUnit Browser = "htmlunit"
)

// SupportedBrowsers lists the browsers the harness can drive, in display order.
func SupportedBrowsers() []Browser {
	return []Browser{Chrome, Firefox, HTMLUnit}
}

// UnsupportedBrowserError is returned when a requested browser name does not match
// any supported browser.
type UnsupportedBrowserError struct {
	Name string
}

func (e UnsupportedBrowserError) Error() string {
	var names []string
	for _, b := range SupportedBrowsers() {
		names = append(names, string(b))
	}
	return fmt.Sprintf("%s is not a supported browser; supported values are: %s",
		e.Name, strings.Join(names, ", "))
}

// ParseBrowser converts a browser name in any case to a Browser value.
func ParseBrowser(name string) (Browser, error) {
	for _, b := range SupportedBrowsers() {
		if strings.EqualFold(name, string(b)) {
			return b, nil
		}
	}
	return "", UnsupportedBrowserError{Name: name}
}
