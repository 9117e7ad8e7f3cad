package webdriver

import (
	"github.com/pkg/errors"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
	"github.com/tebeka/selenium/firefox"

	"github.com/webharness/webdriver-acceptance-tests/framework"
)

// Factory creates new browser driver instances. Its job is to isolate the test
// runner from the business of creating and configuring WebDriver sessions.
type Factory struct {
	config Config
	logger framework.Logger
}

func NewFactory(config Config, logger framework.Logger) *Factory {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Factory{config: config, logger: logger}
}

// NewDriver creates a WebDriver session for the configured browser.
func (f *Factory) NewDriver() (selenium.WebDriver, error) {
	browser, err := ParseBrowser(f.config.Browser)
	if err != nil {
		return nil, err
	}

	caps := selenium.Capabilities{"browserName": string(browser)}
	switch browser {
	case Chrome:
		c := chrome.Capabilities{}
		if f.config.Headless {
			c.Args = append(c.Args, "--headless", "--disable-gpu")
		}
		caps.AddChrome(c)
	case Firefox:
		ff := firefox.Capabilities{}
		if f.config.Headless {
			ff.Args = append(ff.Args, "-headless")
		}
		caps.AddFirefox(ff)
	case HTMLUnit:
		caps["javascriptEnabled"] = true
	}

	url := f.config.ServerURL()
	f.logger.Printf("Creating %s WebDriver session at %s", browser, url)
	wd, err := selenium.NewRemote(caps, url)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create a %s WebDriver session at %s", browser, url)
	}

	if f.config.PageLoadTimeoutMS > 0 {
		if err := wd.SetPageLoadTimeout(f.config.PageLoadTimeout()); err != nil {
			f.logger.Printf("Could not set page load timeout: %s", err)
		}
	}
	if f.config.ImplicitWaitMS > 0 {
		if err := wd.SetImplicitWaitTimeout(f.config.ImplicitWait()); err != nil {
			f.logger.Printf("Could not set implicit wait timeout: %s", err)
		}
	}
	return wd, nil
}
