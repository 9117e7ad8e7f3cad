package webdriver

import (
	"io/ioutil"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultSeleniumURL     = "http://127.0.0.1:4444"
	defaultSeleniumVersion = "3.0.0"
	defaultOutputDir       = "reports"
)

// Config describes how to reach the WebDriver server and which browser to request.
// Values normally come from a YAML file plus command line overrides.
type Config struct {
	Browser           string `yaml:"browser"`
	SeleniumURL       string `yaml:"seleniumUrl"`
	SeleniumVersion   string `yaml:"seleniumVersion"`
	Headless          bool   `yaml:"headless"`
	OutputDir         string `yaml:"outputDir"`
	PageLoadTimeoutMS int    `yaml:"pageLoadTimeoutMs"`
	ImplicitWaitMS    int    `yaml:"implicitWaitMs"`
}

func DefaultConfig() Config {
	return Config{
		Browser:         string(Firefox),
		SeleniumURL:     defaultSeleniumURL,
		SeleniumVersion: defaultSeleniumVersion,
		OutputDir:       defaultOutputDir,
	}
}

// LoadConfig reads a YAML config file and applies its values on top of the
// defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return c, errors.Wrapf(err, "could not read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrapf(err, "malformed config file %s", path)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the browser name and the Selenium version string.
func (c Config) Validate() error {
	if _, err := ParseBrowser(c.Browser); err != nil {
		return err
	}
	if c.SeleniumVersion != "" {
		if _, err := semver.Parse(c.SeleniumVersion); err != nil {
			return errors.Wrapf(err, "invalid Selenium version %q", c.SeleniumVersion)
		}
	}
	return nil
}

// ServerURL returns the WebDriver endpoint URL. Selenium server versions 2 and 3
// serve the WebDriver protocol under /wd/hub; a standalone driver such as
// geckodriver or chromedriver (empty version) serves it at the root.
func (c Config) ServerURL() string {
	base := strings.TrimSuffix(c.SeleniumURL, "/")
	if c.SeleniumVersion == "" {
		return base
	}
	v, err := semver.Parse(c.SeleniumVersion)
	if err != nil || v.Major == 0 {
		return base
	}
	return base + "/wd/hub"
}

func (c Config) PageLoadTimeout() time.Duration {
	return time.Duration(c.PageLoadTimeoutMS) * time.Millisecond
}

func (c Config) ImplicitWait() time.Duration {
	return time.Duration(c.ImplicitWaitMS) * time.Millisecond
}
