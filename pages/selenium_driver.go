package pages

import (
	"github.com/tebeka/selenium"
)

type seleniumDriver struct {
	wd selenium.WebDriver
}

// FromSelenium adapts a full WebDriver session to the narrow Driver interface that
// page objects use.
func FromSelenium(wd selenium.WebDriver) Driver {
	return seleniumDriver{wd: wd}
}

func (d seleniumDriver) Get(url string) error {
	return d.wd.Get(url)
}

func (d seleniumDriver) CurrentURL() (string, error) {
	return d.wd.CurrentURL()
}

func (d seleniumDriver) Title() (string, error) {
	return d.wd.Title()
}

func (d seleniumDriver) FindElement(by, value string) (Element, error) {
	element, err := d.wd.FindElement(by, value)
	if err != nil {
		return nil, err
	}
	return element, nil
}

func (d seleniumDriver) FindElements(by, value string) ([]Element, error) {
	found, err := d.wd.FindElements(by, value)
	if err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(found))
	for _, e := range found {
		elements = append(elements, e)
	}
	return elements, nil
}
