package webdriver

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/tebeka/selenium"

	"github.com/webharness/webdriver-acceptance-tests/framework"
)

// Manager owns the single driver instance shared by a test run. The driver is
// created lazily on first use and quit once at the end of the run, however the run
// ended. Access is concurrency-safe so listeners and test code can share the
// handle.
type Manager struct {
	factory *Factory
	logger  framework.Logger
	lock    sync.Mutex
	driver  selenium.WebDriver
}

func NewManager(factory *Factory, logger framework.Logger) *Manager {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Manager{factory: factory, logger: logger}
}

// Driver returns the run's driver, creating it if this is the first use.
func (m *Manager) Driver() (selenium.WebDriver, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	if m.driver == nil {
		wd, err := m.factory.NewDriver()
		if err != nil {
			return nil, err
		}
		m.driver = wd
	}
	return m.driver, nil
}

// CurrentDriver returns the active driver without creating one; nil if no driver
// has been created yet.
func (m *Manager) CurrentDriver() selenium.WebDriver {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.driver
}

// Replace swaps in a different driver instance. Subsequent calls to Driver and
// Screenshot use the new one. The previous driver, if any, is not quit; the caller
// keeps responsibility for it.
func (m *Manager) Replace(driver selenium.WebDriver) {
	m.lock.Lock()
	m.driver = driver
	m.lock.Unlock()
}

// Quit shuts down the driver at the end of the run. This should shut down the
// browser as well. Quit is a no-op if no driver was ever created.
func (m *Manager) Quit() {
	m.lock.Lock()
	driver := m.driver
	m.driver = nil
	m.lock.Unlock()
	if driver == nil {
		return
	}
	if err := driver.Quit(); err != nil {
		m.logger.Printf("Error quitting WebDriver session: %s", err)
	}
}

// Screenshot captures a PNG screenshot from the active driver, which makes the
// Manager usable directly as a screenshot source.
func (m *Manager) Screenshot() ([]byte, error) {
	m.lock.Lock()
	driver := m.driver
	m.lock.Unlock()
	if driver == nil {
		return nil, errors.New("no active WebDriver session to capture a screenshot from")
	}
	return driver.Screenshot()
}
