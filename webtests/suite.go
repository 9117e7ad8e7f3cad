package webtests

import (
	"github.com/webharness/webdriver-acceptance-tests/framework"
	"github.com/webharness/webdriver-acceptance-tests/site"
	"github.com/webharness/webdriver-acceptance-tests/steps"
	"github.com/webharness/webdriver-acceptance-tests/webdriver"
)

// SuiteName identifies the built-in acceptance suite in reports.
const SuiteName = "webdriver acceptance"

// SuiteConfig carries everything the suite needs to run.
type SuiteConfig struct {
	DriverManager *webdriver.Manager
	Site          *site.Server
	Broadcaster   *steps.Broadcaster
	StepState     StepState
	Filter        framework.Filter
	TestLogger    framework.TestLogger
	StopOnFailure bool
}

// RunTestSuite runs the browser acceptance suite and returns the runner results.
// Step-level outcomes accumulate in whatever listeners are registered on the
// broadcaster.
func RunTestSuite(config SuiteConfig) framework.Results {
	broadcaster := config.Broadcaster
	if broadcaster == nil {
		broadcaster = steps.NewBroadcaster()
	}
	env := &environment{
		driverManager: config.DriverManager,
		site:          config.Site,
		broadcaster:   broadcaster,
		stepState:     config.StepState,
	}

	broadcaster.TestSuiteStarted(SuiteName)

	return framework.Run(framework.RunConfig{
		Filter:        config.Filter,
		TestLogger:    config.TestLogger,
		StopOnFailure: config.StopOnFailure,
	}, func(c *framework.Context) {
		t := &T{context: c, env: env}

		t.RunGroup("element visibility", DoElementVisibilityTests)
		t.RunGroup("waiting for elements", DoElementWaitTests)
		t.RunGroup("navigation", DoNavigationTests)
	})
}
