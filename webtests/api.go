// Package webtests contains the browser acceptance test suite and the test API it
// is written against.
package webtests

import (
	"fmt"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"

	"github.com/webharness/webdriver-acceptance-tests/framework"
	"github.com/webharness/webdriver-acceptance-tests/pages"
	"github.com/webharness/webdriver-acceptance-tests/site"
	"github.com/webharness/webdriver-acceptance-tests/steps"
	"github.com/webharness/webdriver-acceptance-tests/webdriver"
)

const awaitSiteRequestTimeout = time.Second * 5

type environment struct {
	driverManager *webdriver.Manager
	site          *site.Server
	broadcaster   *steps.Broadcaster
	stepState     StepState
}

// StepState lets the test API ask whether a step has already failed in the current
// test, so a failure outside any step is not reported twice.
// *steps.BaseListener satisfies it.
type StepState interface {
	AStepHasFailed() bool
}

// T represents a test or subtest in the browser acceptance suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such as
// debug logging and step recording. Those features are provided by the lower-level
// framework and steps packages.
//
// To make test assertions, you can use the assert and require packages, passing the
// *T as if it were a *testing.T.
type T struct {
	context  *framework.Context
	env      *environment
	lastErr  error
	errCount int
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.lastErr = fmt.Errorf(format, args...)
	t.errCount++
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The
// methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// RunGroup runs a named group of tests. Groups only structure the test tree; they
// do not produce report outcomes of their own.
func (t *T) RunGroup(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Run runs a single test. The step listeners are notified of the test's start,
// failure, and completion, so each call produces one outcome in the report.
//
// If an earlier test has failed and the run is configured to stop on failure, the
// test is not executed: it is reported as ignored, the way the rest of the run's
// tests will be.
func (t *T) Run(name string, action func(*T)) {
	b := t.env.broadcaster

	if t.context.Aborted() {
		id := framework.TestID{Path: append(append([]string(nil), t.context.ID().Path...), name)}
		b.TestStarted(id.String())
		b.TestIgnored()
		b.TestFinished()
		// Still record the skip in the runner results; the runner will not invoke
		// the action while the run is aborted.
		t.context.Run(name, func(*framework.Context) {})
		return
	}

	t.context.Run(name, func(c *framework.Context) {
		t1 := &T{context: c, env: t.env}
		b.TestStarted(c.ID().String())
		defer b.TestFinished()
		defer func() {
			if r := recover(); r != nil {
				t1.reportTestFailure(r)
				panic(r)
			}
			if t1.errCount > 0 {
				t1.reportTestFailure(nil)
			}
		}()
		action(t1)
	})
}

func (t *T) reportTestFailure(panicValue interface{}) {
	if t.env.stepState != nil && t.env.stepState.AStepHasFailed() {
		// The failing step already carries the cause and the screenshot.
		return
	}
	err := t.lastErr
	if err == nil {
		if _, ok := panicValue.(*framework.Context); ok || panicValue == nil {
			err = fmt.Errorf("test failed with no failure message")
		} else {
			err = fmt.Errorf("unexpected panic in test: %+v", panicValue)
		}
	}
	t.env.broadcaster.TestFailed(err)
}

// Step runs a named step of the current test, notifying the step listeners of its
// start and result. A failure inside the step (either an assertion error or a
// FailNow exit) marks the step as failed, which is what triggers the
// screenshot-on-failure hook in the report listener.
func (t *T) Step(title string, action func()) {
	b := t.env.broadcaster
	description := steps.ExecutedStepDescription{Title: title}
	b.StepStarted(description)
	errsBefore := t.errCount
	defer func() {
		if r := recover(); r != nil {
			b.StepFailed(steps.StepFailure{Description: description, Err: t.stepError()})
			panic(r)
		}
		if t.errCount > errsBefore {
			b.StepFailed(steps.StepFailure{Description: description, Err: t.stepError()})
		} else {
			b.StepFinished()
		}
	}()
	action()
}

// PendingStep records a step that is not implemented yet.
func (t *T) PendingStep(title string) {
	t.env.broadcaster.StepStarted(steps.ExecutedStepDescription{Title: title})
	t.env.broadcaster.StepPending()
}

// IgnoredStep records a step that was deliberately not run.
func (t *T) IgnoredStep(title string) {
	t.env.broadcaster.StepStarted(steps.ExecutedStepDescription{Title: title})
	t.env.broadcaster.StepIgnored()
}

func (t *T) stepError() error {
	if t.lastErr != nil {
		return t.lastErr
	}
	return fmt.Errorf("step failed with no failure message")
}

// Driver returns the browser driver for this test run, starting the browser if
// this is its first use. The test fails and immediately exits if the driver cannot
// be created.
func (t *T) Driver() selenium.WebDriver {
	driver, err := t.env.driverManager.Driver()
	require.NoError(t, err)
	return driver
}

// Page returns a page-object helper bound to this test run's browser.
func (t *T) Page() *pages.Page {
	return pages.NewPage(pages.FromSelenium(t.Driver()))
}

// OpenPage navigates the browser to a page of the built-in test site and returns a
// page object for it. The test fails and immediately exits if navigation fails.
func (t *T) OpenPage(path string) *pages.Page {
	page := t.Page()
	url := t.env.site.PageURL(path)
	t.Debug("opening %s", url)
	require.NoError(t, page.Open(url))
	return page
}

// RequireSiteRequest waits until the browser has made a request for the given path
// on the test site. It fails and immediately exits the test if no such request
// arrives in time.
func (t *T) RequireSiteRequest(path string) site.RequestInfo {
	deadline := time.Now().Add(awaitSiteRequestTimeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			require.Failf(t, "timed out", "no request for %s arrived at the test site", path)
		}
		info, err := t.env.site.AwaitRequest(remaining)
		require.NoError(t, err)
		if info.Path == path {
			return info
		}
		t.Debug("ignoring request for %s while waiting for %s", info.Path, path)
	}
}

// Debug logs some debug output for the test. The output will be passed to the test
// logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}
