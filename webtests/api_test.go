package webtests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webharness/webdriver-acceptance-tests/framework"
	"github.com/webharness/webdriver-acceptance-tests/reports"
	"github.com/webharness/webdriver-acceptance-tests/steps"
)

type eventLog struct {
	events []string
}

func (l *eventLog) record(event string)                       { l.events = append(l.events, event) }
func (l *eventLog) TestSuiteStarted(suiteName string)         { l.record("suite " + suiteName) }
func (l *eventLog) TestStarted(description string)            { l.record("test " + description) }
func (l *eventLog) TestFinished()                             { l.record("test finished") }
func (l *eventLog) StepStarted(d steps.ExecutedStepDescription) { l.record("step " + d.Title) }
func (l *eventLog) StepFailed(f steps.StepFailure)            { l.record("step failed: " + f.Err.Error()) }
func (l *eventLog) StepIgnored()                              { l.record("step ignored") }
func (l *eventLog) StepPending()                              { l.record("step pending") }
func (l *eventLog) StepFinished()                             { l.record("step finished") }
func (l *eventLog) TestFailed(cause error)                    { l.record("test failed: " + cause.Error()) }
func (l *eventLog) TestIgnored()                              { l.record("test ignored") }

// runForEvents runs a test tree through the full event pipeline: an event log plus
// a report listener, with the report listener supplying the step state.
func runForEvents(action func(*T), stopOnFailure bool) (*eventLog, *steps.BaseListener, framework.Results) {
	log := &eventLog{}
	reporter := steps.NewBaseListener(nil, nil)
	broadcaster := steps.NewBroadcaster(log, reporter)
	env := &environment{broadcaster: broadcaster, stepState: reporter}

	results := framework.Run(framework.RunConfig{StopOnFailure: stopOnFailure},
		func(c *framework.Context) {
			action(&T{context: c, env: env})
		})
	return log, reporter, results
}

func TestRunReportsOneOutcomePerTest(t *testing.T) {
	log, reporter, results := runForEvents(func(t1 *T) {
		t1.Run("first", func(t2 *T) {
			t2.Step("a step", func() {})
		})
		t1.Run("second", func(t2 *T) {})
	}, false)

	assert.True(t, results.OK())
	assert.Equal(t, []string{
		"test first",
		"step a step",
		"step finished",
		"test finished",
		"test second",
		"test finished",
	}, log.events)

	outcomes := reporter.Outcomes()
	require.Len(t, outcomes, 2)
	assert.Equal(t, "first", outcomes[0].Title)
	assert.Equal(t, reports.Success, outcomes[0].Result())
	assert.Equal(t, reports.Success, outcomes[1].Result())
}

func TestGroupsStructureTheTreeWithoutOutcomes(t *testing.T) {
	log, reporter, _ := runForEvents(func(t1 *T) {
		t1.RunGroup("a group", func(t2 *T) {
			t2.Run("inner", func(*T) {})
		})
	}, false)

	assert.Equal(t, []string{"test a group/inner", "test finished"}, log.events)
	require.Len(t, reporter.Outcomes(), 1)
	assert.Equal(t, "a group/inner", reporter.Outcomes()[0].Title)
}

func TestAssertionFailureInsideStepMarksStepFailed(t *testing.T) {
	log, reporter, results := runForEvents(func(t1 *T) {
		t1.Run("failing", func(t2 *T) {
			t2.Step("broken step", func() {
				assert.Equal(t2, "expected", "actual")
			})
		})
	}, false)

	assert.False(t, results.OK())
	require.Len(t, log.events, 4)
	assert.Equal(t, "step broken step", log.events[1])
	assert.Contains(t, log.events[2], "step failed:")
	// The step failure carries the cause, so there is no separate test-level
	// failure event.
	assert.Equal(t, "test finished", log.events[3])

	outcomes := reporter.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, reports.Failure, outcomes[0].Result())
	assert.Equal(t, reports.Failure, outcomes[0].Steps[0].Result)
}

func TestRequireFailureExitsStepAndTestImmediately(t *testing.T) {
	reached := false
	log, _, results := runForEvents(func(t1 *T) {
		t1.Run("failing", func(t2 *T) {
			t2.Step("fatal step", func() {
				require.Fail(t2, "stopping here")
				reached = true
			})
			t2.Step("never runs", func() {})
		})
	}, false)

	assert.False(t, reached)
	assert.False(t, results.OK())
	require.Len(t, log.events, 4)
	assert.Equal(t, "test failing", log.events[0])
	assert.Equal(t, "step fatal step", log.events[1])
	assert.Contains(t, log.events[2], "step failed:")
	assert.Equal(t, "test finished", log.events[3])
}

func TestFailureOutsideAnyStepIsReportedOnTheTest(t *testing.T) {
	log, reporter, _ := runForEvents(func(t1 *T) {
		t1.Run("failing", func(t2 *T) {
			t2.Errorf("setup went wrong")
		})
	}, false)

	assert.Equal(t, []string{
		"test failing",
		"test failed: setup went wrong",
		"test finished",
	}, log.events)

	outcomes := reporter.Outcomes()
	require.Len(t, outcomes, 1)
	assert.EqualError(t, outcomes[0].FailureCause, "setup went wrong")
}

func TestRemainingTestsAreIgnoredAfterAFailure(t *testing.T) {
	ran := []string{}
	log, reporter, results := runForEvents(func(t1 *T) {
		t1.Run("first", func(t2 *T) {
			ran = append(ran, "first")
			t2.Errorf("boom")
		})
		t1.Run("second", func(*T) { ran = append(ran, "second") })
		t1.Run("third", func(*T) { ran = append(ran, "third") })
	}, true)

	assert.Equal(t, []string{"first"}, ran)
	assert.Len(t, results.Failures, 1)
	assert.Len(t, results.Skipped, 2)

	assert.Equal(t, []string{
		"test first",
		"test failed: boom",
		"test finished",
		"test second",
		"test ignored",
		"test finished",
		"test third",
		"test ignored",
		"test finished",
	}, log.events)

	outcomes := reporter.Outcomes()
	require.Len(t, outcomes, 3)
	assert.Equal(t, reports.Failure, outcomes[0].Result())
	assert.Equal(t, reports.Ignored, outcomes[1].Result())
	assert.Equal(t, reports.Ignored, outcomes[2].Result())
}

func TestPendingAndIgnoredSteps(t *testing.T) {
	log, reporter, results := runForEvents(func(t1 *T) {
		t1.Run("unfinished", func(t2 *T) {
			t2.PendingStep("to be written")
			t2.IgnoredStep("not run on this browser")
		})
	}, false)

	assert.True(t, results.OK())
	assert.Equal(t, []string{
		"test unfinished",
		"step to be written",
		"step pending",
		"step not run on this browser",
		"step ignored",
		"test finished",
	}, log.events)

	outcomes := reporter.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, reports.Pending, outcomes[0].Steps[0].Result)
	assert.Equal(t, reports.Ignored, outcomes[0].Steps[1].Result)
}

func TestRunTestSuiteAnnouncesSuiteName(t *testing.T) {
	// Filter out every test so the suite runs empty: this exercises the suite
	// plumbing without needing a browser.
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("no such test"))

	log := &eventLog{}
	broadcaster := steps.NewBroadcaster(log)
	results := RunTestSuite(SuiteConfig{
		Broadcaster: broadcaster,
		Filter:      filters.AsFilter,
	})

	assert.True(t, results.OK())
	require.NotEmpty(t, log.events)
	assert.Equal(t, "suite "+SuiteName, log.events[0])
}
