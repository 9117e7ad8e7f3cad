package steps

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webharness/webdriver-acceptance-tests/reports"
)

type fakeScreenshotter struct {
	captures int
	err      error
}

func (f *fakeScreenshotter) TakeScreenshot() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.captures++
	return fmt.Sprintf("shots/screenshot-%d.png", f.captures), nil
}

func TestBaseListenerCollectsSuccessfulTest(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestSuiteStarted("suite")
	b.TestStarted("a test")
	b.StepStarted(ExecutedStepDescription{Title: "first step"})
	b.StepFinished()
	b.StepStarted(ExecutedStepDescription{Title: "second step"})
	b.StepFinished()
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	outcome := outcomes[0]
	assert.Equal(t, "a test", outcome.Title)
	assert.Equal(t, reports.Success, outcome.Result())
	require.Len(t, outcome.Steps, 2)
	assert.Equal(t, "first step", outcome.Steps[0].Description)
	assert.Equal(t, reports.Success, outcome.Steps[0].Result)
	assert.Equal(t, "suite", b.SuiteName())
}

func TestBaseListenerStepFailureMarksOutcomeAndTakesScreenshot(t *testing.T) {
	shots := &fakeScreenshotter{}
	b := NewBaseListener(shots, nil)
	cause := errors.New("element was not there")

	b.TestStarted("a test")
	b.StepStarted(ExecutedStepDescription{Title: "find the element"})
	b.StepFailed(StepFailure{Description: ExecutedStepDescription{Title: "find the element"}, Err: cause})
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	outcome := outcomes[0]
	assert.Equal(t, reports.Failure, outcome.Result())
	require.Len(t, outcome.Steps, 1)
	assert.Equal(t, reports.Failure, outcome.Steps[0].Result)
	assert.Equal(t, cause, outcome.Steps[0].Err)
	assert.Equal(t, "shots/screenshot-1.png", outcome.Steps[0].ScreenshotPath)
}

func TestBaseListenerScreenshotFailureDoesNotPanicOrFailAgain(t *testing.T) {
	shots := &fakeScreenshotter{err: errors.New("no browser")}
	b := NewBaseListener(shots, nil)

	b.TestStarted("a test")
	b.StepStarted(ExecutedStepDescription{Title: "step"})
	b.StepFailed(StepFailure{Err: errors.New("boom")})
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, reports.Failure, outcomes[0].Result())
	assert.Empty(t, outcomes[0].Steps[0].ScreenshotPath)
}

func TestBaseListenerAStepHasFailedResetsPerTest(t *testing.T) {
	b := NewBaseListener(nil, nil)

	b.TestStarted("first")
	assert.False(t, b.AStepHasFailed())
	b.StepStarted(ExecutedStepDescription{Title: "step"})
	b.StepFailed(StepFailure{Err: errors.New("boom")})
	assert.True(t, b.AStepHasFailed())
	assert.EqualError(t, b.TestFailureCause(), "boom")
	b.TestFinished()

	b.TestStarted("second")
	assert.False(t, b.AStepHasFailed())
	assert.NoError(t, b.TestFailureCause())
}

func TestBaseListenerTestFailedOutsideAnyStep(t *testing.T) {
	shots := &fakeScreenshotter{}
	b := NewBaseListener(shots, nil)
	cause := errors.New("setup exploded")

	b.TestStarted("a test")
	b.TestFailed(cause)
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, reports.Failure, outcomes[0].Result())
	assert.Equal(t, cause, outcomes[0].FailureCause)
	assert.Equal(t, []string{"shots/screenshot-1.png"}, outcomes[0].Screenshots)
}

func TestBaseListenerTestIgnored(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestStarted("not run")
	b.TestIgnored()
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Equal(t, reports.Ignored, outcomes[0].Result())
}

func TestBaseListenerPendingAndIgnoredSteps(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestStarted("a test")
	b.StepStarted(ExecutedStepDescription{Title: "todo"})
	b.StepPending()
	b.StepStarted(ExecutedStepDescription{Title: "skipped"})
	b.StepIgnored()
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	require.Len(t, outcomes[0].Steps, 2)
	assert.Equal(t, reports.Pending, outcomes[0].Steps[0].Result)
	assert.Equal(t, reports.Ignored, outcomes[0].Steps[1].Result)
	assert.Equal(t, reports.Pending, outcomes[0].Result())
}

func TestBaseListenerClosesUnfinishedStepsWhenTestEnds(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestStarted("a test")
	b.StepStarted(ExecutedStepDescription{Title: "never closed"})
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	require.Len(t, outcomes[0].Steps, 1)
	assert.Equal(t, reports.Success, outcomes[0].Steps[0].Result)
}

func TestBaseListenerStepEventsWithNoOpenStepAreNoOps(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestStarted("a test")
	b.StepFinished()
	b.StepFailed(StepFailure{Err: errors.New("boom")})
	b.TestFinished()

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 1)
	assert.Empty(t, outcomes[0].Steps)
	// The failure is still remembered even though no step was open.
	assert.True(t, b.AStepHasFailed())
}

func TestBaseListenerOutcomesIncludesInProgressTest(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestStarted("first")
	b.TestFinished()
	b.TestStarted("still running")

	outcomes := b.Outcomes()
	require.Len(t, outcomes, 2)
	assert.Equal(t, "still running", outcomes[1].Title)
}

func TestBaseListenerNewSuiteResetsOutcomes(t *testing.T) {
	b := NewBaseListener(nil, nil)
	b.TestSuiteStarted("first suite")
	b.TestStarted("test")
	b.TestFinished()

	b.TestSuiteStarted("second suite")
	assert.Empty(t, b.Outcomes())
}
