package steps

import (
	"sync"
	"time"

	"github.com/webharness/webdriver-acceptance-tests/framework"
	"github.com/webharness/webdriver-acceptance-tests/reports"
)

// Screenshotter captures a screenshot and returns the path it will be stored at.
// *screenshot.Photographer satisfies it.
type Screenshotter interface {
	TakeScreenshot() (string, error)
}

// BaseListener aggregates test and step events into reports.TestOutcome values.
// When a step or a test fails, it asks the Screenshotter for a screenshot and
// attaches the stored path to the failing step or test. A nil Screenshotter
// disables screenshots.
type BaseListener struct {
	photographer  Screenshotter
	logger        framework.Logger
	suiteName     string
	outcomes      []reports.TestOutcome
	current       *reports.TestOutcome
	testStart     time.Time
	openSteps     []int // indexes into current.Steps, innermost last
	stepStarts    []time.Time
	stepHasFailed bool
	failureCause  error
	lock          sync.Mutex
}

func NewBaseListener(photographer Screenshotter, logger framework.Logger) *BaseListener {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &BaseListener{photographer: photographer, logger: logger}
}

func (b *BaseListener) TestSuiteStarted(suiteName string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.suiteName = suiteName
	b.outcomes = nil
	b.current = nil
}

func (b *BaseListener) TestStarted(description string) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.finishCurrentLocked()
	b.current = &reports.TestOutcome{Title: description}
	b.testStart = time.Now()
	b.openSteps = nil
	b.stepStarts = nil
	b.stepHasFailed = false
	b.failureCause = nil
}

func (b *BaseListener) TestFinished() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.finishCurrentLocked()
}

func (b *BaseListener) StepStarted(description ExecutedStepDescription) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.current == nil {
		return
	}
	b.current.Steps = append(b.current.Steps, reports.TestStep{Description: description.Title})
	b.openSteps = append(b.openSteps, len(b.current.Steps)-1)
	b.stepStarts = append(b.stepStarts, time.Now())
}

func (b *BaseListener) StepFailed(failure StepFailure) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.stepHasFailed = true
	b.failureCause = failure.Err
	step := b.closeStepLocked(reports.Failure)
	if step == nil {
		return
	}
	step.Err = failure.Err
	if path, ok := b.takeScreenshotLocked(); ok {
		step.ScreenshotPath = path
	}
}

func (b *BaseListener) StepIgnored() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.closeStepLocked(reports.Ignored)
}

func (b *BaseListener) StepPending() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.closeStepLocked(reports.Pending)
}

func (b *BaseListener) StepFinished() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.closeStepLocked(reports.Success)
}

func (b *BaseListener) TestFailed(cause error) {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.failureCause = cause
	if b.current == nil {
		return
	}
	b.current.FailureCause = cause
	if path, ok := b.takeScreenshotLocked(); ok {
		b.current.Screenshots = append(b.current.Screenshots, path)
	}
}

func (b *BaseListener) TestIgnored() {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.current == nil {
		return
	}
	b.current.Marked = reports.Ignored
}

// Outcomes returns the outcomes collected so far, including the in-progress test if
// there is one.
func (b *BaseListener) Outcomes() []reports.TestOutcome {
	b.lock.Lock()
	defer b.lock.Unlock()
	ret := append([]reports.TestOutcome(nil), b.outcomes...)
	if b.current != nil {
		ret = append(ret, *b.current)
	}
	return ret
}

// AStepHasFailed reports whether a step failure has been logged since the current
// test started. The flag is shared so that multiple step libraries can coordinate.
func (b *BaseListener) AStepHasFailed() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.stepHasFailed
}

// TestFailureCause returns the error from the most recent failure, if any.
func (b *BaseListener) TestFailureCause() error {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.failureCause
}

// SuiteName returns the name given in the last TestSuiteStarted event.
func (b *BaseListener) SuiteName() string {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.suiteName
}

func (b *BaseListener) finishCurrentLocked() {
	if b.current == nil {
		return
	}
	// Any step still open when the test ends failed to report completion; treat it
	// as finished so the report stays consistent.
	for len(b.openSteps) > 0 {
		b.closeStepLocked(reports.Success)
	}
	b.current.Duration = time.Since(b.testStart)
	b.outcomes = append(b.outcomes, *b.current)
	b.current = nil
}

func (b *BaseListener) closeStepLocked(result reports.Result) *reports.TestStep {
	if b.current == nil || len(b.openSteps) == 0 {
		return nil
	}
	idx := b.openSteps[len(b.openSteps)-1]
	b.openSteps = b.openSteps[:len(b.openSteps)-1]
	start := b.stepStarts[len(b.stepStarts)-1]
	b.stepStarts = b.stepStarts[:len(b.stepStarts)-1]

	step := &b.current.Steps[idx]
	step.Result = step.Result.Worse(result)
	step.Duration = time.Since(start)
	return step
}

func (b *BaseListener) takeScreenshotLocked() (string, bool) {
	if b.photographer == nil {
		return "", false
	}
	path, err := b.photographer.TakeScreenshot()
	if err != nil {
		// A failed capture must not fail the test a second time.
		b.logger.Printf("Could not capture screenshot for failed step: %s", err)
		return "", false
	}
	return path, true
}
