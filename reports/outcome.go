package reports

import (
	"time"
)

// TestStep is one recorded step within a test.
type TestStep struct {
	Description    string
	Result         Result
	Err            error
	ScreenshotPath string
	Duration       time.Duration
}

// TestOutcome is the collected result of one test: its steps, its overall result,
// and any screenshots taken while it ran.
type TestOutcome struct {
	Title string

	// Marked is the result recorded for the test as a whole, independently of its
	// steps. Tests that never ran keep Success here and report their state through
	// the step-less Marked value set by the listener (Skipped, Ignored, Pending).
	Marked Result

	Steps        []TestStep
	FailureCause error
	Screenshots  []string
	Duration     time.Duration
}

// Result returns the overall result of the test: the worst of the marked result,
// the implicit failure from a recorded failure cause, and the step results.
func (o TestOutcome) Result() Result {
	r := o.Marked
	if o.FailureCause != nil {
		r = r.Worse(Failure)
	}
	for _, s := range o.Steps {
		r = r.Worse(s.Result)
	}
	return r
}

// StepCount returns the number of recorded steps.
func (o TestOutcome) StepCount() int {
	return len(o.Steps)
}
