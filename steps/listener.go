package steps

// ExecutedStepDescription describes a test step that is about to be run.
type ExecutedStepDescription struct {
	Title string
}

// StepFailure describes a step that failed and the error that caused it.
type StepFailure struct {
	Description ExecutedStepDescription
	Err         error
}

// Listener is a class of component interested in knowing about test execution flow
// and results.
type Listener interface {
	// TestSuiteStarted is called once before any of the suite's tests run.
	TestSuiteStarted(suiteName string)

	// TestStarted is called when a test with the given description has started.
	TestStarted(description string)

	// TestFinished is called when the current test is complete, whatever its result.
	TestFinished()

	// StepStarted is called when a test step is about to run.
	StepStarted(description ExecutedStepDescription)

	// StepFailed is called when the current step fails.
	StepFailed(failure StepFailure)

	// StepIgnored is called when the current step will not be run.
	StepIgnored()

	// StepPending marks the current step as pending implementation.
	StepPending()

	// StepFinished is called when the current step has finished successfully.
	StepFinished()

	// TestFailed is called when the test failed outside of any step.
	TestFailed(cause error)

	// TestIgnored is called when the test as a whole was skipped or ignored.
	TestIgnored()
}
