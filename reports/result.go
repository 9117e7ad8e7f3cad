package reports

// Result is the outcome of a single test or test step.
type Result int

const (
	Success Result = iota
	Ignored
	Pending
	Skipped
	Failure
	Error
)

var resultNames = map[Result]string{
	Success: "SUCCESS",
	Ignored: "IGNORED",
	Pending: "PENDING",
	Skipped: "SKIPPED",
	Failure: "FAILURE",
	Error:   "ERROR",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// Worse returns the more severe of the two results. Severity follows the declaration
// order: an error outweighs a failure, which outweighs any non-executed state, which
// outweighs success.
func (r Result) Worse(other Result) Result {
	if other > r {
		return other
	}
	return r
}

// Executed reports whether this result came from actually running the test, as
// opposed to skipping or deferring it.
func (r Result) Executed() bool {
	return r == Success || r == Failure || r == Error
}
