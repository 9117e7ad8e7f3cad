package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
)

const skippedAfterFailureReason = "a previous test has failed"

// RunConfig contains the options for a top-level Run.
type RunConfig struct {
	// Filter, if non-nil, determines which tests are executed.
	Filter Filter

	// TestLogger receives status events as tests run. If nil, events are discarded.
	TestLogger TestLogger

	// StopOnFailure causes every test after the first failing one to be skipped
	// instead of executed.
	StopOnFailure bool
}

type environment struct {
	results       Results
	testLogger    TestLogger
	filter        Filter
	stopOnFailure bool
	aborted       bool
	abortHandlers []func()
}

func (env *environment) noteFailure() {
	if !env.stopOnFailure || env.aborted {
		return
	}
	env.aborted = true
	for _, h := range env.abortHandlers {
		h()
	}
}

type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	skipped     bool
	skipReason  string
	errors      []error
}

func Run(
	config RunConfig,
	action func(*Context),
) Results {
	testLogger := config.TestLogger
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:        config.Filter,
		testLogger:    testLogger,
		stopOnFailure: config.StopOnFailure,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if c.skipped {
				return
			}
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("test failed with no failure message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.testLogger.TestError(c.id, addError)
			}
		}
		result := TestResult{TestID: c.id, Errors: c.errors}
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
			c.env.noteFailure()
		}
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// OnAbort registers a handler that will be called once if the run stops early
// because a test has failed. Handlers are only ever invoked when StopOnFailure
// is in effect.
func (c *Context) OnAbort(handler func()) {
	c.env.abortHandlers = append(c.env.abortHandlers, handler)
}

// Aborted reports whether the run has stopped executing tests due to an earlier
// failure.
func (c *Context) Aborted() bool {
	return c.env.aborted
}

func (c *Context) Run(name string, action func(*Context)) {
	id := c.id.child(name)

	if c.env.aborted {
		c.env.testLogger.TestSkipped(id, skippedAfterFailureReason)
		result := TestResult{TestID: id, Skipped: true, SkipReason: skippedAfterFailureReason}
		c.env.results.Tests = append(c.env.results.Tests, result)
		c.env.results.Skipped = append(c.env.results.Skipped, result)
		return
	}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed, c1.debugLogger.Output())
	}
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
