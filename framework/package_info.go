// Package framework contains the low-level test runner infrastructure that can be
// reused for different kinds of browser test suites.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results, without being tied to the Go test runner.
//
// 2. The runner can be told to stop executing further tests after the first failure;
// the remaining tests are then reported as skipped rather than silently dropped.
//
// 3. Other components can subscribe to run-level events (such as "a test has failed,
// the rest of the run will be skipped") through abort listeners.
//
// The domain-specific code that knows what is being tested is responsible for managing
// the browser driver, the pages under test, and a domain-specific test API on top of
// the test context.
package framework
