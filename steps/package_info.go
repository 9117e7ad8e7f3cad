// Package steps defines the listener model for test execution flow: components
// interested in test and step events implement Listener, a Broadcaster fans events
// out to any number of listeners, and BaseListener aggregates the events into the
// report model, capturing a screenshot whenever a step or test fails.
package steps
