// Package reports defines the model for collected test results: per-test outcomes
// with their recorded steps and screenshots, aggregate counters, percentage
// formatting for summaries, and a JSON writer for persisting the model.
package reports
