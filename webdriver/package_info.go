// Package webdriver selects, creates, and manages the lifecycle of the Selenium
// WebDriver instance that a test run uses. The harness creates one driver per suite
// run, hands it to test code through a Manager, and quits it when the run ends.
package webdriver
