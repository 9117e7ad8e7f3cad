package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/webharness/webdriver-acceptance-tests/framework"
	"github.com/webharness/webdriver-acceptance-tests/reports"
	"github.com/webharness/webdriver-acceptance-tests/screenshot"
	"github.com/webharness/webdriver-acceptance-tests/site"
	"github.com/webharness/webdriver-acceptance-tests/steps"
	"github.com/webharness/webdriver-acceptance-tests/webdriver"
	"github.com/webharness/webdriver-acceptance-tests/webtests"
)

const defaultSitePort = 8321
const serverQueryTimeout = time.Second * 10

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	config, err := makeDriverConfig(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}

	debugLogger := framework.NullLogger()
	if params.debugAll {
		debugLogger = logrus.New()
	}

	if err := webdriver.WaitForServer(config.ServerURL(), serverQueryTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "WebDriver server error: %s\n", err)
		os.Exit(1)
	}

	siteServer := site.NewServer(params.siteHost, params.sitePort, debugLogger)
	site.RegisterFixturePages(siteServer)
	if err := siteServer.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Test site error: %s\n", err)
		os.Exit(1)
	}
	defer siteServer.Close()

	factory := webdriver.NewFactory(config, debugLogger)
	manager := webdriver.NewManager(factory, debugLogger)
	defer manager.Quit()

	// The browser is started once, before any of the tests run, and shut down at
	// the end of the run.
	if _, err := manager.Driver(); err != nil {
		fmt.Fprintf(os.Stderr, "Browser startup error: %s\n", err)
		os.Exit(1)
	}

	photographer := screenshot.NewPhotographer(manager,
		filepath.Join(config.OutputDir, "screenshots"), debugLogger)
	reportListener := steps.NewBaseListener(photographer, debugLogger)
	broadcaster := steps.NewBroadcaster(reportListener)

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := webtests.RunTestSuite(webtests.SuiteConfig{
		DriverManager: manager,
		Site:          siteServer,
		Broadcaster:   broadcaster,
		StepState:     reportListener,
		Filter:        params.filters.AsFilter,
		TestLogger:    &testLogger,
		StopOnFailure: params.stopOnFailure,
	})

	// Make sure every pending screenshot is on disk before the report refers to it.
	photographer.Close()

	outcomes := reportListener.Outcomes()
	writer := reports.NewWriter(config.OutputDir)
	reportPath, err := writer.WriteOutcomes(webtests.SuiteName, outcomes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report error: %s\n", err)
	} else {
		fmt.Printf("\nWrote report to %s\n", reportPath)
	}

	fmt.Println()
	printResults(results, outcomes)
	if !results.OK() {
		printRerunHint(os.Args, results)
		os.Exit(1)
	}
}

func makeDriverConfig(params commandParams) (webdriver.Config, error) {
	config := webdriver.DefaultConfig()
	if params.configFile != "" {
		loaded, err := webdriver.LoadConfig(params.configFile)
		if err != nil {
			return config, err
		}
		config = loaded
	}
	if params.browser != "" {
		config.Browser = params.browser
	}
	if params.seleniumURL != "" {
		config.SeleniumURL = params.seleniumURL
	}
	if params.outputDir != "" {
		config.OutputDir = params.outputDir
	}
	if params.headless {
		config.Headless = true
	}
	return config, config.Validate()
}

func printResults(results framework.Results, outcomes []reports.TestOutcome) {
	formatter := reports.NewPercentageFormatter(reports.NewProportionCounter(outcomes))

	executed := len(results.Tests) - len(results.Skipped)
	fmt.Printf("Ran %d tests (%d skipped)\n", executed, len(results.Skipped))
	fmt.Printf("  passed:        %s\n", formatter.WithResult(reports.Success))
	fmt.Printf("  failed:        %s\n", formatter.WithResult(reports.Failure))
	fmt.Printf("  indeterminate: %s\n", formatter.WithIndeterminateResult())

	if results.OK() {
		color.Green("All tests passed")
		return
	}
	color.Red("%d tests failed:", len(results.Failures))
	for _, f := range results.Failures {
		fmt.Printf("  %s\n", f.TestID)
	}
}

func printRerunHint(args []string, results framework.Results) {
	var rerun commandBuilder
	rerun.add(args[0])
	for _, f := range results.Failures {
		rerun.add("-run", "^"+regexp.QuoteMeta(f.TestID.String())+"$")
	}
	fmt.Printf("\nTo re-run just the failed tests:\n  %s\n", rerun)
}
