package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/webharness/webdriver-acceptance-tests/framework"
)

type commandParams struct {
	browser       string
	seleniumURL   string
	configFile    string
	outputDir     string
	siteHost      string
	sitePort      int
	filters       framework.RegexFilters
	headless      bool
	stopOnFailure bool
	debug         bool
	debugAll      bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.browser, "browser", "", "browser to run the tests in (chrome, firefox, htmlunit)")
	fs.StringVar(&c.seleniumURL, "selenium", "", "base URL of the WebDriver server")
	fs.StringVar(&c.configFile, "config", "", "path of an optional YAML config file")
	fs.StringVar(&c.outputDir, "output", "", "directory for reports and screenshots")
	fs.StringVar(&c.siteHost, "host", "localhost", "external hostname of the built-in test site")
	fs.IntVar(&c.sitePort, "port", defaultSitePort, "port that the built-in test site will listen on")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.headless, "headless", false, "run the browser headlessly")
	fs.BoolVar(&c.stopOnFailure, "stop-on-failure", false, "skip the remaining tests once one has failed")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
