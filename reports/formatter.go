package reports

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericalFormatter renders ratios as human-readable percentages.
type NumericalFormatter struct{}

// Percentage formats a 0..1 ratio as a percentage with at most the specified number
// of decimal places. Trailing zeros (and a trailing decimal point) are dropped, so
// 0.5 formats as "50%" rather than "50.0%".
func (f NumericalFormatter) Percentage(value float64, precision int) string {
	s := strconv.FormatFloat(value*100, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s + "%"
}

// ProportionCounter computes what fraction of a set of test outcomes ended with a
// given result.
type ProportionCounter struct {
	outcomes []TestOutcome
}

func NewProportionCounter(outcomes []TestOutcome) ProportionCounter {
	return ProportionCounter{outcomes: outcomes}
}

func (c ProportionCounter) WithResult(expected Result) float64 {
	if len(c.outcomes) == 0 {
		return 0
	}
	count := 0
	for _, o := range c.outcomes {
		if o.Result() == expected {
			count++
		}
	}
	return float64(count) / float64(len(c.outcomes))
}

// WithIndeterminateResult returns the fraction of outcomes that did not actually
// execute: skipped, ignored, or pending tests.
func (c ProportionCounter) WithIndeterminateResult() float64 {
	if len(c.outcomes) == 0 {
		return 0
	}
	count := 0
	for _, o := range c.outcomes {
		if !o.Result().Executed() {
			count++
		}
	}
	return float64(count) / float64(len(c.outcomes))
}

const percentagePrecision = 1

// PercentageFormatter renders the proportions from a ProportionCounter as
// percentage strings for summaries.
type PercentageFormatter struct {
	counter   ProportionCounter
	formatter NumericalFormatter
}

func NewPercentageFormatter(counter ProportionCounter) PercentageFormatter {
	return PercentageFormatter{counter: counter}
}

func (p PercentageFormatter) WithResult(expected Result) string {
	return p.formatter.Percentage(p.counter.WithResult(expected), percentagePrecision)
}

// WithNamedResult is like WithResult but takes the result name ("SUCCESS",
// "failure", ...) in any case.
func (p PercentageFormatter) WithNamedResult(name string) (string, error) {
	expected, ok := ParseResult(name)
	if !ok {
		return "", fmt.Errorf("unknown test result name %q", name)
	}
	return p.WithResult(expected), nil
}

func (p PercentageFormatter) WithIndeterminateResult() string {
	return p.formatter.Percentage(p.counter.WithIndeterminateResult(), percentagePrecision)
}

// ParseResult converts a result name in any case to a Result value.
func ParseResult(name string) (Result, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for r, n := range resultNames {
		if n == upper {
			return r, true
		}
	}
	return Success, false
}
