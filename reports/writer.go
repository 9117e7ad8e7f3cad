package reports

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Writer persists collected test outcomes as JSON files in an output directory.
type Writer struct {
	outputDir string
}

func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

type stepJSON struct {
	Description string                 `json:"description"`
	Result      string                 `json:"result"`
	DurationMS  ldvalue.OptionalInt    `json:"durationMs,omitempty"`
	Error       ldvalue.OptionalString `json:"error,omitempty"`
	Screenshot  ldvalue.OptionalString `json:"screenshot,omitempty"`
}

type outcomeJSON struct {
	Title       string                 `json:"title"`
	Result      string                 `json:"result"`
	DurationMS  ldvalue.OptionalInt    `json:"durationMs,omitempty"`
	Error       ldvalue.OptionalString `json:"error,omitempty"`
	Screenshots []string               `json:"screenshots,omitempty"`
	Steps       []stepJSON             `json:"steps,omitempty"`
}

type suiteReportJSON struct {
	Suite    string        `json:"suite"`
	Outcomes []outcomeJSON `json:"outcomes"`
}

// WriteOutcomes serializes the outcomes for one suite into <outputDir>/<suite>.json,
// creating the directory if needed. It returns the path of the written file.
func (w *Writer) WriteOutcomes(suiteName string, outcomes []TestOutcome) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", errors.Wrapf(err, "could not create report directory %s", w.outputDir)
	}

	report := suiteReportJSON{Suite: suiteName}
	for _, o := range outcomes {
		report.Outcomes = append(report.Outcomes, makeOutcomeJSON(o))
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "could not serialize test outcomes")
	}

	path := filepath.Join(w.outputDir, reportFileName(suiteName))
	if err := ioutil.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, "could not write report file %s", path)
	}
	return path, nil
}

func makeOutcomeJSON(o TestOutcome) outcomeJSON {
	out := outcomeJSON{
		Title:       o.Title,
		Result:      o.Result().String(),
		Screenshots: o.Screenshots,
	}
	if o.Duration > 0 {
		out.DurationMS = ldvalue.NewOptionalInt(int(o.Duration.Milliseconds()))
	}
	if o.FailureCause != nil {
		out.Error = ldvalue.NewOptionalString(o.FailureCause.Error())
	}
	for _, s := range o.Steps {
		step := stepJSON{
			Description: s.Description,
			Result:      s.Result.String(),
		}
		if s.Duration > 0 {
			step.DurationMS = ldvalue.NewOptionalInt(int(s.Duration.Milliseconds()))
		}
		if s.Err != nil {
			step.Error = ldvalue.NewOptionalString(s.Err.Error())
		}
		if s.ScreenshotPath != "" {
			step.Screenshot = ldvalue.NewOptionalString(s.ScreenshotPath)
		}
		out.Steps = append(out.Steps, step)
	}
	return out
}

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func reportFileName(suiteName string) string {
	name := unsafeFileNameChars.ReplaceAllString(strings.TrimSpace(suiteName), "_")
	if name == "" {
		name = "results"
	}
	return name + ".json"
}
