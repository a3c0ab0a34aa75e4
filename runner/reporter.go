package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	checkErrorColor   = color.New(color.FgYellow)           //nolint:gochecknoglobals
	checkFailedColor  = color.New(color.FgRed)              //nolint:gochecknoglobals
	checkSkippedColor = color.New(color.Faint, color.FgBlue) //nolint:gochecknoglobals
	transcriptColor   = color.New(color.Faint)              //nolint:gochecknoglobals
	allPassedColor    = color.New(color.FgGreen)            //nolint:gochecknoglobals
)

// Reporter receives status callbacks during a workshop run.
type Reporter interface {
	CheckStarted(id ScopeID)
	CheckError(id ScopeID, err error)
	CheckFinished(id ScopeID, result CheckResult, transcript Output)
	CheckSkipped(id ScopeID, reason string)
	// EndRun is called once after the run with the final results.
	EndRun(results Results) error
}

type nullReporter struct{}

func (nullReporter) CheckStarted(ScopeID)                      {}
func (nullReporter) CheckError(ScopeID, error)                 {}
func (nullReporter) CheckFinished(ScopeID, CheckResult, Output) {}
func (nullReporter) CheckSkipped(ScopeID, string)              {}
func (nullReporter) EndRun(Results) error                      { return nil }

// ConsoleReporter prints check progress and the end-of-run summary to the
// terminal.
type ConsoleReporter struct {
	// TranscriptOnFailure prints a failed check's transcript below the
	// failure (-v).
	TranscriptOnFailure bool
	// TranscriptAlways prints every check's transcript (-vv).
	TranscriptAlways bool
	// Out is where output goes; os.Stdout if nil.
	Out io.Writer
}

func (c ConsoleReporter) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c ConsoleReporter) CheckStarted(id ScopeID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c ConsoleReporter) CheckError(id ScopeID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		_, _ = checkErrorColor.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c ConsoleReporter) CheckFinished(id ScopeID, result CheckResult, transcript Output) {
	failed := len(result.Errors) != 0
	if failed {
		_, _ = checkFailedColor.Fprintf(c.out(), "  FAILED: %s\n", id)
	}
	if len(transcript) > 0 &&
		((failed && c.TranscriptOnFailure) || (!failed && c.TranscriptAlways)) {
		_, _ = transcriptColor.Fprintln(c.out(), transcript.Indent("    DEBUG "))
	}
}

func (c ConsoleReporter) CheckSkipped(id ScopeID, reason string) {
	if reason == "" {
		_, _ = checkSkippedColor.Fprintf(c.out(), "  SKIPPED: %s\n", id)
	} else {
		_, _ = checkSkippedColor.Fprintf(c.out(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}

// EndRun prints the pass/fail/skip counts, and on failure, the list of
// failed checks.
func (c ConsoleReporter) EndRun(results Results) error {
	passed, failed, skipped := results.Counts()
	fmt.Fprintln(c.out())
	if results.OK() {
		_, _ = allPassedColor.Fprintln(c.out(), "All checks passed")
	} else {
		_, _ = checkFailedColor.Fprintf(c.out(), "FAILED CHECKS (%d):\n", failed)
		for _, f := range results.Failures {
			_, _ = checkFailedColor.Fprintf(c.out(), "  * %s\n", f.ID)
		}
	}
	fmt.Fprintf(c.out(), "%d passed, %d failed, %d skipped\n", passed, failed, skipped)
	return nil
}

// MultiReporter fans callbacks out to several reporters, such as the console
// plus a JUnit file.
type MultiReporter struct {
	Reporters []Reporter
}

func (m MultiReporter) CheckStarted(id ScopeID) {
	for _, r := range m.Reporters {
		r.CheckStarted(id)
	}
}

func (m MultiReporter) CheckError(id ScopeID, err error) {
	for _, r := range m.Reporters {
		r.CheckError(id, err)
	}
}

func (m MultiReporter) CheckFinished(id ScopeID, result CheckResult, transcript Output) {
	for _, r := range m.Reporters {
		r.CheckFinished(id, result, transcript)
	}
}

func (m MultiReporter) CheckSkipped(id ScopeID, reason string) {
	for _, r := range m.Reporters {
		r.CheckSkipped(id, reason)
	}
}

func (m MultiReporter) EndRun(results Results) error {
	var firstErr error
	for _, r := range m.Reporters {
		if err := r.EndRun(results); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
