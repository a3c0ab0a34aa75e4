// Package runner executes the workshop's lesson checks. It plays the same
// role for the workshop binary that the standard testing package plays for
// go test: nested named scopes, failure reporting, skips, and teardown.
package runner

import (
	"errors"
	"fmt"
	"runtime"
	"runtime/debug"
)

// Config holds the options for a whole workshop run.
type Config struct {
	// Filter optionally decides which checks run, based on their IDs.
	Filter Filter
	// Reporter receives status callbacks as checks run. If nil, output is
	// discarded (useful in tests).
	Reporter Reporter
	// Context is an application-defined value that checks can read through
	// T.Context.
	Context interface{}
}

type env struct {
	config  Config
	results Results
}

// T represents a check scope. It deliberately mirrors Go's testing.T, and it
// satisfies the testify assert.TestingT and require.TestingT interfaces, so
// lessons can use the same assertion style the students are learning.
type T struct {
	env        *env
	id         ScopeID
	transcript Transcript
	failed     bool
	skipped    bool
	skipReason string
	cleanups   []func()
	errs       []error
	helperFns  []string
}

// Run executes a top-level workshop scope and returns its results.
func Run(config Config, action func(*T)) Results {
	if config.Reporter == nil {
		config.Reporter = nullReporter{}
	}
	e := &env{config: config}
	t := &T{env: e}
	t.run(action)
	return e.results
}

func (t *T) run(action func(*T)) (result CheckResult) {
	result.ID = t.id
	defer func() {
		if r := recover(); r != nil && !t.skipped {
			t.failed = true
			var addErr error
			if _, ok := r.(*T); ok {
				// FailNow panics with the scope itself; any error was
				// already recorded by Errorf.
				if len(t.errs) == 0 {
					addErr = errors.New("check failed with no failure message")
				}
			} else {
				addErr = fmt.Errorf("unexpected panic in check: %+v\n%s", r, string(debug.Stack()))
			}
			if addErr != nil {
				t.errs = append(t.errs, addErr)
				t.env.config.Reporter.CheckError(t.id, addErr)
			}
		}
		// Skipped scopes are counted separately by the caller, not recorded
		// as checks.
		if !t.skipped {
			result.Errors = t.errs
			if t.failed {
				t.env.results.Failures = append(t.env.results.Failures, result)
			}
			t.env.results.Checks = append(t.env.results.Checks, result)
		}
		// Teardown runs however the scope exited, skips included.
		for i := len(t.cleanups) - 1; i >= 0; i-- {
			t.cleanups[i]()
		}
	}()

	action(t)
	return result
}

// ID returns the full name of the current check.
func (t *T) ID() ScopeID {
	return t.id
}

// Run executes a named child scope, like testing.T.Run.
func (t *T) Run(name string, action func(*T)) {
	id := t.id.Child(name)

	t.env.config.Reporter.CheckStarted(id)
	if t.env.config.Filter != nil && !t.env.config.Filter.Match(id) {
		t.env.results.SkipCount++
		t.env.config.Reporter.CheckSkipped(id, "excluded by filter parameters")
		return
	}
	child := &T{id: id, env: t.env}
	t.transcript.attach(&child.transcript)
	result := child.run(action)
	t.transcript.detach(&child.transcript)
	if child.skipped {
		t.env.results.SkipCount++
		t.env.config.Reporter.CheckSkipped(id, child.skipReason)
	} else {
		t.env.config.Reporter.CheckFinished(id, result, child.transcript.Output())
	}
}

// Errorf records a check failure without stopping the check, like
// testing.T.Errorf. Assertion helpers call this through the testify
// TestingT interfaces; lessons rarely call it directly.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	err := fmt.Errorf(format, args...)
	err = attachStack(err, captureStack(t.helperFns))
	t.errs = append(t.errs, err)
	t.env.config.Reporter.CheckError(t.id, err)
}

// FailNow marks the check as failed and stops it immediately.
func (t *T) FailNow() {
	panic(t)
}

// Skip stops the check immediately and marks it as skipped.
func (t *T) Skip() {
	t.skipped = true
	panic(t)
}

// SkipWithReason is Skip with an explanatory message.
func (t *T) SkipWithReason(reason string) {
	t.skipReason = reason
	t.Skip()
}

// Debug writes a line to this check's transcript. Whether the transcript is
// shown depends on the runner's verbosity flags.
func (t *T) Debug(format string, args ...interface{}) {
	t.transcript.Printf(format, args...)
}

// Transcript returns the scope's transcript for use by helpers that want to
// log on the check's behalf.
func (t *T) Transcript() *Transcript {
	return &t.transcript
}

// Defer schedules a teardown function that runs when this scope exits for
// any reason. Unlike a Go defer statement it can be called from helper
// functions, which is how the fixture lessons implement per-check teardown.
func (t *T) Defer(cleanup func()) {
	t.cleanups = append(t.cleanups, cleanup)
}

// Context returns the application-defined context value from the Config.
func (t *T) Context() interface{} {
	return t.env.config.Context
}

// Helper marks the calling function as a helper that should not appear in
// failure stacktraces, like testing.T.Helper.
func (t *T) Helper() {
	pc, _, _, ok := runtime.Caller(1) // 0 is Helper itself, 1 is its caller
	if !ok {
		return
	}
	f := runtime.FuncForPC(pc)
	if f == nil {
		return
	}
	t.helperFns = append(t.helperFns, f.Name())
}
