// These tests live outside the runner package on purpose: stacktrace capture
// filters out the runner's own frames, so the reporting call site has to be
// in a different package for any frames to survive.
package runner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testkata/unit-testing-workshop/runner"
)

func TestErrorfCapturesCallerFrames(t *testing.T) {
	results := runner.Run(runner.Config{}, func(wt *runner.T) {
		wt.Run("check", func(wt0 *runner.T) {
			wt0.Errorf("boom")
		})
	})
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)

	var fe runner.FailureError
	require.ErrorAs(t, results.Failures[0].Errors[0], &fe)
	require.NotEmpty(t, fe.Stack)
	assert.Equal(t, "stacktrace_ext_test.go", fe.Stack[0].File)
}

func failViaHelper(wt *runner.T) {
	wt.Helper()
	wt.Errorf("boom")
}

func TestHelperFramesAreExcluded(t *testing.T) {
	results := runner.Run(runner.Config{}, func(wt *runner.T) {
		wt.Run("check", func(wt0 *runner.T) {
			failViaHelper(wt0)
		})
	})
	require.Len(t, results.Failures, 1)

	var fe runner.FailureError
	require.ErrorAs(t, results.Failures[0].Errors[0], &fe)
	require.NotEmpty(t, fe.Stack)
	for _, frame := range fe.Stack {
		assert.False(t, strings.Contains(frame.String(), "failViaHelper"),
			"helper frame %s should have been excluded", frame)
	}
	// the surviving top frame is the call site inside the check itself
	assert.Equal(t, "stacktrace_ext_test.go", fe.Stack[0].File)
}
