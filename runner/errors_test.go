package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachStackStripsTestifyTrace(t *testing.T) {
	testifyMessage := "\n\tError Trace:\t/some/path/assertions.go:123\n" +
		"\t            \t/some/path/require.go:456\n" +
		"\tError:      \tNot equal: \n" +
		"\t            \texpected: 3\n" +
		"\t            \tactual  : 4"
	err := attachStack(errors.New(testifyMessage), nil)
	assert.NotContains(t, err.Error(), "Error Trace:")
	assert.Contains(t, err.Error(), "Not equal:")

	plain := attachStack(errors.New("plain message"), nil)
	assert.Equal(t, "plain message", plain.Error())
}

func TestAttachStackKeepsFrames(t *testing.T) {
	frames := []StackFrame{
		{File: "fixtures.go", Package: "github.com/testkata/unit-testing-workshop/lessons", Function: "doFixtureChecks", Line: 42},
	}
	err := attachStack(errors.New("boom"), frames)
	var fe FailureError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "boom", fe.Error())
	require.Len(t, fe.Stack, 1)
	assert.Equal(t, "lessons.doFixtureChecks (fixtures.go:42)", fe.Stack[0].String())
}

func TestSplitPackageAndFunction(t *testing.T) {
	pkg, fn := splitPackageAndFunction("github.com/testkata/unit-testing-workshop/runner.Run")
	assert.Equal(t, "github.com/testkata/unit-testing-workshop/runner", pkg)
	assert.Equal(t, "Run", fn)

	pkg, fn = splitPackageAndFunction("github.com/testkata/unit-testing-workshop/runner.(*T).Errorf")
	assert.Equal(t, "github.com/testkata/unit-testing-workshop/runner", pkg)
	assert.Equal(t, "(*T).Errorf", fn)
}
