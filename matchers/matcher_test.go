package matchers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTestingT satisfies both assert.TestingT and require.TestingT so tests
// can observe what a matcher reports on failure.
type stubTestingT struct {
	failures  []string
	failedNow bool
}

func (s *stubTestingT) Errorf(format string, args ...interface{}) {
	s.failures = append(s.failures, fmt.Sprintf(format, args...))
}

func (s *stubTestingT) FailNow() { s.failedNow = true }

func TestMatcherTestDescribesFailure(t *testing.T) {
	m := New(
		func(v int) bool { return v > 10 },
		func(int) string { return "greater than 10" },
	)

	pass, desc := m.Test(12)
	assert.True(t, pass)
	assert.Equal(t, "", desc)

	pass, desc = m.Test(3)
	assert.False(t, pass)
	assert.Contains(t, desc, "expected: greater than 10")
	assert.Contains(t, desc, "actual value was: 3")
}

func TestMatcherAssertContinuesOnFailure(t *testing.T) {
	stub := &stubTestingT{}
	ok := Equal(3).Assert(stub, 4)
	assert.False(t, ok)
	assert.False(t, stub.failedNow)
	require.Len(t, stub.failures, 1)
	assert.Contains(t, stub.failures[0], "equal to 3")

	stub = &stubTestingT{}
	assert.True(t, Equal(3).Assert(stub, 3))
	assert.Empty(t, stub.failures)
}

func TestMatcherRequireStopsOnFailure(t *testing.T) {
	stub := &stubTestingT{}
	ok := Equal("a").Require(stub, "b")
	assert.False(t, ok)
	assert.True(t, stub.failedNow)
}

func TestWithValueDescription(t *testing.T) {
	m := Equal(3).WithValueDescription(func(v int) string {
		return fmt.Sprintf("the number %d", v)
	})
	_, desc := m.Test(4)
	assert.Contains(t, desc, "actual value was: the number 4")
}

type stringerValue struct{}

func (stringerValue) String() string { return "stringered" }

func TestDefaultDescription(t *testing.T) {
	assert.Equal(t, "stringered", DefaultDescription(stringerValue{}))
	assert.Equal(t, "3", DefaultDescription(3))
	assert.Equal(t, "{A:1}", DefaultDescription(struct{ A int }{A: 1}))
}
