// Package matchers is a small assertion DSL used by the lesson checks.
// Matchers are constructed separately from the values being tested and can
// be negated or combined; on failure they describe both the expectation and
// the actual value.
package matchers

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Matcher is a reusable expectation about a value of type V.
type Matcher[V any] struct {
	test          func(V) bool
	describeTest  func(V) string
	describeValue func(V) string
}

// New creates a Matcher from a test function and a function that describes
// the expectation (used in failure messages; the actual value is appended
// automatically).
func New[V any](test func(V) bool, describeTest func(V) string) Matcher[V] {
	return Matcher[V]{test: test, describeTest: describeTest}
}

// Test applies the matcher to a value. On failure it returns a description
// of the failed expectation.
func (m Matcher[V]) Test(value V) (pass bool, failDescription string) {
	if m.test(value) {
		return true, ""
	}
	return false, fmt.Sprintf("expected: %s\nactual value was: %s",
		m.describeTest(value), m.valueString(value))
}

// Assert applies the matcher through the testify/assert contract: on failure
// it reports the error but allows the check to continue.
func (m Matcher[V]) Assert(t assert.TestingT, value V) bool {
	if pass, desc := m.Test(value); !pass {
		assert.Fail(t, desc)
		return false
	}
	return true
}

// Require applies the matcher through the testify/require contract: on
// failure the check stops immediately.
func (m Matcher[V]) Require(t require.TestingT, value V) bool {
	if pass, desc := m.Test(value); !pass {
		require.Fail(t, desc)
		return false
	}
	return true
}

// WithValueDescription overrides how the actual value is rendered in failure
// messages.
func (m Matcher[V]) WithValueDescription(describeValue func(V) string) Matcher[V] {
	ret := m
	ret.describeValue = describeValue
	return ret
}

func (m Matcher[V]) valueString(value V) string {
	if m.describeValue != nil {
		return m.describeValue(value)
	}
	return DefaultDescription(value)
}

// DefaultDescription renders a value for failure messages: String() if the
// value is a fmt.Stringer, otherwise "%+v".
func DefaultDescription(value any) string {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", value)
}
