package runner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeIDStringAndChild(t *testing.T) {
	id := ScopeID{"fixtures"}.Child("a new circle is red")
	assert.Equal(t, "fixtures/a new circle is red", id.String())
	assert.Equal(t, "fixtures", id.Lesson())
	assert.Equal(t, "", ScopeID(nil).Lesson())

	// Child must not alias the parent's backing array
	base := ScopeID{"a"}
	c1 := base.Child("b")
	c2 := base.Child("c")
	assert.Equal(t, "a/b", c1.String())
	assert.Equal(t, "a/c", c2.String())
}

func TestResultsCounts(t *testing.T) {
	r := Results{
		Checks: []CheckResult{
			{ID: ScopeID{"a", "1"}},
			{ID: ScopeID{"a", "2"}, Errors: []error{errors.New("x")}},
			{ID: ScopeID{"a"}},
		},
		Failures: []CheckResult{
			{ID: ScopeID{"a", "2"}, Errors: []error{errors.New("x")}},
		},
		SkipCount: 3,
	}
	passed, failed, skipped := r.Counts()
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 3, skipped)
	assert.False(t, r.OK())
}

func TestResultsLessonPassed(t *testing.T) {
	r := Results{
		Checks: []CheckResult{
			{ID: ScopeID{"fixtures", "a"}},
			{ID: ScopeID{"fixtures"}},
			{ID: ScopeID{"suites", "b"}},
			{ID: ScopeID{"suites"}},
		},
		Failures: []CheckResult{
			{ID: ScopeID{"suites", "b"}},
		},
	}

	ran, passed := r.LessonPassed("fixtures")
	assert.True(t, ran)
	assert.True(t, passed)

	ran, passed = r.LessonPassed("suites")
	assert.True(t, ran)
	assert.False(t, passed)

	ran, _ = r.LessonPassed("data driven")
	assert.False(t, ran)
}
