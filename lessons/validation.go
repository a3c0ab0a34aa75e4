package lessons

import (
	"math"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/testkata/unit-testing-workshop/matchers"
	"github.com/testkata/unit-testing-workshop/runner"
	"github.com/testkata/unit-testing-workshop/shapes"
)

// The unhappy-path lesson: a unit test is only half done when it covers the
// inputs the function is supposed to reject.
func doInputValidationChecks(t *runner.T) {
	t.Run("negative radius is a value error", func(t *runner.T) {
		area, err := shapes.Area(-2)
		m.IsError(shapes.ErrNegativeRadius).Require(t, err)
		assert.Zero(t, area)
	})

	t.Run("error message names the offending value", func(t *runner.T) {
		_, err := shapes.Area(-2)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "-2")
	})

	t.Run("NaN radius is a domain error", func(t *runner.T) {
		_, err := shapes.Area(math.NaN())
		m.IsError(shapes.ErrNonFiniteRadius).Require(t, err)
	})

	t.Run("infinite radius is a domain error", func(t *runner.T) {
		for _, sign := range []int{1, -1} {
			_, err := shapes.Area(math.Inf(sign))
			m.IsError(shapes.ErrNonFiniteRadius).Assert(t, err)
		}
	})

	t.Run("the two error kinds are distinct", func(t *runner.T) {
		_, err := shapes.Area(-1)
		m.AllOf(
			m.IsError(shapes.ErrNegativeRadius),
			m.Not(m.IsError(shapes.ErrNonFiniteRadius)),
		).Assert(t, err)
	})

	t.Run("circumference validates the same way", func(t *runner.T) {
		_, err := shapes.Circumference(-1)
		m.IsError(shapes.ErrNegativeRadius).Assert(t, err)
		_, err = shapes.Circumference(math.NaN())
		m.IsError(shapes.ErrNonFiniteRadius).Assert(t, err)
	})
}
