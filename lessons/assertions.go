package lessons

import (
	"math"

	"github.com/stretchr/testify/require"

	m "github.com/testkata/unit-testing-workshop/matchers"
	"github.com/testkata/unit-testing-workshop/runner"
	"github.com/testkata/unit-testing-workshop/shapes"
)

const floatTolerance = 1e-9

// The first lesson: asserting on return values, and why floating-point
// results are compared with a tolerance rather than ==.
func doFirstAssertionChecks(t *runner.T) {
	t.Run("area of a unit circle is pi", func(t *runner.T) {
		area, err := shapes.Area(1)
		require.NoError(t, err)
		m.CloseTo(math.Pi, floatTolerance).Require(t, area)
	})

	t.Run("area scales with the square of the radius", func(t *runner.T) {
		small, err := shapes.Area(2)
		require.NoError(t, err)
		large, err := shapes.Area(4)
		require.NoError(t, err)
		t.Debug("area(2)=%v area(4)=%v", small, large)
		m.CloseTo(4*small, floatTolerance).Assert(t, large)
	})

	t.Run("circumference of a unit circle is two pi", func(t *runner.T) {
		circ, err := shapes.Circumference(1)
		require.NoError(t, err)
		m.CloseTo(2*math.Pi, floatTolerance).Require(t, circ)
	})

	t.Run("zero radius is a valid degenerate circle", func(t *runner.T) {
		area, err := shapes.Area(0)
		require.NoError(t, err)
		m.Equal(0.0).Assert(t, area)
	})
}
