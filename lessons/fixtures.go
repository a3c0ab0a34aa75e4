package lessons

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/testkata/unit-testing-workshop/matchers"
	"github.com/testkata/unit-testing-workshop/runner"
	"github.com/testkata/unit-testing-workshop/shapes"
)

// The fixtures lesson: every check gets a freshly constructed Circle, so
// mutations made by one check cannot be observed by another, and teardown
// always runs no matter how the check ends.
func doFixtureChecks(t *runner.T) {
	newFixture := func(t *runner.T) *shapes.Circle {
		t.Helper()
		c := mustNewCircle(t, 1)
		t.Defer(func() {
			t.Debug("fixture: discarding circle")
		})
		return c
	}

	t.Run("a new circle is red", func(t *runner.T) {
		c := newFixture(t)
		assert.Equal(t, "red", c.Color())
	})

	t.Run("recoloring only affects this check's circle", func(t *runner.T) {
		c := newFixture(t)
		c.SetColor("blue")
		assert.Equal(t, "blue", c.Color())
	})

	t.Run("the previous check's mutation did not leak", func(t *runner.T) {
		c := newFixture(t)
		assert.Equal(t, "red", c.Color())
	})

	t.Run("growing scales the area by the factor squared", func(t *runner.T) {
		c := newFixture(t)
		before := c.Area()
		require.NoError(t, c.Grow(3))
		m.CloseTo(9*before, floatTolerance).Assert(t, c.Area())
	})

	t.Run("an invalid growth factor leaves the circle unchanged", func(t *runner.T) {
		c := newFixture(t)
		err := c.Grow(-1)
		m.IsError(shapes.ErrInvalidFactor).Require(t, err)
		assert.Equal(t, 1.0, c.Radius())
	})

	t.Run("teardown runs in reverse order", func(t *runner.T) {
		var order []string
		t.Run("a check with two teardowns", func(t *runner.T) {
			t.Defer(func() { order = append(order, "first registered") })
			t.Defer(func() { order = append(order, "second registered") })
		})
		m.DeepEqual([]string{"second registered", "first registered"}).Assert(t, order)
	})
}
