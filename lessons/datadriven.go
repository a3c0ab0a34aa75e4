package lessons

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testkata/unit-testing-workshop/course"
	"github.com/testkata/unit-testing-workshop/health"
	m "github.com/testkata/unit-testing-workshop/matchers"
	"github.com/testkata/unit-testing-workshop/runner"
	"github.com/testkata/unit-testing-workshop/shapes"
)

// The data-driven lesson: the same check logic applied to a table of cases
// loaded from a YAML file, so adding coverage means adding data, not code.
func doDataDrivenChecks(t *runner.T) {
	t.Run("circle area cases", func(t *runner.T) {
		file, err := course.LoadAreaCases()
		require.NoError(t, err)
		require.NotEmpty(t, file.Cases)

		for _, c := range file.Cases {
			c := c
			t.Run(c.Name, func(t *runner.T) {
				t.Debug("case: radius=%v expected=%v wantError=%q", c.Radius, c.Expected, c.WantError)
				area, err := shapes.Area(c.Radius)
				if c.WantError != "" {
					m.IsError(areaErrorSentinel(t, c.WantError)).Require(t, err)
					return
				}
				require.NoError(t, err)
				m.CloseTo(c.Expected, floatTolerance).Assert(t, area)
			})
		}
	})

	t.Run("body mass index cases", func(t *runner.T) {
		file, err := course.LoadBMICases()
		require.NoError(t, err)
		require.NotEmpty(t, file.Cases)

		for _, c := range file.Cases {
			c := c
			t.Run(c.Name, func(t *runner.T) {
				t.Debug("case: mass=%v height=%v wantError=%q", c.MassKg, c.HeightM, c.WantError)
				bmi, err := health.BodyMassIndex(c.MassKg, c.HeightM)
				if c.WantError != "" {
					m.IsError(bmiErrorSentinel(t, c.WantError)).Require(t, err)
					return
				}
				require.NoError(t, err)
				m.CloseTo(c.Expected, floatTolerance).Assert(t, bmi)
				if c.Category != "" {
					// guards against typos in the data file itself
					m.AnyOf(
						m.Equal("underweight"), m.Equal("normal"),
						m.Equal("overweight"), m.Equal("obese"),
					).Require(t, c.Category)
					assert.Equal(t, c.Category, health.Category(bmi))
				}
			})
		}
	})
}
