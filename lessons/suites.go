package lessons

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testkata/unit-testing-workshop/health"
	m "github.com/testkata/unit-testing-workshop/matchers"
	"github.com/testkata/unit-testing-workshop/runner"
)

// The suites lesson: related checks are grouped into named scopes so that a
// whole group can be selected with -run, and failures read as a path
// ("test suites/category bands/obese").
func doTestSuiteChecks(t *runner.T) {
	t.Run("body mass index", func(t *runner.T) {
		t.Run("computes mass over height squared", func(t *runner.T) {
			bmi, err := health.BodyMassIndex(70, 1.75)
			require.NoError(t, err)
			m.CloseTo(22.857142857142858, floatTolerance).Require(t, bmi)
		})

		t.Run("rejects non-positive measures", func(t *runner.T) {
			_, err := health.BodyMassIndex(70, 0)
			m.IsError(health.ErrNonPositiveMeasure).Assert(t, err)
			_, err = health.BodyMassIndex(-70, 1.75)
			m.IsError(health.ErrNonPositiveMeasure).Assert(t, err)
		})
	})

	t.Run("category bands", func(t *runner.T) {
		bands := []struct {
			name string
			bmi  float64
			want string
		}{
			{"underweight", 16, "underweight"},
			{"normal", 22, "normal"},
			{"overweight", 27, "overweight"},
			{"obese", 35, "obese"},
		}
		for _, band := range bands {
			band := band
			t.Run(band.name, func(t *runner.T) {
				assert.Equal(t, band.want, health.Category(band.bmi))
			})
		}
	})

	t.Run("band boundaries are half open", func(t *runner.T) {
		assert.Equal(t, "normal", health.Category(18.5))
		assert.Equal(t, "overweight", health.Category(25))
		assert.Equal(t, "obese", health.Category(30))
	})
}
