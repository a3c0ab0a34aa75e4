package health

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyMassIndex(t *testing.T) {
	for _, params := range []struct {
		name    string
		massKg  float64
		heightM float64
		want    float64
		wantErr error
	}{
		{"average adult", 70, 1.75, 22.857142857142858, nil},
		{"tall and light", 60, 1.90, 16.620498614958447, nil},
		{"zero mass", 0, 1.75, 0, ErrNonPositiveMeasure},
		{"zero height", 70, 0, 0, ErrNonPositiveMeasure},
		{"negative mass", -70, 1.75, 0, ErrNonPositiveMeasure},
		{"NaN height", 70, math.NaN(), 0, ErrNonFiniteMeasure},
		{"infinite mass", math.Inf(1), 1.75, 0, ErrNonFiniteMeasure},
	} {
		t.Run(params.name, func(t *testing.T) {
			got, err := BodyMassIndex(params.massKg, params.heightM)
			if params.wantErr != nil {
				require.ErrorIs(t, err, params.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, params.want, got, 1e-9)
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "underweight", Category(16))
	assert.Equal(t, "normal", Category(22))
	assert.Equal(t, "overweight", Category(27))
	assert.Equal(t, "obese", Category(35))
}

func TestCategoryBoundaries(t *testing.T) {
	assert.Equal(t, "underweight", Category(18.499999))
	assert.Equal(t, "normal", Category(18.5))
	assert.Equal(t, "overweight", Category(25))
	assert.Equal(t, "obese", Category(30))
}
