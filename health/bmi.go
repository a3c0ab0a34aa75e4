// Package health contains the body-mass-index example used by the test-suite
// and data-driven lessons.
package health

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositiveMeasure is returned when a mass or height is zero or
// negative (a value error in lesson terms).
var ErrNonPositiveMeasure = errors.New("mass and height must be positive")

// ErrNonFiniteMeasure is returned when a mass or height is NaN or infinite
// (a domain error in lesson terms).
var ErrNonFiniteMeasure = errors.New("mass and height must be finite numbers")

// BodyMassIndex computes mass (kg) divided by height (m) squared.
func BodyMassIndex(massKg, heightM float64) (float64, error) {
	for _, v := range []float64{massKg, heightM} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w (got mass=%v, height=%v)", ErrNonFiniteMeasure, massKg, heightM)
		}
	}
	if massKg <= 0 || heightM <= 0 {
		return 0, fmt.Errorf("%w (got mass=%v, height=%v)", ErrNonPositiveMeasure, massKg, heightM)
	}
	return massKg / (heightM * heightM), nil
}

// Category returns the WHO band for a BMI value.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
