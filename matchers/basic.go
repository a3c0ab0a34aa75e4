package matchers

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Equal matches values equal to the expected value with ==.
func Equal[V comparable](expected V) Matcher[V] {
	return New(
		func(value V) bool { return value == expected },
		func(V) string { return fmt.Sprintf("equal to %s", DefaultDescription(expected)) },
	)
}

// DeepEqual matches values equal to the expected value according to
// reflect.DeepEqual, for slices and other non-comparable types.
func DeepEqual[V any](expected V) Matcher[V] {
	return New(
		func(value V) bool { return reflect.DeepEqual(value, expected) },
		func(V) string { return fmt.Sprintf("deeply equal to %s", DefaultDescription(expected)) },
	)
}

// CloseTo matches floating-point values within tolerance of the expected
// value. This is the matcher the first lesson is built around: area(1)
// should be close to pi, not == to it.
func CloseTo(expected, tolerance float64) Matcher[float64] {
	return New(
		func(value float64) bool {
			return !math.IsNaN(value) && math.Abs(value-expected) <= tolerance
		},
		func(float64) string {
			return fmt.Sprintf("within %v of %v", tolerance, expected)
		},
	)
}

// IsError matches errors for which errors.Is(err, target) is true.
func IsError(target error) Matcher[error] {
	return New(
		func(err error) bool { return errors.Is(err, target) },
		func(error) string { return fmt.Sprintf("an error wrapping %q", target) },
	).WithValueDescription(func(err error) string {
		if err == nil {
			return "no error"
		}
		return fmt.Sprintf("%q", err.Error())
	})
}
