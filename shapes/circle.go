// Package shapes contains the geometry examples that the workshop lessons are
// built around. The functions are deliberately small; what matters for the
// lessons is their validation behavior and how it is asserted on.
package shapes

import (
	"errors"
	"fmt"
	"math"
)

// ErrNegativeRadius is returned when a radius is a real number but outside the
// valid domain. Lessons refer to this as a value error.
var ErrNegativeRadius = errors.New("radius must not be negative")

// ErrNonFiniteRadius is returned when a radius is NaN or infinite. Lessons
// refer to this as a domain error, the closest Go analog of passing a
// non-numeric value in a dynamically typed language.
var ErrNonFiniteRadius = errors.New("radius must be a finite number")

// ErrInvalidFactor is returned by Circle.Grow for a non-positive or
// non-finite scale factor.
var ErrInvalidFactor = errors.New("growth factor must be a positive finite number")

// Area returns the area of a circle with the given radius.
func Area(radius float64) (float64, error) {
	if err := checkRadius(radius); err != nil {
		return 0, err
	}
	return math.Pi * radius * radius, nil
}

// Circumference returns the circumference of a circle with the given radius.
func Circumference(radius float64) (float64, error) {
	if err := checkRadius(radius); err != nil {
		return 0, err
	}
	return 2 * math.Pi * radius, nil
}

func checkRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w (got %v)", ErrNonFiniteRadius, radius)
	}
	if radius < 0 {
		return fmt.Errorf("%w (got %v)", ErrNegativeRadius, radius)
	}
	return nil
}

// Circle is the mutable object used by the fixture lessons. Each check is
// expected to start from a freshly constructed Circle so that mutations made
// by one check cannot leak into another.
type Circle struct {
	radius float64
	color  string
}

// NewCircle creates a Circle, applying the same radius validation as Area.
// A new Circle is always red, matching the workshop's fixture examples.
func NewCircle(radius float64) (*Circle, error) {
	if err := checkRadius(radius); err != nil {
		return nil, err
	}
	return &Circle{radius: radius, color: "red"}, nil
}

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) Color() string { return c.color }

// SetColor changes the circle's color. There is no validation here on
// purpose; the fixtures lesson uses it as the simplest possible mutation.
func (c *Circle) SetColor(color string) { c.color = color }

// Grow scales the radius by factor.
func (c *Circle) Grow(factor float64) error {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		return fmt.Errorf("%w (got %v)", ErrInvalidFactor, factor)
	}
	c.radius *= factor
	return nil
}

// Area returns the area for the circle's current radius. The radius is
// already validated by NewCircle and Grow, so this cannot fail.
func (c *Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}
