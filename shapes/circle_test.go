package shapes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestArea(t *testing.T) {
	for _, params := range []struct {
		name    string
		radius  float64
		want    float64
		wantErr error
	}{
		{"unit circle", 1, math.Pi, nil},
		{"radius of two", 2, 4 * math.Pi, nil},
		{"zero radius", 0, 0, nil},
		{"negative radius", -2, 0, ErrNegativeRadius},
		{"NaN radius", math.NaN(), 0, ErrNonFiniteRadius},
		{"positive infinity", math.Inf(1), 0, ErrNonFiniteRadius},
		{"negative infinity", math.Inf(-1), 0, ErrNonFiniteRadius},
	} {
		t.Run(params.name, func(t *testing.T) {
			got, err := Area(params.radius)
			if params.wantErr != nil {
				require.ErrorIs(t, err, params.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, params.want, got, 1e-12)
		})
	}
}

func TestAreaErrorMessageNamesValue(t *testing.T) {
	_, err := Area(-2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-2")
}

func TestCircumference(t *testing.T) {
	got, err := Circumference(1)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, got, 1e-12)

	_, err = Circumference(-1)
	assert.ErrorIs(t, err, ErrNegativeRadius)

	_, err = Circumference(math.NaN())
	assert.ErrorIs(t, err, ErrNonFiniteRadius)
}

func TestNewCircleValidatesRadius(t *testing.T) {
	_, err := NewCircle(-1)
	assert.ErrorIs(t, err, ErrNegativeRadius)

	_, err = NewCircle(math.Inf(1))
	assert.ErrorIs(t, err, ErrNonFiniteRadius)
}

// circleFixtureSuite demonstrates per-test setup and teardown: SetupTest
// builds a fresh Circle before every test, so mutations in one test are
// invisible to the next.
type circleFixtureSuite struct {
	suite.Suite
	circle *Circle
}

func (s *circleFixtureSuite) SetupTest() {
	c, err := NewCircle(1)
	s.Require().NoError(err)
	s.circle = c
}

func (s *circleFixtureSuite) TearDownTest() {
	s.circle = nil
}

func (s *circleFixtureSuite) TestNewCircleIsRed() {
	s.Equal("red", s.circle.Color())
}

func (s *circleFixtureSuite) TestSetColor() {
	s.circle.SetColor("blue")
	s.Equal("blue", s.circle.Color())
}

func (s *circleFixtureSuite) TestColorChangeDoesNotLeakBetweenTests() {
	// regardless of test order, SetupTest rebuilt the fixture
	s.Equal("red", s.circle.Color())
}

func (s *circleFixtureSuite) TestGrowScalesRadius() {
	s.Require().NoError(s.circle.Grow(2.5))
	s.InDelta(2.5, s.circle.Radius(), 1e-12)
	s.InDelta(math.Pi*2.5*2.5, s.circle.Area(), 1e-12)
}

func (s *circleFixtureSuite) TestGrowRejectsInvalidFactors() {
	for _, factor := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		err := s.circle.Grow(factor)
		s.ErrorIs(err, ErrInvalidFactor)
	}
	s.InDelta(1.0, s.circle.Radius(), 1e-12, "a rejected Grow must not change the radius")
}

func TestCircleFixtureSuite(t *testing.T) {
	suite.Run(t, new(circleFixtureSuite))
}
