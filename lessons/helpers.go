package lessons

import (
	"github.com/stretchr/testify/require"

	"github.com/testkata/unit-testing-workshop/course"
	"github.com/testkata/unit-testing-workshop/health"
	"github.com/testkata/unit-testing-workshop/runner"
	"github.com/testkata/unit-testing-workshop/shapes"
)

// workshopManifest retrieves the course manifest from the run's context.
func workshopManifest(t *runner.T) course.Manifest {
	return t.Context().(workshopContext).manifest
}

// mustNewCircle constructs a Circle and fails the check immediately if the
// radius is rejected. It logs the construction on the check's behalf through
// the scope's transcript.
func mustNewCircle(t *runner.T, radius float64) *shapes.Circle {
	t.Helper()
	c, err := shapes.NewCircle(radius)
	require.NoError(t, err)
	t.Transcript().Printf("created circle radius=%v color=%s", c.Radius(), c.Color())
	return c
}

// areaErrorSentinel maps the symbolic wantError values used in the case
// files onto the shapes package's sentinel errors.
func areaErrorSentinel(t *runner.T, kind string) error {
	t.Helper()
	switch kind {
	case "negative":
		return shapes.ErrNegativeRadius
	case "nonfinite":
		return shapes.ErrNonFiniteRadius
	default:
		t.Errorf("case file uses unknown wantError kind %q", kind)
		t.FailNow()
		return nil
	}
}

// bmiErrorSentinel is areaErrorSentinel's counterpart for the health package.
func bmiErrorSentinel(t *runner.T, kind string) error {
	t.Helper()
	switch kind {
	case "nonpositive":
		return health.ErrNonPositiveMeasure
	case "nonfinite":
		return health.ErrNonFiniteMeasure
	default:
		t.Errorf("case file uses unknown wantError kind %q", kind)
		t.FailNow()
		return nil
	}
}
