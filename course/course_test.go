package course

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)

	assert.Equal(t, "unit-testing workshop", m.Course)
	assert.Equal(t,
		[]string{"first assertions", "input validation", "fixtures", "test suites", "data driven"},
		m.Names())

	for _, l := range m.Lessons {
		assert.NotEmpty(t, l.Title, "lesson %q has no title", l.Name)
		assert.NotEmpty(t, l.Topic, "lesson %q has no topic", l.Name)
		assert.NotEmpty(t, l.Doc, "lesson %q has no doc page", l.Name)
	}
}

func TestManifestLesson(t *testing.T) {
	m, err := LoadManifest()
	require.NoError(t, err)

	info, ok := m.Lesson("fixtures")
	require.True(t, ok)
	assert.Equal(t, "Setup and teardown", info.Title)

	_, ok = m.Lesson("no such lesson")
	assert.False(t, ok)
}

func TestLoadAreaCases(t *testing.T) {
	file, err := LoadAreaCases()
	require.NoError(t, err)
	assert.Equal(t, "circle area", file.Name)
	require.NotEmpty(t, file.Cases)

	byName := make(map[string]AreaCase)
	for _, c := range file.Cases {
		byName[c.Name] = c
	}

	unit, ok := byName["unit circle"]
	require.True(t, ok)
	assert.Equal(t, 1.0, unit.Radius)
	assert.InDelta(t, math.Pi, unit.Expected, 1e-12) // the <PI> constant

	negative, ok := byName["negative radius"]
	require.True(t, ok)
	assert.Equal(t, "negative", negative.WantError)
}

func TestLoadBMICases(t *testing.T) {
	file, err := LoadBMICases()
	require.NoError(t, err)
	assert.Equal(t, "body mass index", file.Name)
	require.NotEmpty(t, file.Cases)

	for _, c := range file.Cases {
		if c.WantError == "" {
			assert.InDelta(t, c.Expected, c.MassKg/(c.HeightM*c.HeightM), 1e-9,
				"case %q has an inconsistent expected value", c.Name)
		}
	}
}
