package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/dubins"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParsePoseSpec(t *testing.T) {
	t.Parallel()

	ps, err := parsePoseSpec("1.5, -2,90")
	require.NoError(t, err)
	assert.Equal(t, PoseSpec{X: 1.5, Y: -2, Heading: 90}, ps)

	pose := ps.Pose()
	assert.InDelta(t, 0, pose.Heading.X, 1e-12)
	assert.InDelta(t, 1, pose.Heading.Y, 1e-12)

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,2,3", "1,,3"} {
		_, err := parsePoseSpec(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	t.Run("valid with radius override", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "ok.json", `{
			"radius": 2,
			"cases": [
				{"name": "straight", "start": {"x": 0, "y": 0, "heading_deg": 0}, "end": {"x": 10, "y": 0, "heading_deg": 0}},
				{"start": {"x": 0, "y": 0, "heading_deg": 0}, "end": {"x": 0, "y": 1, "heading_deg": 180}, "radius": 0.5}
			]
		}`)
		sc, err := LoadScenario(path)
		require.NoError(t, err)
		require.Len(t, sc.Cases, 2)
		assert.Equal(t, "straight", sc.Cases[0].Name)
		assert.Equal(t, 2.0, sc.RadiusFor(sc.Cases[0]))
		assert.Equal(t, 0.5, sc.RadiusFor(sc.Cases[1]))
		assert.InDelta(t, math.Pi, sc.Cases[1].End.Heading*math.Pi/180, 1e-12)
	})

	t.Run("rejects wrong extension", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "scenario.yaml", `{}`)
		_, err := LoadScenario(path)
		assert.ErrorContains(t, err, ".json extension")
	})

	t.Run("rejects missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "bad.json", `{"radius": `)
		_, err := LoadScenario(path)
		assert.ErrorContains(t, err, "parse")
	})

	t.Run("rejects empty scenario", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "empty.json", `{"radius": 1, "cases": []}`)
		_, err := LoadScenario(path)
		assert.ErrorContains(t, err, "no cases")
	})

	t.Run("rejects missing radius", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "noradius.json", `{"cases": [{"start": {"x": 0}, "end": {"x": 1}}]}`)
		_, err := LoadScenario(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, dubins.ErrInvalidRadius))
	})
}
