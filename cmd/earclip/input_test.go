package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/earclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestClip(t *testing.T) {
	_, err := app.Parse([]string{"run"})
	require.NoError(t, err)

	t.Run("xy to completion", func(t *testing.T) {
		// Clockwise on purpose
		*inputFlag = writeInput(t, "square.txt", "0 0\n0 4\n4 4\n4 0\n")
		*formatFlag = "xy"
		*stepsFlag = 0
		session, err := clip()
		require.NoError(t, err)
		assert.Len(t, session.Diagonals, 1)
		assert.Equal(t, earclip.FinalTriangle, session.Polygon().State())
	})

	t.Run("geojson with a step limit", func(t *testing.T) {
		*inputFlag = writeInput(t, "notch.json", `{"type":"Polygon","coordinates":[[[0,0],[4,0],[4,4],[2,1],[0,4],[0,0]]]}`)
		*formatFlag = "geojson"
		*stepsFlag = 1
		session, err := clip()
		require.NoError(t, err)
		assert.Equal(t, []earclip.Diagonal{{Start: earclip.Point{X: 4, Y: 0}, End: earclip.Point{X: 2, Y: 1}}}, session.Diagonals)
		assert.Equal(t, 4, session.Polygon().Len())
	})

	t.Run("svg", func(t *testing.T) {
		*inputFlag = writeInput(t, "notch.svg", `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 4,0 4,4 2,1 0,4" /></svg>`)
		*formatFlag = "svg"
		*stepsFlag = 0
		session, err := clip()
		require.NoError(t, err)
		assert.Len(t, session.Diagonals, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		*inputFlag = writeInput(t, "empty.txt", "")
		*formatFlag = "xy"
		_, err := clip()
		assert.EqualError(t, err, "no points read")
	})
}
