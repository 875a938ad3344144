package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/midbel/xychart"
	"github.com/midbel/xychart/svgout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	assert.Equal(t, filepath.Join("charts", "cpu.svg"), output(filepath.Join("charts", "cpu.chart.yml"), ""))
	assert.Equal(t, filepath.Join("out", "cpu.svg"), output(filepath.Join("charts", "cpu.yml"), "out"))
}

func TestApply(t *testing.T) {
	chart := xychart.Chart{
		Width: 100,
		Specs: []xychart.SeriesSpec{{ID: "a"}, {ID: "b"}},
	}
	opts := options{
		width:    200,
		rotation: "90",
		palette:  "tableau10",
		split:    []string{"host", "region"},
	}
	require.NoError(t, apply(&chart, opts))
	assert.Equal(t, 200.0, chart.Width)
	assert.Equal(t, xychart.Rotate90, chart.Rotation)
	assert.Equal(t, []string(xychart.Tableau10), chart.Palette)
	for _, s := range chart.Specs {
		assert.Equal(t, []string{"host", "region"}, s.SplitSeriesAccessors)
		assert.Empty(t, s.StackAccessors)
	}

	assert.Error(t, apply(&chart, options{rotation: "left"}))
	assert.Error(t, apply(&chart, options{palette: "rainbow"}))
}

func TestDraw(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "chart.yml")
	content := `
width: 300
height: 200
series:
  - id: cpu
    type: area
    x: x
    y: [y]
    rows:
      - {x: 0, y: 1}
      - {x: 1, y: 3}
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	require.NoError(t, draw(file, options{marker: "square", ticks: 3}))

	out, err := os.ReadFile(filepath.Join(dir, "chart.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<svg")
}

func TestWriteChart(t *testing.T) {
	chart := xychart.Chart{
		Width:  100,
		Height: 100,
		Specs: []xychart.SeriesSpec{{
			ID:         "a",
			XAccessor:  "x",
			YAccessors: []string{"y"},
			Data:       []xychart.Datum{{"x": 1.0, "y": 2.0}},
		}},
	}
	res, err := chart.Compute()
	require.NoError(t, err)

	dir := t.TempDir()
	file := filepath.Join(dir, "a.svg")
	require.NoError(t, writeChart(file, chart, res, svgout.DefaultOptions()))
	out, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(out), "</svg>")

	assert.Error(t, writeChart(filepath.Join(dir, "missing", "a.svg"), chart, res, svgout.DefaultOptions()))
}
