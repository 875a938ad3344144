package xychart

import (
	"strings"
	"testing"

	"github.com/midbel/xychart/curve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatted(points ...rawPoint) []SeriesDatum {
	return FormatNonStacked([]RawSeries{rawSeries("spec", points...)}, false)[0].Data
}

func ordinalScale(values ...any) Scaler {
	return BandScaler(values, NewRange(0, 100), 0, 0)
}

func linearScale(lo, hi float64) Scaler {
	return ContinuousScaler(ScaleLinear, lo, hi, NewRange(100, 0), ContinuousOptions{})
}

var testID = GeometryID{SpecID: "spec", SeriesKey: []any{"spec"}}

func TestRenderLine(t *testing.T) {
	var (
		data = formatted(pt(0.0, 10), pt(1.0, 5))
		xs   = ordinalScale(0.0, 1.0)
		ys   = linearScale(0, 10)
	)
	line, index := RenderLine(0, data, xs, ys, "red", testID, LineOptions{})
	assert.Equal(t, "M0,0L50,50", line.Line)
	assert.Equal(t, "red", line.Color)
	assert.True(t, line.GeometryID.Equal(testID))

	require.Len(t, line.Points, 2)
	assert.Equal(t, 0.0, line.Points[0].X)
	assert.Equal(t, 0.0, line.Points[0].Y)
	assert.Equal(t, 50.0, line.Points[1].X)
	assert.Equal(t, 50.0, line.Points[1].Y)
	for _, p := range line.Points {
		assert.Equal(t, float64(DefaultPointRadius), p.Radius)
	}
	assert.Equal(t, 2, index.Len())
	assert.Equal(t, []any{0.0, 1.0}, index.Keys())
}

func TestRenderLineMultipleSeries(t *testing.T) {
	var (
		xs = ordinalScale(0.0, 1.0)
		ys = linearScale(0, 10)
	)
	first, _ := RenderLine(0, formatted(pt(0.0, 5), pt(1.0, 2.5)), xs, ys, "red", testID, LineOptions{})
	second, _ := RenderLine(0, formatted(pt(0.0, 10), pt(1.0, 5)), xs, ys, "blue", testID, LineOptions{})
	assert.Equal(t, "M0,50L50,75", first.Line)
	assert.Equal(t, "M0,0L50,50", second.Line)
}

func TestRenderArea(t *testing.T) {
	var (
		data = formatted(pt(0.0, 10), pt(1.0, 5))
		xs   = ordinalScale(0.0, 1.0)
		ys   = linearScale(0, 10)
	)
	area, index := RenderArea(0, data, xs, ys, "red", testID, LineOptions{})
	assert.Equal(t, "M0,0L50,50L50,100L0,100Z", area.Area)
	assert.Equal(t, []string{"M0,0L50,50"}, area.Lines)
	assert.Len(t, area.Points, 2)
	assert.Equal(t, 2, index.Len())

	banded := formatted(band(0.0, 2, 10), band(1.0, 1, 5))
	area, _ = RenderArea(0, banded, xs, ys, "red", testID, LineOptions{HasY0: true})
	assert.Equal(t, "M0,0L50,50L50,90L0,80Z", area.Area)
	assert.Equal(t, []string{"M0,0L50,50", "M0,80L50,90"}, area.Lines)
	assert.Len(t, area.Points, 4)
}

func TestRenderPathSplit(t *testing.T) {
	var (
		data = formatted(pt(0.0, 10), null(1.0), pt(2.0, 10))
		xs   = ordinalScale(0.0, 1.0, 2.0)
		ys   = linearScale(0, 10)
	)
	for _, c := range []curve.Type{curve.Linear, curve.MonotoneX, curve.Step, curve.Basis} {
		opts := LineOptions{Curve: c}
		line, index := RenderLine(0, data, xs, ys, "red", testID, opts)
		assert.Equal(t, 2, strings.Count(line.Line, "M"), c.String())
		assert.Equal(t, 2, index.Len())

		area, _ := RenderArea(0, data, xs, ys, "red", testID, opts)
		assert.Equal(t, 2, strings.Count(area.Area, "M"), c.String())
	}
}

func TestRenderPointsLogScale(t *testing.T) {
	var (
		data = formatted(pt(0.0, 0), null(1.0), pt(2.0, 10))
		xs   = ordinalScale(0.0, 1.0, 2.0)
		ys   = ContinuousScaler(ScaleLog, 1, 100, NewRange(100, 0), ContinuousOptions{})
	)
	points, index := RenderPoints(0, data, xs, ys, "red", testID, false)
	require.Len(t, points, 1)
	assert.Equal(t, 2.0, points[0].Value.X)

	assert.Equal(t, 2, index.Len())
	assert.False(t, index.Has(1.0))
	hidden := index.Find(0.0)
	require.Len(t, hidden, 1)
	p, ok := hidden[0].(PointGeometry)
	require.True(t, ok)
	assert.Zero(t, p.Radius)
	assert.Equal(t, 100.0, p.Y)
	assert.Equal(t, Float(0), p.Value.Y)

	line, _ := RenderLine(0, data, xs, ys, "red", testID, LineOptions{})
	assert.Equal(t, 1, strings.Count(line.Line, "M"))
}

func TestRenderPointsWithY0(t *testing.T) {
	var (
		data = formatted(band(0.0, 2, 8), rawPoint{x: 1.0, y1: Float(5)})
		xs   = ordinalScale(0.0, 1.0)
		ys   = linearScale(0, 10)
	)
	points, index := RenderPoints(5, data, xs, ys, "red", testID, true)
	require.Len(t, points, 4)
	assert.Equal(t, AccessorY0, points[0].Value.Accessor)
	assert.Equal(t, Float(2), points[0].Value.Y)
	assert.Equal(t, 80.0, points[0].Y)
	assert.Equal(t, AccessorY1, points[1].Value.Accessor)
	assert.Equal(t, 20.0, points[1].Y)
	assert.Equal(t, 5.0, points[1].Transform.X)

	assert.Equal(t, 100.0, points[2].Y)
	assert.False(t, points[2].Value.Y.Valid)

	geoms := index.Find(0.0)
	require.Len(t, geoms, 2)
	assert.Equal(t, AccessorY1, geoms[0].Datum().Accessor)
}

func TestRenderBars(t *testing.T) {
	var (
		data = formatted(pt("a", 3), pt("b", 5), null("c"))
		xs   = ordinalScale("a", "b", "c")
		ys   = linearScale(0, 10)
	)
	bars, index := RenderBars(0, data, xs, ys, "red", testID, BarOptions{})
	require.Len(t, bars, 2)
	assert.Equal(t, 2, index.Len())

	bw := xs.Bandwidth()
	assert.Equal(t, 0.0, bars[0].X)
	assert.Equal(t, 70.0, bars[0].Y)
	assert.Equal(t, 30.0, bars[0].Height)
	assert.Equal(t, bw, bars[0].Width)
	assert.Equal(t, Float(3), bars[0].Value.Y)

	bars, _ = RenderBars(2, data, xs, ys, "red", testID, BarOptions{})
	assert.Equal(t, 2*bw, bars[0].X)
}

func TestRenderBarsStaleCategory(t *testing.T) {
	var (
		data = formatted(pt("a", 3), pt("b", 5), pt("c", 7))
		xs   = ordinalScale("a", "b")
		ys   = linearScale(0, 10)
	)
	bars, index := RenderBars(0, data, xs, ys, "red", testID, BarOptions{})
	assert.Len(t, bars, 2)
	assert.False(t, index.Has("c"))
}

func TestRenderBarsMinHeight(t *testing.T) {
	var (
		data = formatted(pt("a", 1), pt("b", -1), pt("c", 0))
		xs   = ordinalScale("a", "b", "c")
		ys   = linearScale(-10, 10)
	)
	bars, _ := RenderBars(0, data, xs, ys, "red", testID, BarOptions{MinHeight: 20})
	require.Len(t, bars, 3)
	assert.InDelta(t, 30, bars[0].Y, 1e-9)
	assert.Equal(t, 20.0, bars[0].Height)
	assert.Equal(t, 70.0, bars[1].Y)
	assert.Equal(t, -20.0, bars[1].Height)
	assert.Zero(t, bars[2].Height)
}

func TestRenderBarsLogScale(t *testing.T) {
	var (
		data = formatted(pt("a", 0), pt("b", 10))
		xs   = ordinalScale("a", "b")
		ys   = ContinuousScaler(ScaleLog, 1, 100, NewRange(100, 0), ContinuousOptions{})
	)
	bars, _ := RenderBars(0, data, xs, ys, "red", testID, BarOptions{})
	require.Len(t, bars, 2)
	assert.Equal(t, 100.0, bars[0].Y)
	assert.Zero(t, bars[0].Height)
	assert.InDelta(t, 50, bars[1].Y, 1e-9)
	assert.InDelta(t, 50, bars[1].Height, 1e-9)
}
