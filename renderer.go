package xychart

import (
	"math"

	"github.com/midbel/xychart/curve"
)

const DefaultPointRadius = 10

// RenderPoints creates a point for the y1 value of each datum, and for its
// y0 value too when hasY0 is set. Null y1 values are skipped. Non positive
// values on a log scale, and null y0 values, are indexed but hidden.
func RenderPoints(shift float64, data []SeriesDatum, xs, ys Scaler, color string, id GeometryID, hasY0 bool) ([]PointGeometry, IndexedGeometries) {
	var (
		points []PointGeometry
		index  = NewIndexBuilder()
		isLog  = ys.Type() == ScaleLog
	)
	for _, d := range data {
		if !d.Y1.Valid {
			continue
		}
		x := xs.Scale(d.X)
		values := []NullFloat{d.Y1}
		if hasY0 {
			values = []NullFloat{d.Y0, d.Y1}
		}
		for i, v := range values {
			pt := PointGeometry{
				X:      x,
				Radius: DefaultPointRadius,
				Color:  color,
				Transform: Transform{
					X: shift,
				},
				Value: GeometryValue{
					X:        d.X,
					Y:        d.InitialY1,
					Accessor: AccessorY1,
				},
				GeometryID: id,
			}
			if hasY0 && i == 0 {
				pt.Value.Y = d.InitialY0
				pt.Value.Accessor = AccessorY0
			}
			hidden := !v.Valid || (isLog && v.Float64 <= 0)
			if hidden {
				pt.Y = ys.Range().F
				pt.Radius = 0
			} else {
				pt.Y = ys.Scale(v.Float64)
			}
			index.Add(d.X, pt)
			if !hidden {
				points = append(points, pt)
			}
		}
	}
	return points, index.Build()
}

type BarOptions struct {
	MinHeight float64
}

// RenderBars creates one bar per datum. orderIndex is the position of the
// series among the bars sharing the same x value.
func RenderBars(orderIndex int, data []SeriesDatum, xs, ys Scaler, color string, id GeometryID, opts BarOptions) ([]BarGeometry, IndexedGeometries) {
	var (
		bars    []BarGeometry
		index   = NewIndexBuilder()
		isLog   = ys.Type() == ScaleLog
		ordinal = xs.Type() == ScaleOrdinal
		domain  = make(map[any]struct{})
	)
	if ordinal {
		for _, v := range xs.Domain() {
			domain[v] = struct{}{}
		}
	}
	for _, d := range data {
		if !d.InitialY1.Valid || !d.Y1.Valid {
			continue
		}
		if _, ok := domain[d.X]; ordinal && !ok {
			continue
		}
		var (
			y      float64
			height float64
			y0     = d.Y0.Or(0)
		)
		if isLog {
			rg := ys.Range()
			y = ys.Scale(d.Y1.Float64)
			if d.Y1.Float64 == 0 {
				y = rg.F
			}
			base := ys.Scale(y0)
			if y0 == 0 {
				base = rg.F
				if ys.IsInverted() {
					base = rg.T
				}
			}
			height = base - y
		} else {
			y = ys.Scale(d.Y1.Float64)
			height = ys.Scale(y0) - y
		}
		y, height = stretchBar(y, height, opts.MinHeight)
		bar := BarGeometry{
			X:      xs.Scale(d.X) + xs.Bandwidth()*float64(orderIndex),
			Y:      y,
			Width:  xs.Bandwidth(),
			Height: height,
			Color:  color,
			Value: GeometryValue{
				X:        d.X,
				Y:        d.InitialY1,
				Accessor: AccessorY1,
			},
			GeometryID: id,
		}
		index.Add(d.X, bar)
		bars = append(bars, bar)
	}
	return bars, index.Build()
}

func stretchBar(y, height, minHeight float64) (float64, float64) {
	abs := math.Abs(height)
	if abs == 0 || abs >= minHeight {
		return y, height
	}
	delta := minHeight - abs
	if height < 0 {
		return y + delta, -minHeight
	}
	return y - delta, minHeight
}

type LineOptions struct {
	Curve        curve.Type
	HasY0        bool
	XScaleOffset float64
}

// RenderLine draws the y1 values of data. Null values, and non positive
// values on a log scale, break the line.
func RenderLine(shift float64, data []SeriesDatum, xs, ys Scaler, color string, id GeometryID, opts LineOptions) (LineGeometry, IndexedGeometries) {
	gen := curve.Line[SeriesDatum]{
		X:       scaledX(xs, opts.XScaleOffset),
		Y:       func(d SeriesDatum) float64 { return ys.Scale(d.Y1.Float64) },
		Defined: isDefined(ys),
		Curve:   opts.Curve,
	}
	points, index := RenderPoints(shift-opts.XScaleOffset, data, xs, ys, color, id, opts.HasY0)
	line := LineGeometry{
		Line:   gen.Render(data),
		Points: points,
		Color:  color,
		Transform: Transform{
			X: shift,
		},
		GeometryID: id,
	}
	return line, index
}

// RenderArea fills the region between the y0 and y1 values of data. A y0
// that can not be drawn falls back to the bottom of the y range.
func RenderArea(shift float64, data []SeriesDatum, xs, ys Scaler, color string, id GeometryID, opts LineOptions) (AreaGeometry, IndexedGeometries) {
	isLog := ys.Type() == ScaleLog
	gen := curve.Area[SeriesDatum]{
		X:  scaledX(xs, opts.XScaleOffset),
		Y1: func(d SeriesDatum) float64 { return ys.Scale(d.Y1.Float64) },
		Y0: func(d SeriesDatum) float64 {
			if !d.Y0.Valid || (isLog && d.Y0.Float64 <= 0) {
				return ys.Range().F
			}
			return ys.Scale(d.Y0.Float64)
		},
		Defined: isDefined(ys),
		Curve:   opts.Curve,
	}
	var lines []string
	if str := gen.TopLine().Render(data); str != "" {
		lines = append(lines, str)
	}
	if opts.HasY0 {
		if str := gen.BottomLine().Render(data); str != "" {
			lines = append(lines, str)
		}
	}
	points, index := RenderPoints(shift-opts.XScaleOffset, data, xs, ys, color, id, opts.HasY0)
	area := AreaGeometry{
		Area:   gen.Render(data),
		Lines:  lines,
		Points: points,
		Color:  color,
		Transform: Transform{
			X: shift,
		},
		GeometryID: id,
	}
	return area, index
}

func scaledX(xs Scaler, offset float64) func(SeriesDatum) float64 {
	return func(d SeriesDatum) float64 {
		return xs.Scale(d.X) - offset
	}
}

func isDefined(ys Scaler) func(SeriesDatum) bool {
	isLog := ys.Type() == ScaleLog
	return func(d SeriesDatum) bool {
		return d.Y1.Valid && !(isLog && d.Y1.Float64 <= 0)
	}
}
