package xychart

import (
	"math"
)

type ValueFormatter func(any) string

type TooltipValue struct {
	Name          string
	SeriesKey     string
	Value         string
	Color         string
	IsHighlighted bool
	IsXValue      bool
	Accessor      Accessor
}

// FormatTooltip describes the value shown by g, either its x value or its
// y value. format defaults to a plain rendering of the value.
func FormatTooltip(g IndexedGeometry, spec SeriesSpec, isXValue, highlighted bool, format ValueFormatter) TooltipValue {
	if format == nil {
		format = FormatValue
	}
	var (
		id  = g.Identity()
		val = g.Datum()
		tv  = TooltipValue{
			SeriesKey: ColorValuesKey(spec.ID, id.SeriesKey),
			Color:     geometryColor(g),
			IsXValue:  isXValue,
			Accessor:  val.Accessor,
		}
	)
	if len(id.SeriesKey) > 0 {
		tv.Name = joinValues(id.SeriesKey, " - ")
	} else {
		tv.Name = spec.DisplayName()
	}
	if isXValue {
		tv.Value = format(val.X)
	} else {
		var y any
		if val.Y.Valid {
			y = val.Y.Float64
		}
		tv.IsHighlighted = highlighted
		tv.Value = format(y)
	}
	return tv
}

// TooltipValuesAt lists the values of every geometry indexed at x, headed
// by the x value itself. Geometries under the pointer (px, py) are
// highlighted.
func TooltipValuesAt(ix IndexedGeometries, x any, px, py float64, specs []SeriesSpec, format ValueFormatter) []TooltipValue {
	var list []TooltipValue
	for _, g := range ix.Find(x) {
		spec, ok := findSpec(specs, g.Identity().SpecID)
		if !ok {
			continue
		}
		if len(list) == 0 {
			list = append(list, FormatTooltip(g, spec, true, false, format))
		}
		list = append(list, FormatTooltip(g, spec, false, IsPointOnGeometry(px, py, g), format))
	}
	return list
}

// NearestX returns the indexed x value drawn closest to the horizontal
// position px.
func NearestX(ix IndexedGeometries, xs Scaler, px float64) (any, bool) {
	var (
		best any
		dist = math.Inf(1)
		half = xs.Bandwidth() / 2
	)
	for _, k := range ix.keys {
		pos := xs.Scale(k)
		if math.IsNaN(pos) {
			continue
		}
		if d := math.Abs(pos + half - px); d < dist {
			best, dist = k, d
		}
	}
	return best, !math.IsInf(dist, 1)
}

func geometryColor(g IndexedGeometry) string {
	switch g := g.(type) {
	case PointGeometry:
		return g.Color
	case BarGeometry:
		return g.Color
	default:
		return ""
	}
}
