package xychart

import (
	"reflect"
	"slices"
)

const y0LabelSuffix = " - lower"

func IsEqualSeriesKey(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// BelongsToDataSeries reports whether a geometry has been drawn for the
// series identified by s.
func BelongsToDataSeries(id GeometryID, s SeriesIdentifier) bool {
	return id.SpecID == s.SpecID && IsEqualSeriesKey(id.SeriesKey, s.ColorValues)
}

func FindDataSeriesByColorValues(list []SeriesIdentifier, s SeriesIdentifier) int {
	return slices.IndexFunc(list, func(other SeriesIdentifier) bool {
		return other.SpecID == s.SpecID && IsEqualSeriesKey(other.ColorValues, s.ColorValues)
	})
}

// UpdateDeselectedDataSeries toggles s in list.
func UpdateDeselectedDataSeries(list []SeriesIdentifier, s SeriesIdentifier) []SeriesIdentifier {
	updated := slices.Clone(list)
	if x := FindDataSeriesByColorValues(updated, s); x >= 0 {
		return slices.Delete(updated, x, x+1)
	}
	return append(updated, s)
}

// SeriesColorMap assigns a color to every color key. Custom colors can be
// given by color key or by spec id; the others cycle through palette.
func SeriesColorMap(colors []SeriesColors, palette []string, custom map[string]string) map[string]string {
	if len(palette) == 0 {
		palette = Category10
	}
	res := make(map[string]string, len(colors))
	for i, c := range colors {
		col, ok := custom[c.Key]
		if !ok {
			col, ok = custom[c.SpecID]
		}
		if !ok || col == "" {
			col = palette[i%len(palette)]
		}
		res[c.Key] = col
	}
	return res
}

// SeriesColorLabel names a series in a legend: its color values joined, or
// the name of its spec when it is alone or has no meaningful color values.
func SeriesColorLabel(values []any, single bool, spec SeriesSpec) string {
	if single || len(values) == 0 || isFalsy(values[0]) {
		return spec.DisplayName()
	}
	return joinValues(values, " - ")
}

func isFalsy(v any) bool {
	switch x := v.(type) {
	case string:
		return x == ""
	case bool:
		return !x
	default:
		n, ok := toNumber(v)
		return ok && (!n.Valid || n.Float64 == 0)
	}
}

type LegendItem struct {
	Key             string
	Color           string
	Label           string
	Banded          bool
	IsY0            bool
	IsSeriesVisible bool
	Value           SeriesIdentifier
	LastValue       LastValue
}

// LegendItems lists one item per series color, plus one for the lower
// bound of banded series.
func LegendItems(colors []SeriesColors, colorMap map[string]string, specs []SeriesSpec, deselected []SeriesIdentifier) []LegendItem {
	var items []LegendItem
	for _, c := range colors {
		spec, ok := findSpec(specs, c.SpecID)
		if !ok {
			continue
		}
		label := SeriesColorLabel(c.ColorValues, len(colors) == 1, spec)
		if label == "" {
			continue
		}
		col := colorMap[c.Key]
		if col == "" {
			col = DefaultColor
		}
		id := SeriesIdentifier{
			SpecID:      c.SpecID,
			ColorValues: c.ColorValues,
		}
		item := LegendItem{
			Key:             c.Key,
			Color:           col,
			Label:           label,
			Banded:          c.Banded,
			IsSeriesVisible: FindDataSeriesByColorValues(deselected, id) < 0,
			Value:           id,
			LastValue:       c.LastValue,
		}
		items = append(items, item)
		if c.Banded {
			item.Key += "-y0"
			item.Label += y0LabelSuffix
			item.IsY0 = true
			items = append(items, item)
		}
	}
	return items
}

// LastValues returns the last value of each stacked series, keyed by color
// key.
func LastValues(formatted FormattedSeries) map[string]LastValue {
	values := make(map[string]LastValue)
	for _, g := range formatted.Stacked {
		for _, s := range g.Series {
			if len(s.Data) == 0 {
				continue
			}
			last := s.Data[len(s.Data)-1]
			if !last.InitialY1.Valid && !last.InitialY0.Valid {
				continue
			}
			values[s.ColorKey] = LastValue{
				Y0: last.InitialY0,
				Y1: last.InitialY1,
			}
		}
	}
	return values
}

type GeometryStyle struct {
	Opacity float64
}

type SharedGeometryStyle struct {
	Default       GeometryStyle
	Highlighted   GeometryStyle
	Unhighlighted GeometryStyle
}

var DefaultGeometryStyle = SharedGeometryStyle{
	Default:       GeometryStyle{Opacity: 1},
	Highlighted:   GeometryStyle{Opacity: 1},
	Unhighlighted: GeometryStyle{Opacity: 0.25},
}

// Style returns the style of the geometry identified by id when the legend
// item highlighted is hovered. A nil item gives the default style.
func (s SharedGeometryStyle) Style(id GeometryID, highlighted *LegendItem) GeometryStyle {
	if highlighted == nil {
		return s.Default
	}
	if BelongsToDataSeries(id, highlighted.Value) {
		return s.Highlighted
	}
	return s.Unhighlighted
}
