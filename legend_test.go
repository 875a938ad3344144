package xychart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEqualSeriesKey(t *testing.T) {
	assert.True(t, IsEqualSeriesKey(nil, []any{}))
	assert.True(t, IsEqualSeriesKey([]any{"a", 1.0}, []any{"a", 1.0}))
	assert.False(t, IsEqualSeriesKey([]any{"a", 1.0}, []any{"a", 2.0}))
	assert.False(t, IsEqualSeriesKey([]any{"a"}, []any{"a", "b"}))
	assert.False(t, IsEqualSeriesKey([]any{1.0}, []any{"1"}))
}

func TestBelongsToDataSeries(t *testing.T) {
	id := GeometryID{SpecID: "s", SeriesKey: []any{"web"}}
	assert.True(t, BelongsToDataSeries(id, SeriesIdentifier{SpecID: "s", ColorValues: []any{"web"}}))
	assert.False(t, BelongsToDataSeries(id, SeriesIdentifier{SpecID: "t", ColorValues: []any{"web"}}))
	assert.False(t, BelongsToDataSeries(id, SeriesIdentifier{SpecID: "s", ColorValues: []any{"db"}}))
}

func TestUpdateDeselectedDataSeries(t *testing.T) {
	var (
		web = SeriesIdentifier{SpecID: "s", ColorValues: []any{"web"}}
		db  = SeriesIdentifier{SpecID: "s", ColorValues: []any{"db"}}
	)
	list := UpdateDeselectedDataSeries(nil, web)
	require.Len(t, list, 1)

	list = UpdateDeselectedDataSeries(list, db)
	require.Len(t, list, 2)
	assert.Equal(t, 1, FindDataSeriesByColorValues(list, db))

	before := list
	list = UpdateDeselectedDataSeries(list, SeriesIdentifier{SpecID: "s", ColorValues: []any{"web"}})
	assert.Equal(t, []SeriesIdentifier{db}, list)
	assert.Len(t, before, 2)
	assert.Equal(t, -1, FindDataSeriesByColorValues(list, web))
}

func TestSeriesColorMap(t *testing.T) {
	colors := []SeriesColors{
		{Key: "k1", SpecID: "a"},
		{Key: "k2", SpecID: "a"},
		{Key: "k3", SpecID: "b"},
		{Key: "k4", SpecID: "c"},
	}
	palette := []string{"#111", "#222"}
	custom := map[string]string{
		"k2": "green",
		"b":  "blue",
	}
	res := SeriesColorMap(colors, palette, custom)
	assert.Equal(t, map[string]string{
		"k1": "#111",
		"k2": "green",
		"k3": "blue",
		"k4": "#222",
	}, res)

	res = SeriesColorMap(colors[:1], nil, nil)
	assert.Equal(t, Category10[0], res["k1"])
}

func TestSeriesColorLabel(t *testing.T) {
	spec := SeriesSpec{ID: "sales", Name: "Total Sales"}
	assert.Equal(t, "web - eu", SeriesColorLabel([]any{"web", "eu"}, false, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel([]any{"web"}, true, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel(nil, false, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel([]any{""}, false, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel([]any{0.0}, false, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel([]any{int64(0)}, false, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel([]any{uint(0)}, false, spec))
	assert.Equal(t, "Total Sales", SeriesColorLabel([]any{nil}, false, spec))
	assert.Equal(t, "2", SeriesColorLabel([]any{int64(2)}, false, spec))
	assert.Equal(t, "sales", SeriesColorLabel(nil, false, SeriesSpec{ID: "sales"}))
}

func TestLegendItems(t *testing.T) {
	specs := []SeriesSpec{
		{ID: "a", Name: "Hits"},
		{ID: "b", Name: "Range", Y0Accessors: []string{"lo"}},
	}
	colors := []SeriesColors{
		{Key: "ka-web", SpecID: "a", ColorValues: []any{"web"}},
		{Key: "ka-db", SpecID: "a", ColorValues: []any{"db"}},
		{Key: "kb", SpecID: "b", Banded: true},
		{Key: "kz", SpecID: "z", ColorValues: []any{"lost"}},
	}
	colorMap := map[string]string{
		"ka-web": "red",
		"kb":     "blue",
	}
	deselected := []SeriesIdentifier{{SpecID: "a", ColorValues: []any{"db"}}}

	items := LegendItems(colors, colorMap, specs, deselected)
	require.Len(t, items, 4)

	assert.Equal(t, "web", items[0].Label)
	assert.Equal(t, "red", items[0].Color)
	assert.True(t, items[0].IsSeriesVisible)

	assert.Equal(t, "db", items[1].Label)
	assert.Equal(t, DefaultColor, items[1].Color)
	assert.False(t, items[1].IsSeriesVisible)

	assert.Equal(t, "kb", items[2].Key)
	assert.Equal(t, "Range", items[2].Label)
	assert.True(t, items[2].Banded)
	assert.False(t, items[2].IsY0)

	assert.Equal(t, "kb-y0", items[3].Key)
	assert.Equal(t, "Range - lower", items[3].Label)
	assert.True(t, items[3].IsY0)
	assert.Equal(t, "blue", items[3].Color)
}

func TestLegendItemsSingleSeries(t *testing.T) {
	specs := []SeriesSpec{{ID: "a", Name: "Hits"}}
	colors := []SeriesColors{{Key: "k", SpecID: "a", ColorValues: []any{"web"}}}
	items := LegendItems(colors, nil, specs, nil)
	require.Len(t, items, 1)
	assert.Equal(t, "Hits", items[0].Label)
	assert.Equal(t, SeriesIdentifier{SpecID: "a", ColorValues: []any{"web"}}, items[0].Value)
}

func TestLastValues(t *testing.T) {
	specs := []SeriesSpec{
		{ID: "a", GroupID: "g", Type: SeriesArea, StackAccessors: []string{"x"}},
		{ID: "b", GroupID: "g", Type: SeriesArea, StackAccessors: []string{"x"}},
		{ID: "c", GroupID: "g", Type: SeriesLine},
	}
	series := map[string][]RawSeries{
		"a": {rawSeries("a", pt(1.0, 1), pt(2.0, 2))},
		"b": {rawSeries("b", pt(1.0, 3), null(2.0))},
		"c": {rawSeries("c", pt(1.0, 7))},
	}
	values := LastValues(FormatSeries(specs, series, ContributionPolicy{}))
	require.Len(t, values, 1)

	last, ok := values[ColorValuesKey("a", []any{"a"})]
	require.True(t, ok)
	assert.Equal(t, Float(2), last.Y1)
	assert.False(t, last.Y0.Valid)
}

func TestSharedGeometryStyle(t *testing.T) {
	var (
		style = DefaultGeometryStyle
		id    = GeometryID{SpecID: "s", SeriesKey: []any{"web"}}
	)
	assert.Equal(t, 1.0, style.Style(id, nil).Opacity)

	item := LegendItem{Value: SeriesIdentifier{SpecID: "s", ColorValues: []any{"web"}}}
	assert.Equal(t, style.Highlighted, style.Style(id, &item))

	item.Value.ColorValues = []any{"db"}
	assert.Equal(t, 0.25, style.Style(id, &item).Opacity)
}
