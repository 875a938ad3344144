package xychart

import (
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	rg := NewRange(100, 0)
	assert.Equal(t, -100.0, rg.Len())
	assert.Equal(t, 0.0, rg.Min())
	assert.Equal(t, 100.0, rg.Max())
}

func TestBandScaler(t *testing.T) {
	values := []any{"a", "b", "c", "d"}

	s := BandScaler(values, NewRange(0, 100), 0, 0)
	assert.Equal(t, ScaleOrdinal, s.Type())
	assert.Equal(t, 0.0, s.Scale("a"))
	assert.Equal(t, 25.0, s.Scale("b"))
	assert.Equal(t, 75.0, s.Scale("d"))
	assert.Equal(t, 25.0, s.Bandwidth())
	assert.True(t, math.IsNaN(s.Scale("z")))
	assert.Equal(t, values, s.Domain())
	assert.Equal(t, []any{"a", "b"}, s.Values(2))
	assert.Equal(t, values, s.Values(0))

	s = BandScaler(values, NewRange(0, 100), 0, 0.5)
	assert.Equal(t, 6.25, s.Scale("a"))
	assert.Equal(t, 12.5, s.Bandwidth())

	s = BandScaler(values, NewRange(0, 100), 40, 0.5)
	assert.Equal(t, 20.0, s.Bandwidth())

	s = BandScaler(values, NewRange(100, 0), 0, 0)
	assert.Equal(t, 75.0, s.Scale("a"))
	assert.Equal(t, 0.0, s.Scale("d"))
}

func TestContinuousScaler(t *testing.T) {
	s := ContinuousScaler(ScaleLinear, 0, 10, NewRange(100, 0), ContinuousOptions{})
	assert.Equal(t, 100.0, s.Scale(0.0))
	assert.Equal(t, 50.0, s.Scale(5.0))
	assert.Equal(t, 0.0, s.Scale(10.0))
	assert.True(t, math.IsNaN(s.Scale("5")))
	assert.Equal(t, []any{0.0, 10.0}, s.Domain())
	assert.False(t, s.IsInverted())
	assert.Zero(t, s.Bandwidth())

	ticks := s.Values(5)
	require.NotEmpty(t, ticks)
	assert.LessOrEqual(t, len(ticks), 5)
	for _, v := range ticks {
		f, ok := v.(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, f, 0.0)
		assert.LessOrEqual(t, f, 10.0)
	}

	s = ContinuousScaler(ScaleLinear, 10, 0, NewRange(0, 100), ContinuousOptions{})
	assert.True(t, s.IsInverted())
	assert.Equal(t, 100.0, s.Scale(0.0))

	s = ContinuousScaler(ScaleSqrt, 0, 100, NewRange(0, 10), ContinuousOptions{})
	assert.Equal(t, 5.0, s.Scale(25.0))

	s = ContinuousScaler(ScaleLinear, 3, 3, NewRange(0, 10), ContinuousOptions{})
	assert.Equal(t, 5.0, s.Scale(3.0))
}

func TestContinuousScalerLog(t *testing.T) {
	s := ContinuousScaler(ScaleLog, 1, 100, NewRange(0, 100), ContinuousOptions{})
	assert.Equal(t, ScaleLog, s.Type())
	assert.InDelta(t, 50, s.Scale(10.0), 1e-9)
	assert.InDelta(t, 100, s.Scale(100.0), 1e-9)
	assert.True(t, math.IsNaN(s.Scale(0.0)))
	assert.True(t, math.IsNaN(s.Scale(-1.0)))
	assert.NotEmpty(t, s.Values(5))

	s = ContinuousScaler(ScaleLog, 0, 100, NewRange(0, 100), ContinuousOptions{})
	assert.Equal(t, []any{1.0, 100.0}, s.Domain())
}

func TestLimitLogScaleDomain(t *testing.T) {
	tests := []struct {
		Lo, Hi float64
		WantLo float64
		WantHi float64
	}{
		{Lo: 0, Hi: 10, WantLo: 1, WantHi: 10},
		{Lo: 0, Hi: -10, WantLo: -1, WantHi: -10},
		{Lo: 0, Hi: 0, WantLo: 1, WantHi: 1},
		{Lo: 10, Hi: 0, WantLo: 10, WantHi: 1},
		{Lo: -5, Hi: 0, WantLo: -5, WantHi: -1},
		{Lo: -1, Hi: 10, WantLo: 1, WantHi: 10},
		{Lo: -10, Hi: 1, WantLo: -10, WantHi: -1},
		{Lo: 10, Hi: -1, WantLo: 10, WantHi: 1},
		{Lo: 1, Hi: -10, WantLo: -1, WantHi: -10},
		{Lo: 2, Hi: 20, WantLo: 2, WantHi: 20},
	}
	for _, tt := range tests {
		lo, hi := LimitLogScaleDomain(tt.Lo, tt.Hi)
		assert.Equal(t, tt.WantLo, lo, "lo for [%v, %v]", tt.Lo, tt.Hi)
		assert.Equal(t, tt.WantHi, hi, "hi for [%v, %v]", tt.Lo, tt.Hi)
	}
}

func TestComputeXScaleOrdinal(t *testing.T) {
	dom := XDomain{Type: ScaleOrdinal, IsBandScale: true, Values: []any{"a", "b"}}
	s := ComputeXScale(dom, 2, NewRange(0, 100), 0, false)
	assert.Equal(t, 25.0, s.Bandwidth())
	assert.Equal(t, 50.0, s.Scale("b"))
}

func TestComputeXScaleContinuous(t *testing.T) {
	dom := XDomain{Type: ScaleLinear, IsBandScale: true, Min: 0, Max: 10, MinInterval: 1}
	s := ComputeXScale(dom, 1, NewRange(0, 110), 0, false)
	assert.Equal(t, 10.0, s.Bandwidth())
	assert.Equal(t, 100.0, s.Scale(10.0))
	assert.Equal(t, NewRange(0, 100), s.Range())

	s = ComputeXScale(dom, 1, NewRange(0, 110), 0.5, false)
	assert.Equal(t, 5.0, s.Bandwidth())
	assert.Equal(t, 2.5, s.Scale(0.0))

	single := XDomain{Type: ScaleLinear, IsBandScale: true, Min: 5, Max: 5, MinInterval: 1}
	s = ComputeXScale(single, 1, NewRange(0, 100), 0, true)
	assert.Equal(t, 100.0, s.Bandwidth())
	assert.Equal(t, 0.0, s.Scale(5.0))

	dom.IsBandScale = false
	s = ComputeXScale(dom, 0, NewRange(0, 100), 0, false)
	assert.Zero(t, s.Bandwidth())
	assert.Equal(t, 50.0, s.Scale(5.0))
}

func TestComputeYScales(t *testing.T) {
	scales := ComputeYScales([]YDomain{
		{GroupID: "a", Type: ScaleLinear, Min: 0, Max: 10},
		{GroupID: "b", Type: ScaleLog, Min: 1, Max: 1000},
	}, NewRange(100, 0))
	require.Len(t, scales, 2)
	assert.Equal(t, 50.0, scales["a"].Scale(5.0))
	assert.Equal(t, ScaleLog, scales["b"].Type())
}

func TestXValueFormatter(t *testing.T) {
	var (
		when = float64(time.Date(2020, 1, 1, 20, 0, 0, 0, time.UTC).UnixMilli())
		rg   = NewRange(0, 100)
	)
	tokyo := ContinuousScaler(ScaleTime, when, when+1, rg, ContinuousOptions{Timezone: "Asia/Tokyo"})
	assert.Equal(t, "Asia/Tokyo", Location(tokyo).String())
	assert.Equal(t, "2020-01-02", XValueFormatter(tokyo, "2006-01-02")(when))
	assert.Equal(t, "jan", XValueFormatter(tokyo, "2006-01-02")("jan"))

	utc := ContinuousScaler(ScaleTime, when, when+1, rg, ContinuousOptions{Timezone: "UTC"})
	assert.Equal(t, "2020-01-01", XValueFormatter(utc, "2006-01-02")(when))

	unknown := ContinuousScaler(ScaleTime, when, when+1, rg, ContinuousOptions{Timezone: "Nowhere/City"})
	assert.Equal(t, time.UTC, Location(unknown))

	linear := ContinuousScaler(ScaleLinear, 0, 10, rg, ContinuousOptions{Timezone: "Asia/Tokyo"})
	assert.Equal(t, "5", XValueFormatter(linear, "2006-01-02")(5.0))
	assert.Equal(t, time.UTC, Location(BandScaler([]any{"a"}, rg, 0, 0)))
}

func TestComputeXScaleTimezone(t *testing.T) {
	specs := []SeriesSpec{{Type: SeriesLine, XScaleType: ScaleTime, Timezone: "Asia/Tokyo"}}
	cfg, ok := ConvertXScaleTypes(specs)
	require.True(t, ok)
	when := float64(time.Date(2020, 1, 1, 20, 0, 0, 0, time.UTC).UnixMilli())
	dom, err := MergeXDomain(cfg, []any{when, when + 1000}, nil)
	require.NoError(t, err)

	xs := ComputeXScale(dom, 0, NewRange(0, 100), 0, false)
	assert.Equal(t, "2020-01-02", XValueFormatter(xs, "2006-01-02")(when))
}
