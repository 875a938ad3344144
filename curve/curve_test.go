package curve

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pt struct {
	X, Y float64
}

func pts(values ...float64) []pt {
	var list []pt
	for i := 0; i+1 < len(values); i += 2 {
		list = append(list, pt{X: values[i], Y: values[i+1]})
	}
	return list
}

func lineOf(t Type) Line[pt] {
	return Line[pt]{
		X:       func(p pt) float64 { return p.X },
		Y:       func(p pt) float64 { return p.Y },
		Defined: func(p pt) bool { return !math.IsNaN(p.Y) },
		Curve:   t,
	}
}

func TestLinearLine(t *testing.T) {
	got := lineOf(Linear).Render(pts(0, 0, 50, 50))
	assert.Equal(t, "M0,0L50,50", got)
}

func TestLinearArea(t *testing.T) {
	gen := Area[pt]{
		X:     func(p pt) float64 { return p.X },
		Y1:    func(p pt) float64 { return p.Y },
		Y0:    func(p pt) float64 { return 100 },
		Curve: Linear,
	}
	assert.Equal(t, "M0,0L50,50L50,100L0,100Z", gen.Render(pts(0, 0, 50, 50)))
	assert.Equal(t, "M0,0L50,50", gen.TopLine().Render(pts(0, 0, 50, 50)))
	assert.Equal(t, "M0,100L50,100", gen.BottomLine().Render(pts(0, 0, 50, 50)))
}

func TestUndefinedSplitsPath(t *testing.T) {
	data := pts(0, 0, 50, math.NaN(), 100, 0)
	for typ := range typeNames {
		got := lineOf(typ).Render(data)
		assert.Equal(t, 2, strings.Count(got, "M"), "%s: %s", typ, got)
	}
	assert.Equal(t, "M0,0ZM100,0Z", lineOf(Linear).Render(data))

	gen := Area[pt]{
		X:       func(p pt) float64 { return p.X },
		Y1:      func(p pt) float64 { return p.Y },
		Y0:      func(p pt) float64 { return 10 },
		Defined: func(p pt) bool { return !math.IsNaN(p.Y) },
	}
	assert.Equal(t, "M0,0L0,10ZM100,0L100,10Z", gen.Render(data))
}

func TestEmptyPath(t *testing.T) {
	assert.Equal(t, "", lineOf(Linear).Render(nil))
	assert.Equal(t, "", lineOf(MonotoneX).Render(pts(0, math.NaN())))
}

func TestStepCurves(t *testing.T) {
	data := pts(0, 0, 10, 10, 20, 0)
	tests := []struct {
		Type Type
		Want string
	}{
		{Type: Step, Want: "M0,0L5,0L5,10L15,10L15,0L20,0"},
		{Type: StepAfter, Want: "M0,0L10,0L10,10L20,10L20,0"},
		{Type: StepBefore, Want: "M0,0L0,10L10,10L10,0L20,0"},
	}
	for _, tt := range tests {
		t.Run(tt.Type.String(), func(t *testing.T) {
			assert.Equal(t, tt.Want, lineOf(tt.Type).Render(data))
		})
	}
}

func TestSplineCurves(t *testing.T) {
	data := pts(0, 0, 3, 3, 6, 0)
	assert.Equal(t, "M0,0L0.5,0.5C1,1,2,2,3,2C4,2,5,1,5.5,0.5L6,0", lineOf(Basis).Render(data))
	assert.Equal(t, "M0,0C0,0,2,3,3,3C4,3,6,0,6,0", lineOf(Cardinal).Render(data))

	for _, typ := range []Type{Basis, Cardinal, CatmullRom, MonotoneX, Natural} {
		assert.Equal(t, "M0,0L10,10", lineOf(typ).Render(pts(0, 0, 10, 10)), typ.String())
	}
}

func TestCatmullRom(t *testing.T) {
	got := lineOf(CatmullRom).Render(pts(0, 0, 3, 3, 6, 0, 9, 3))
	require.True(t, strings.HasPrefix(got, "M0,0C"), got)
	assert.Equal(t, 3, strings.Count(got, "C"))
	assert.True(t, strings.HasSuffix(got, ",9,3"), got)
}

func TestMonotone(t *testing.T) {
	got := lineOf(MonotoneX).Render(pts(0, 0, 1, 1, 2, 2))
	assert.Equal(t, 2, strings.Count(got, "C"))
	assert.True(t, strings.HasSuffix(got, ",2,2"), got)

	got = lineOf(MonotoneX).Render(pts(0, 0, 0, 0, 1, 1))
	assert.Equal(t, "M0,0L1,1", got)

	got = lineOf(MonotoneY).Render(pts(0, 0, 1, 1, 2, 2))
	assert.Equal(t, 2, strings.Count(got, "C"))
	assert.True(t, strings.HasPrefix(got, "M0,0C"), got)
}

func TestNatural(t *testing.T) {
	got := lineOf(Natural).Render(pts(0, 0, 1, 1, 2, 0))
	require.True(t, strings.HasPrefix(got, "M0,0C"), got)
	assert.Equal(t, 2, strings.Count(got, "C"))
	assert.True(t, strings.HasSuffix(got, ",2,0"), got)
}

func TestParse(t *testing.T) {
	for typ, name := range typeNames {
		got, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	got, err := Parse("monotone-x")
	require.NoError(t, err)
	assert.Equal(t, MonotoneX, got)

	_, err = Parse("spline")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", FormatNumber(math.Copysign(0, -1)))
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "-3", FormatNumber(-3))
}
