package svgout

import (
	"fmt"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/midbel/xychart"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis struct {
	Orientation
	Ticks          int
	Scaler         xychart.Scaler
	Format         func(any) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a Axis) Render(canvas *svg.SVG, length, size, left, top float64) {
	canvas.Gtransform(translate(left, top))
	defer canvas.Gend()

	x, y := length, 0.0
	if a.Vertical() {
		x, y = y, x
	}
	canvas.Path(fmt.Sprintf("M0,0L%s,%s", num(x), num(y)), "stroke:black;stroke-width:1")

	var (
		data   = a.Scaler.Values(a.Ticks)
		format = a.Format
		align  float64
	)
	if format == nil {
		format = a.defaultFormat()
	}
	if a.Scaler.Type() == xychart.ScaleOrdinal {
		align = a.Scaler.Bandwidth() / 2
	}
	for _, v := range data {
		pos := a.Scaler.Scale(v)
		if math.IsNaN(pos) {
			continue
		}
		pos += align
		if a.Vertical() {
			canvas.Gtransform(translate(0, pos))
		} else {
			canvas.Gtransform(translate(pos, 0))
		}
		if a.WithInnerTicks {
			canvas.Path(a.tick(FontSize*0.8), "stroke:black;stroke-width:1")
		}
		if a.WithOuterTicks {
			canvas.Path(a.tick(-size), "stroke:black;stroke-width:1;stroke-opacity:0.1")
		}
		if a.WithLabelTicks {
			a.label(canvas, format(v))
		}
		canvas.Gend()
	}
}

func (a Axis) defaultFormat() func(any) string {
	return xychart.XValueFormatter(a.Scaler, "2006-01-02")
}

func (a Axis) tick(size float64) string {
	var x, y float64
	switch {
	case a.Vertical() && !a.Reverse():
		x = -size
	case a.Vertical() && a.Reverse():
		x = size
	case !a.Vertical() && a.Reverse():
		y = -size
	default:
		y = size
	}
	return fmt.Sprintf("M0,0L%s,%s", num(x), num(y))
}

func (a Axis) label(canvas *svg.SVG, str string) {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, FontSize * 1.2
	)
	switch {
	case a.Vertical() && !a.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case a.Vertical() && a.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !a.Vertical() && a.Reverse():
		base = "auto"
		y = -y
	default:
	}
	style := fmt.Sprintf("font-size:%spx;text-anchor:%s;dominant-baseline:%s", num(FontSize), anchor, base)
	canvas.Text(int(x), int(y), str, style)
}
