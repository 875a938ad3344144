package curve

import (
	"math"
	"strconv"
	"strings"
)

type Context interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	BezierCurveTo(x1, y1, x2, y2, x, y float64)
	ClosePath()
}

// Path accumulates commands as an SVG path string.
type Path struct {
	buf     strings.Builder
	started bool
	x0      float64
	y0      float64
}

func (p *Path) MoveTo(x, y float64) {
	p.x0, p.y0 = x, y
	p.started = true
	p.command('M', x, y)
}

func (p *Path) LineTo(x, y float64) {
	p.command('L', x, y)
}

func (p *Path) BezierCurveTo(x1, y1, x2, y2, x, y float64) {
	p.command('C', x1, y1, x2, y2, x, y)
}

func (p *Path) ClosePath() {
	if !p.started {
		return
	}
	p.buf.WriteByte('Z')
}

func (p *Path) String() string {
	return p.buf.String()
}

func (p *Path) command(c byte, values ...float64) {
	p.buf.WriteByte(c)
	for i, v := range values {
		if i > 0 {
			p.buf.WriteByte(',')
		}
		p.buf.WriteString(FormatNumber(v))
	}
}

// FormatNumber writes v with the shortest representation that reads back
// to the same value.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type reflectContext struct {
	Context
}

func (r reflectContext) MoveTo(x, y float64) {
	r.Context.MoveTo(y, x)
}

func (r reflectContext) LineTo(x, y float64) {
	r.Context.LineTo(y, x)
}

func (r reflectContext) BezierCurveTo(x1, y1, x2, y2, x, y float64) {
	r.Context.BezierCurveTo(y1, x1, y2, x2, y, x)
}
