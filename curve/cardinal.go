package curve

import "math"

const epsilon = 1e-12

type cardinal struct {
	ctx        Context
	line       lineState
	point      int
	k          float64
	x0, x1, x2 float64
	y0, y1, y2 float64
}

func newCardinal(ctx Context, tension float64) *cardinal {
	return &cardinal{
		ctx:  ctx,
		k:    (1 - tension) / 6,
		line: lineNone,
	}
}

func (c *cardinal) AreaStart() {
	c.line = 0
}

func (c *cardinal) AreaEnd() {
	c.line = lineNone
}

func (c *cardinal) LineStart() {
	nan := math.NaN()
	c.x0, c.x1, c.x2 = nan, nan, nan
	c.y0, c.y1, c.y2 = nan, nan, nan
	c.point = 0
}

func (c *cardinal) LineEnd() {
	switch c.point {
	case 2:
		c.ctx.LineTo(c.x2, c.y2)
	case 3:
		c.bezier(c.x1, c.y1)
	}
	if c.line.shouldClose(c.point) {
		c.ctx.ClosePath()
	}
	c.line = c.line.toggle()
}

func (c *cardinal) Point(x, y float64) {
	switch c.point {
	case 0:
		c.point = 1
		start(c.ctx, c.line, x, y)
	case 1:
		c.point = 2
		c.x1, c.y1 = x, y
	case 2:
		c.point = 3
		c.bezier(x, y)
	default:
		c.bezier(x, y)
	}
	c.x0, c.x1, c.x2 = c.x1, c.x2, x
	c.y0, c.y1, c.y2 = c.y1, c.y2, y
}

func (c *cardinal) bezier(x, y float64) {
	c.ctx.BezierCurveTo(
		c.x1+c.k*(c.x2-c.x0),
		c.y1+c.k*(c.y2-c.y0),
		c.x2+c.k*(c.x1-x),
		c.y2+c.k*(c.y1-y),
		c.x2,
		c.y2,
	)
}

// catmullRom is a centripetal Catmull-Rom spline parameterized by alpha.
type catmullRom struct {
	ctx        Context
	line       lineState
	point      int
	alpha      float64
	x0, x1, x2 float64
	y0, y1, y2 float64

	l01a, l12a, l23a    float64
	l01a2, l12a2, l23a2 float64
}

func newCatmullRom(ctx Context, alpha float64) Curve {
	if alpha == 0 {
		return newCardinal(ctx, 0)
	}
	return &catmullRom{
		ctx:   ctx,
		alpha: alpha,
		line:  lineNone,
	}
}

func (c *catmullRom) AreaStart() {
	c.line = 0
}

func (c *catmullRom) AreaEnd() {
	c.line = lineNone
}

func (c *catmullRom) LineStart() {
	nan := math.NaN()
	c.x0, c.x1, c.x2 = nan, nan, nan
	c.y0, c.y1, c.y2 = nan, nan, nan
	c.l01a, c.l12a, c.l23a = 0, 0, 0
	c.l01a2, c.l12a2, c.l23a2 = 0, 0, 0
	c.point = 0
}

func (c *catmullRom) LineEnd() {
	switch c.point {
	case 2:
		c.ctx.LineTo(c.x2, c.y2)
	case 3:
		c.Point(c.x2, c.y2)
	}
	if c.line.shouldClose(c.point) {
		c.ctx.ClosePath()
	}
	c.line = c.line.toggle()
}

func (c *catmullRom) Point(x, y float64) {
	if c.point > 0 {
		x23, y23 := c.x2-x, c.y2-y
		c.l23a2 = math.Pow(x23*x23+y23*y23, c.alpha)
		c.l23a = math.Sqrt(c.l23a2)
	}
	switch c.point {
	case 0:
		c.point = 1
		start(c.ctx, c.line, x, y)
	case 1:
		c.point = 2
	case 2:
		c.point = 3
		c.bezier(x, y)
	default:
		c.bezier(x, y)
	}
	c.l01a, c.l12a = c.l12a, c.l23a
	c.l01a2, c.l12a2 = c.l12a2, c.l23a2
	c.x0, c.x1, c.x2 = c.x1, c.x2, x
	c.y0, c.y1, c.y2 = c.y1, c.y2, y
}

func (c *catmullRom) bezier(x, y float64) {
	var (
		x1, y1 = c.x1, c.y1
		x2, y2 = c.x2, c.y2
	)
	if c.l01a > epsilon {
		a := 2*c.l01a2 + 3*c.l01a*c.l12a + c.l12a2
		n := 3 * c.l01a * (c.l01a + c.l12a)
		x1 = (x1*a - c.x0*c.l12a2 + c.x2*c.l01a2) / n
		y1 = (y1*a - c.y0*c.l12a2 + c.y2*c.l01a2) / n
	}
	if c.l23a > epsilon {
		b := 2*c.l23a2 + 3*c.l23a*c.l12a + c.l12a2
		m := 3 * c.l23a * (c.l23a + c.l12a)
		x2 = (x2*b + c.x1*c.l23a2 - x*c.l12a2) / m
		y2 = (y2*b + c.y1*c.l23a2 - y*c.l12a2) / m
	}
	c.ctx.BezierCurveTo(x1, y1, x2, y2, c.x2, c.y2)
}
