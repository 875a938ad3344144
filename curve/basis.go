package curve

import "math"

// basis draws a cubic B-spline through the control points, clamped at
// both ends.
type basis struct {
	ctx    Context
	line   lineState
	point  int
	x0, x1 float64
	y0, y1 float64
}

func (c *basis) AreaStart() {
	c.line = 0
}

func (c *basis) AreaEnd() {
	c.line = lineNone
}

func (c *basis) LineStart() {
	c.x0, c.x1 = math.NaN(), math.NaN()
	c.y0, c.y1 = math.NaN(), math.NaN()
	c.point = 0
}

func (c *basis) LineEnd() {
	switch c.point {
	case 3:
		c.bezier(c.x1, c.y1)
		c.ctx.LineTo(c.x1, c.y1)
	case 2:
		c.ctx.LineTo(c.x1, c.y1)
	}
	if c.line.shouldClose(c.point) {
		c.ctx.ClosePath()
	}
	c.line = c.line.toggle()
}

func (c *basis) Point(x, y float64) {
	switch c.point {
	case 0:
		c.point = 1
		start(c.ctx, c.line, x, y)
	case 1:
		c.point = 2
	case 2:
		c.point = 3
		c.ctx.LineTo((5*c.x0+c.x1)/6, (5*c.y0+c.y1)/6)
		c.bezier(x, y)
	default:
		c.bezier(x, y)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
}

func (c *basis) bezier(x, y float64) {
	c.ctx.BezierCurveTo(
		(2*c.x0+c.x1)/3,
		(2*c.y0+c.y1)/3,
		(c.x0+2*c.x1)/3,
		(c.y0+2*c.y1)/3,
		(c.x0+4*c.x1+x)/6,
		(c.y0+4*c.y1+y)/6,
	)
}
