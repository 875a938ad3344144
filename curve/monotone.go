package curve

import "math"

// monotone draws a cubic spline that preserves monotonicity in y, assuming
// monotonicity in x.
type monotone struct {
	ctx    Context
	line   lineState
	point  int
	x0, x1 float64
	y0, y1 float64
	t0     float64
}

func (c *monotone) AreaStart() {
	c.line = 0
}

func (c *monotone) AreaEnd() {
	c.line = lineNone
}

func (c *monotone) LineStart() {
	nan := math.NaN()
	c.x0, c.x1 = nan, nan
	c.y0, c.y1 = nan, nan
	c.t0 = nan
	c.point = 0
}

func (c *monotone) LineEnd() {
	switch c.point {
	case 2:
		c.ctx.LineTo(c.x1, c.y1)
	case 3:
		c.bezier(c.t0, c.slope2(c.t0))
	}
	if c.line.shouldClose(c.point) {
		c.ctx.ClosePath()
	}
	c.line = c.line.toggle()
}

func (c *monotone) Point(x, y float64) {
	if x == c.x1 && y == c.y1 {
		return
	}
	t1 := math.NaN()
	switch c.point {
	case 0:
		c.point = 1
		start(c.ctx, c.line, x, y)
	case 1:
		c.point = 2
	case 2:
		c.point = 3
		t1 = c.slope3(x, y)
		c.bezier(c.slope2(t1), t1)
	default:
		t1 = c.slope3(x, y)
		c.bezier(c.t0, t1)
	}
	c.x0, c.x1 = c.x1, x
	c.y0, c.y1 = c.y1, y
	c.t0 = t1
}

func (c *monotone) bezier(t0, t1 float64) {
	dx := (c.x1 - c.x0) / 3
	c.ctx.BezierCurveTo(c.x0+dx, c.y0+dx*t0, c.x1-dx, c.y1-dx*t1, c.x1, c.y1)
}

// slope3 computes the tangent at the middle of three points with the
// Steffen method.
func (c *monotone) slope3(x2, y2 float64) float64 {
	var (
		h0 = c.x1 - c.x0
		h1 = x2 - c.x1
		s0 = (c.y1 - c.y0) / divisor(h0, h1)
		s1 = (y2 - c.y1) / divisor(h1, h0)
		p  = (s0*h1 + s1*h0) / (h0 + h1)
	)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 computes the tangent at an end point from the tangent t at the
// neighbouring point.
func (c *monotone) slope2(t float64) float64 {
	h := c.x1 - c.x0
	if h == 0 || math.IsNaN(h) {
		return t
	}
	return (3*(c.y1-c.y0)/h - t) / 2
}

func divisor(h, other float64) float64 {
	if h != 0 && !math.IsNaN(h) {
		return h
	}
	if other < 0 {
		return math.Copysign(0, -1)
	}
	return 0
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

type monotoneY struct {
	*monotone
}

func (c monotoneY) Point(x, y float64) {
	c.monotone.Point(y, x)
}
