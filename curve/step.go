package curve

import "math"

type step struct {
	ctx   Context
	line  lineState
	point int
	t     float64
	x     float64
	y     float64
}

func newStep(ctx Context, t float64) *step {
	return &step{
		ctx:  ctx,
		t:    t,
		line: lineNone,
	}
}

func (c *step) AreaStart() {
	c.line = 0
}

func (c *step) AreaEnd() {
	c.line = lineNone
}

func (c *step) LineStart() {
	c.x, c.y = math.NaN(), math.NaN()
	c.point = 0
}

func (c *step) LineEnd() {
	if 0 < c.t && c.t < 1 && c.point == 2 {
		c.ctx.LineTo(c.x, c.y)
	}
	if c.line.shouldClose(c.point) {
		c.ctx.ClosePath()
	}
	if c.line >= 0 {
		c.t = 1 - c.t
		c.line = c.line.toggle()
	}
}

func (c *step) Point(x, y float64) {
	switch c.point {
	case 0:
		c.point = 1
		start(c.ctx, c.line, x, y)
	case 1:
		c.point = 2
		c.stepTo(x, y)
	default:
		c.stepTo(x, y)
	}
	c.x, c.y = x, y
}

func (c *step) stepTo(x, y float64) {
	if c.t <= 0 {
		c.ctx.LineTo(c.x, y)
		c.ctx.LineTo(x, y)
		return
	}
	x1 := c.x*(1-c.t) + x*c.t
	c.ctx.LineTo(x1, c.y)
	c.ctx.LineTo(x1, y)
}
