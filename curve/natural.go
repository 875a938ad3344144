package curve

// natural draws a natural cubic spline with the second derivative set to
// zero at both ends.
type natural struct {
	ctx  Context
	line lineState
	xs   []float64
	ys   []float64
}

func (c *natural) AreaStart() {
	c.line = 0
}

func (c *natural) AreaEnd() {
	c.line = lineNone
}

func (c *natural) LineStart() {
	c.xs = c.xs[:0]
	c.ys = c.ys[:0]
}

func (c *natural) LineEnd() {
	n := len(c.xs)
	if n > 0 {
		start(c.ctx, c.line, c.xs[0], c.ys[0])
		if n == 2 {
			c.ctx.LineTo(c.xs[1], c.ys[1])
		} else if n > 2 {
			var (
				ax, bx = controlPoints(c.xs)
				ay, by = controlPoints(c.ys)
			)
			for i0, i1 := 0, 1; i1 < n; i0, i1 = i0+1, i1+1 {
				c.ctx.BezierCurveTo(ax[i0], ay[i0], bx[i0], by[i0], c.xs[i1], c.ys[i1])
			}
		}
	}
	if c.line.shouldClose(n) {
		c.ctx.ClosePath()
	}
	c.line = c.line.toggle()
}

func (c *natural) Point(x, y float64) {
	c.xs = append(c.xs, x)
	c.ys = append(c.ys, y)
}

// controlPoints solves the tridiagonal system giving the two inner control
// points of each segment.
func controlPoints(x []float64) ([]float64, []float64) {
	var (
		n = len(x) - 1
		a = make([]float64, n)
		b = make([]float64, n)
		r = make([]float64, n)
	)
	a[0], b[0], r[0] = 0, 2, x[0]+2*x[1]
	for i := 1; i < n-1; i++ {
		a[i], b[i], r[i] = 1, 4, 4*x[i]+2*x[i+1]
	}
	a[n-1], b[n-1], r[n-1] = 2, 7, 8*x[n-1]+x[n]
	for i := 1; i < n; i++ {
		m := a[i] / b[i-1]
		b[i] -= m
		r[i] -= m * r[i-1]
	}
	a[n-1] = r[n-1] / b[n-1]
	for i := n - 2; i >= 0; i-- {
		a[i] = (r[i] - a[i+1]) / b[i]
	}
	b[n-1] = (x[n] + a[n-1]) / 2
	for i := 0; i < n-1; i++ {
		b[i] = 2*x[i+1] - a[i+1]
	}
	return a, b
}
