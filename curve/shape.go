package curve

// Line generates the path of a line through data. Consecutive data for
// which Defined returns false break the line into separate subpaths.
type Line[T any] struct {
	X       func(T) float64
	Y       func(T) float64
	Defined func(T) bool
	Curve   Type
}

func (g Line[T]) Render(data []T) string {
	var (
		pat     Path
		out     = g.Curve.Factory()(&pat)
		defined bool
	)
	for i := 0; i <= len(data); i++ {
		ok := i < len(data) && g.isDefined(data[i])
		if ok != defined {
			if defined = ok; defined {
				out.LineStart()
			} else {
				out.LineEnd()
			}
		}
		if defined {
			out.Point(g.X(data[i]), g.Y(data[i]))
		}
	}
	return pat.String()
}

func (g Line[T]) isDefined(d T) bool {
	return g.Defined == nil || g.Defined(d)
}

// Area generates the path of the region between a top line (X, Y1) and a
// baseline (X, Y0).
type Area[T any] struct {
	X       func(T) float64
	Y0      func(T) float64
	Y1      func(T) float64
	Defined func(T) bool
	Curve   Type
}

func (g Area[T]) Render(data []T) string {
	var (
		pat     Path
		out     = g.Curve.Factory()(&pat)
		defined bool
		first   int
		xs      = make([]float64, len(data))
		ys      = make([]float64, len(data))
	)
	for i := 0; i <= len(data); i++ {
		ok := i < len(data) && g.isDefined(data[i])
		if ok != defined {
			if defined = ok; defined {
				first = i
				out.AreaStart()
				out.LineStart()
			} else {
				out.LineEnd()
				out.LineStart()
				for k := i - 1; k >= first; k-- {
					out.Point(xs[k], ys[k])
				}
				out.LineEnd()
				out.AreaEnd()
			}
		}
		if defined {
			xs[i], ys[i] = g.X(data[i]), g.Y0(data[i])
			out.Point(xs[i], g.Y1(data[i]))
		}
	}
	return pat.String()
}

func (g Area[T]) isDefined(d T) bool {
	return g.Defined == nil || g.Defined(d)
}

// TopLine returns the generator of the area's upper boundary.
func (g Area[T]) TopLine() Line[T] {
	return Line[T]{
		X:       g.X,
		Y:       g.Y1,
		Defined: g.Defined,
		Curve:   g.Curve,
	}
}

// BottomLine returns the generator of the area's baseline.
func (g Area[T]) BottomLine() Line[T] {
	return Line[T]{
		X:       g.X,
		Y:       g.Y0,
		Defined: g.Defined,
		Curve:   g.Curve,
	}
}
