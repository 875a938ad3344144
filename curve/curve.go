package curve

import (
	"fmt"
	"strings"
)

type Type int

const (
	Linear Type = iota
	Cardinal
	CatmullRom
	Basis
	MonotoneX
	MonotoneY
	Step
	StepAfter
	StepBefore
	Natural
)

var typeNames = map[Type]string{
	Linear:     "linear",
	Cardinal:   "cardinal",
	CatmullRom: "catmullRom",
	Basis:      "basis",
	MonotoneX:  "monotoneX",
	MonotoneY:  "monotoneY",
	Step:       "step",
	StepAfter:  "stepAfter",
	StepBefore: "stepBefore",
	Natural:    "natural",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("curve(%d)", int(t))
}

// Parse accepts curve names case-insensitively, with or without dashes.
func Parse(str string) (Type, error) {
	if str == "" {
		return Linear, nil
	}
	norm := strings.ToLower(strings.ReplaceAll(str, "-", ""))
	for t, n := range typeNames {
		if strings.ToLower(n) == norm {
			return t, nil
		}
	}
	return Linear, fmt.Errorf("%s: unknown curve type", str)
}

func (t *Type) UnmarshalText(b []byte) error {
	x, err := Parse(string(b))
	if err == nil {
		*t = x
	}
	return err
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Curve receives the points of a shape and writes them to a Context.
type Curve interface {
	AreaStart()
	AreaEnd()
	LineStart()
	LineEnd()
	Point(x, y float64)
}

type Factory func(Context) Curve

func (t Type) Factory() Factory {
	switch t {
	case Cardinal:
		return func(ctx Context) Curve { return newCardinal(ctx, 0) }
	case CatmullRom:
		return func(ctx Context) Curve { return newCatmullRom(ctx, 0.5) }
	case Basis:
		return func(ctx Context) Curve { return &basis{ctx: ctx, line: lineNone} }
	case MonotoneX:
		return func(ctx Context) Curve { return &monotone{ctx: ctx, line: lineNone} }
	case MonotoneY:
		return func(ctx Context) Curve { return monotoneY{&monotone{ctx: reflectContext{ctx}, line: lineNone}} }
	case Step:
		return func(ctx Context) Curve { return newStep(ctx, 0.5) }
	case StepAfter:
		return func(ctx Context) Curve { return newStep(ctx, 1) }
	case StepBefore:
		return func(ctx Context) Curve { return newStep(ctx, 0) }
	case Natural:
		return func(ctx Context) Curve { return &natural{ctx: ctx, line: lineNone} }
	default:
		return func(ctx Context) Curve { return &linear{ctx: ctx, line: lineNone} }
	}
}

// lineState tracks whether a curve is drawing the top line of an area (0),
// its baseline (1), or a standalone line (lineNone).
type lineState int

const lineNone lineState = -1

func (s lineState) joined() bool {
	return s == 1
}

func (s lineState) shouldClose(point int) bool {
	return s == 1 || (s != 0 && point == 1)
}

func (s lineState) toggle() lineState {
	if s == lineNone {
		return s
	}
	return 1 - s
}

func start(ctx Context, line lineState, x, y float64) {
	if line.joined() {
		ctx.LineTo(x, y)
	} else {
		ctx.MoveTo(x, y)
	}
}

type linear struct {
	ctx   Context
	line  lineState
	point int
}

func (c *linear) AreaStart() {
	c.line = 0
}

func (c *linear) AreaEnd() {
	c.line = lineNone
}

func (c *linear) LineStart() {
	c.point = 0
}

func (c *linear) LineEnd() {
	if c.line.shouldClose(c.point) {
		c.ctx.ClosePath()
	}
	c.line = c.line.toggle()
}

func (c *linear) Point(x, y float64) {
	switch c.point {
	case 0:
		c.point = 1
		start(c.ctx, c.line, x, y)
	case 1:
		c.point = 2
		c.ctx.LineTo(x, y)
	default:
		c.ctx.LineTo(x, y)
	}
}
