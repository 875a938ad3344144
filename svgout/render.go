package svgout

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"slices"

	svg "github.com/ajstarks/svgo"
	"github.com/gosimple/slug"
	"github.com/midbel/xychart"
)

// Options controls how a computed chart is written.
type Options struct {
	Style
	Geometry    xychart.SharedGeometryStyle
	Highlighted *xychart.LegendItem
	Legend      Orientation
	Ticks       int
	NoAxis      bool
}

func DefaultOptions() Options {
	return Options{
		Style:    DefaultStyle(),
		Geometry: xychart.DefaultGeometryStyle,
		Legend:   OrientRight | OrientTop,
		Ticks:    5,
	}
}

// Render writes c as a svg document using the geometries of res.
func Render(w io.Writer, c xychart.Chart, res xychart.Result, opts Options) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(int(c.Width), int(c.Height))
	if c.Title != "" {
		canvas.Title(c.Title)
	}
	if !opts.NoAxis && c.Rotation == xychart.Rotate0 {
		drawAxis(canvas, c, res.Geometries, opts)
	}
	drawArea(canvas, c, res.Geometries, opts)
	drawLegend(canvas, c, res.Legend, opts)
	canvas.End()
	return bw.Flush()
}

func drawArea(canvas *svg.SVG, c xychart.Chart, geoms xychart.Geometries, opts Options) {
	var (
		t    = geoms.Transform
		left = c.Padding.Left + t.X
		top  = c.Padding.Top + t.Y
	)
	canvas.Group(`id="area"`, fmt.Sprintf(`transform="%s rotate(%s)"`, translate(left, top), num(t.Rotate)))
	defer canvas.Gend()

	for _, a := range geoms.Areas {
		opacity := opts.Geometry.Style(a.GeometryID, opts.Highlighted).Opacity
		canvas.Gtransform(translate(a.Transform.X, a.Transform.Y))
		canvas.Path(a.Area, opts.fill(a.Color, opacity))
		for _, li := range a.Lines {
			canvas.Path(li, opts.stroke(a.Color, opacity))
		}
		drawPoints(canvas, a.Points, opts, -a.Transform.X)
		canvas.Gend()
	}
	for _, b := range geoms.Bars {
		opacity := opts.Geometry.Style(b.GeometryID, opts.Highlighted).Opacity
		d := fmt.Sprintf("M%s,%sh%sv%sh%sZ", num(b.X), num(b.Y), num(b.Width), num(b.Height), num(-b.Width))
		canvas.Path(d, fmt.Sprintf("fill:%s;fill-opacity:%s", b.Color, num(opacity)))
	}
	for _, li := range geoms.Lines {
		opacity := opts.Geometry.Style(li.GeometryID, opts.Highlighted).Opacity
		canvas.Gtransform(translate(li.Transform.X, li.Transform.Y))
		canvas.Path(li.Line, opts.stroke(li.Color, opacity))
		drawPoints(canvas, li.Points, opts, -li.Transform.X)
		canvas.Gend()
	}
	drawPoints(canvas, geoms.Points, opts, 0)
}

// drawPoints draws the markers of points. offset cancels the transform of
// the enclosing group.
func drawPoints(canvas *svg.SVG, points []xychart.PointGeometry, opts Options, offset float64) {
	marker := opts.Marker
	if marker == nil {
		marker = Circle
	}
	for _, p := range points {
		var (
			opacity = opts.Geometry.Style(p.GeometryID, opts.Highlighted).Opacity
			style   = fmt.Sprintf("fill:%s;fill-opacity:%s", p.Color, num(opacity))
		)
		marker(canvas, p.X+p.Transform.X+offset, p.Y+p.Transform.Y, DefaultSize/2, style)
	}
}

func drawAxis(canvas *svg.SVG, c xychart.Chart, geoms xychart.Geometries, opts Options) {
	canvas.Gid("axis")
	defer canvas.Gend()

	if geoms.XScale != nil {
		bottom := Axis{
			Orientation:    OrientBottom,
			Ticks:          opts.Ticks,
			Scaler:         geoms.XScale,
			WithInnerTicks: true,
			WithLabelTicks: true,
		}
		bottom.Render(canvas, c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
	}
	groups := slices.Sorted(maps.Keys(geoms.YScales))
	for i, id := range groups {
		if i > 1 {
			break
		}
		axis := Axis{
			Orientation:    OrientLeft,
			Ticks:          opts.Ticks,
			Scaler:         geoms.YScales[id],
			WithInnerTicks: true,
			WithLabelTicks: true,
			WithOuterTicks: i == 0,
		}
		left := c.Padding.Left
		if i == 1 {
			axis.Orientation = OrientRight
			left = c.Width - c.Padding.Right
		}
		axis.Render(canvas, c.DrawingHeight(), c.DrawingWidth(), left, c.Padding.Top)
	}
}

func drawLegend(canvas *svg.SVG, c xychart.Chart, items []xychart.LegendItem, opts Options) {
	if len(items) == 0 || opts.Legend == 0 {
		return
	}
	var (
		offset = opts.Text.Size * 1.4
		height = float64(len(items)) * offset
		width  float64
	)
	for _, it := range items {
		width = max(width, float64(len(it.Label)))
	}
	width *= opts.Text.Size * 0.6
	width += 30

	var left, top float64
	switch opts.Legend {
	case OrientRight:
		left = c.Width - c.Padding.Right - width
		top = (c.Height - height) / 2
	case OrientRight | OrientBottom:
		left = c.Width - c.Padding.Right - width
		top = c.Height - c.Padding.Bottom - height
	case OrientBottom:
		left = (c.Width - width) / 2
		top = c.Height - c.Padding.Bottom - height
	case OrientLeft | OrientBottom:
		left = c.Padding.Left
		top = c.Height - c.Padding.Bottom - height
	case OrientLeft:
		left = c.Padding.Left
		top = (c.Height - height) / 2
	case OrientLeft | OrientTop:
		left = c.Padding.Left
		top = c.Padding.Top
	case OrientTop:
		left = (c.Width - width) / 2
		top = c.Padding.Top
	case OrientRight | OrientTop:
		left = c.Width - c.Padding.Right - width
		top = c.Padding.Top
	default:
		return
	}
	canvas.Group(`id="legend"`, fmt.Sprintf(`transform="%s"`, translate(left, top)))
	defer canvas.Gend()

	for i, it := range items {
		opacity := 1.0
		if !it.IsSeriesVisible {
			opacity = opts.Geometry.Unhighlighted.Opacity
		}
		canvas.Group(fmt.Sprintf(`id="legend-%s"`, slug.Make(it.Label)), fmt.Sprintf(`transform="%s"`, translate(0, float64(i)*offset)))
		line := opts.stroke(it.Color, opacity)
		if it.IsY0 {
			line += ";stroke-dasharray:4,2"
		}
		canvas.Path("M0,0L20,0", line)
		canvas.Text(30, 0, it.Label, opts.text()+";dominant-baseline:middle;fill-opacity:"+num(opacity))
		canvas.Gend()
	}
}
