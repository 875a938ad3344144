package xychart

import (
	"errors"
	"fmt"
)

var ErrNoSeries = errors.New("chart has no series")

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Dimensions struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

type HistogramAlignment int

const (
	AlignStart HistogramAlignment = iota
	AlignCenter
	AlignEnd
)

func (a *HistogramAlignment) UnmarshalText(b []byte) error {
	switch str := string(b); str {
	case "", "start":
		*a = AlignStart
	case "center":
		*a = AlignCenter
	case "end":
		*a = AlignEnd
	default:
		return fmt.Errorf("%s: unknown histogram alignment", str)
	}
	return nil
}

type Settings struct {
	Rotation           Rotation
	BarsPadding        float64
	MinBarHeight       float64
	HistogramAlignment HistogramAlignment
	XDomain            *XDomainConfig
	YDomains           map[string]DomainRange
	Deselected         []SeriesIdentifier
	Palette            []string
	CustomColors       map[string]string
	DefaultColor       string
	Stacking           ContributionPolicy
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding
	Settings

	Specs []SeriesSpec
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart) Dimensions() Dimensions {
	return Dimensions{
		Left:   c.Padding.Left,
		Top:    c.Padding.Top,
		Width:  c.DrawingWidth(),
		Height: c.DrawingHeight(),
	}
}

type Result struct {
	Domains    SeriesDomains
	Geometries Geometries
	Colors     map[string]string
	Legend     []LegendItem
}

// Compute runs the whole pipeline for the series of the chart.
func (c Chart) Compute() (Result, error) {
	var res Result
	if !c.Rotation.Valid() {
		return res, fmt.Errorf("%d: invalid rotation", c.Rotation)
	}
	doms, err := ComputeSeriesDomains(c.Specs, c.Settings)
	if err != nil {
		return res, err
	}
	res.Domains = doms
	res.Colors = SeriesColorMap(doms.Colors, c.Palette, c.CustomColors)
	res.Legend = LegendItems(doms.Colors, res.Colors, c.Specs, c.Deselected)
	res.Geometries = ComputeSeriesGeometries(c.Specs, doms, res.Colors, c.Dimensions(), c.Settings)
	return res, nil
}

type SeriesDomains struct {
	XDomain   XDomain
	YDomains  []YDomain
	Formatted FormattedSeries
	Colors    []SeriesColors
}

// ComputeSeriesDomains splits and formats the data of specs and computes
// the domains of the chart.
func ComputeSeriesDomains(specs []SeriesSpec, settings Settings) (SeriesDomains, error) {
	var doms SeriesDomains
	cfg, ok := ConvertXScaleTypes(specs)
	if !ok {
		return doms, ErrNoSeries
	}
	split, err := SplitSeries(specs, settings.Deselected)
	if err != nil {
		return doms, err
	}
	doms.Colors = split.Colors
	if doms.XDomain, err = MergeXDomain(cfg, split.XValues, settings.XDomain); err != nil {
		return doms, err
	}
	doms.Formatted = FormatSeries(specs, split.Series, settings.Stacking)
	if doms.YDomains, err = MergeYDomain(doms.Formatted, specs, settings.YDomains); err != nil {
		return doms, err
	}
	return doms, nil
}

type GeometryCounts struct {
	Points      int
	Bars        int
	Areas       int
	AreasPoints int
	Lines       int
	LinePoints  int
}

func (c GeometryCounts) add(other GeometryCounts) GeometryCounts {
	c.Points += other.Points
	c.Bars += other.Bars
	c.Areas += other.Areas
	c.AreasPoints += other.AreasPoints
	c.Lines += other.Lines
	c.LinePoints += other.LinePoints
	return c
}

type Geometries struct {
	Points    []PointGeometry
	Bars      []BarGeometry
	Lines     []LineGeometry
	Areas     []AreaGeometry
	Index     IndexedGeometries
	XScale    Scaler
	YScales   map[string]Scaler
	Counts    GeometryCounts
	Transform Transform
}

func (g *Geometries) merge(other Geometries) {
	g.Points = append(g.Points, other.Points...)
	g.Bars = append(g.Bars, other.Bars...)
	g.Lines = append(g.Lines, other.Lines...)
	g.Areas = append(g.Areas, other.Areas...)
	g.Index = MergeGeometriesIndexes(g.Index, other.Index)
	g.Counts = g.Counts.add(other.Counts)
}

type clusterCount struct {
	stacked    int
	nonStacked int
}

func (c clusterCount) total() int {
	return c.stacked + c.nonStacked
}

// countBarsInCluster counts the bars sharing one x value: one per stacked
// group with bars, one per non stacked bar series.
func countBarsInCluster(formatted FormattedSeries) clusterCount {
	var c clusterCount
	for _, g := range formatted.Stacked {
		if g.Counts[SeriesBar] > 0 {
			c.stacked++
		}
	}
	for _, g := range formatted.NonStacked {
		c.nonStacked += g.Counts[SeriesBar]
	}
	return c
}

// ComputeSeriesGeometries scales the formatted series and creates their
// geometries. Series without spec and groups without y scale are skipped.
func ComputeSeriesGeometries(specs []SeriesSpec, doms SeriesDomains, colors map[string]string, dims Dimensions, settings Settings) Geometries {
	width, height := dims.Width, dims.Height
	if settings.Rotation.Vertical() {
		width, height = height, width
	}
	var (
		cluster   = countBarsInCluster(doms.Formatted)
		histogram = isHistogramEnabled(specs)
		xs        = ComputeXScale(doms.XDomain, cluster.total(), NewRange(0, width), settings.BarsPadding, histogram)
		ys        = ComputeYScales(doms.YDomains, NewRange(height, 0))
		pass      = renderPass{
			specs:     specs,
			colors:    colors,
			settings:  settings,
			xs:        xs,
			cluster:   cluster.total(),
			histogram: histogram,
		}
		all = Geometries{
			XScale:    xs,
			YScales:   ys,
			Transform: ComputeChartTransform(dims, settings.Rotation),
		}
		order int
	)
	for _, g := range doms.Formatted.Stacked {
		y, ok := ys[g.GroupID]
		if !ok {
			continue
		}
		all.merge(pass.render(order, true, g.Series, y))
		if g.Counts[SeriesBar] > 0 {
			order++
		}
	}
	for _, g := range doms.Formatted.NonStacked {
		y, ok := ys[g.GroupID]
		if !ok {
			continue
		}
		all.merge(pass.render(cluster.stacked, false, g.Series, y))
	}
	return all
}

type renderPass struct {
	specs     []SeriesSpec
	colors    map[string]string
	settings  Settings
	xs        Scaler
	cluster   int
	histogram bool
}

func (p renderPass) render(offset int, stacked bool, series []DataSeries, ys Scaler) Geometries {
	var (
		res     Geometries
		indexes []IndexedGeometries
		bars    int
	)
	for _, ds := range series {
		spec, ok := findSpec(p.specs, ds.SpecID)
		if !ok {
			continue
		}
		var (
			id = GeometryID{
				SpecID:    ds.SpecID,
				SeriesKey: ds.Key,
			}
			color = p.colors[ds.ColorKey]
			shift = p.xs.Bandwidth() * float64(max(p.cluster, 1)) / 2
			opts  = LineOptions{
				Curve:        spec.Curve,
				HasY0:        spec.HasY0(),
				XScaleOffset: p.xScaleOffset(),
			}
			index IndexedGeometries
		)
		if color == "" {
			color = p.defaultColor()
		}
		switch spec.Type {
		case SeriesBar:
			order := offset
			if !stacked {
				order += bars
			}
			list, ix := RenderBars(order, ds.Data, p.xs, ys, color, id, BarOptions{MinHeight: p.settings.MinBarHeight})
			res.Bars = append(res.Bars, list...)
			res.Counts.Bars += len(list)
			index = ix
			bars++
		case SeriesLine:
			line, ix := RenderLine(shift, ds.Data, p.xs, ys, color, id, opts)
			res.Lines = append(res.Lines, line)
			res.Counts.Lines++
			res.Counts.LinePoints += len(line.Points)
			index = ix
		case SeriesArea:
			area, ix := RenderArea(shift, ds.Data, p.xs, ys, color, id, opts)
			res.Areas = append(res.Areas, area)
			res.Counts.Areas++
			res.Counts.AreasPoints += len(area.Points)
			index = ix
		case SeriesPoint:
			list, ix := RenderPoints(shift-opts.XScaleOffset, ds.Data, p.xs, ys, color, id, opts.HasY0)
			res.Points = append(res.Points, list...)
			res.Counts.Points += len(list)
			index = ix
		default:
			continue
		}
		indexes = append(indexes, index)
	}
	res.Index = MergeGeometriesIndexes(indexes...)
	return res
}

func (p renderPass) defaultColor() string {
	if p.settings.DefaultColor != "" {
		return p.settings.DefaultColor
	}
	return DefaultColor
}

// xScaleOffset moves lines and areas to the start of their band in
// histogram mode.
func (p renderPass) xScaleOffset() float64 {
	if !p.histogram {
		return 0
	}
	var (
		bw      = p.xs.Bandwidth()
		padding = clamp(p.settings.BarsPadding, 0, 1)
		band    = bw
	)
	if padding < 1 {
		band = bw / (1 - padding)
	}
	start := bw/2 + (band-bw)/2
	switch p.settings.HistogramAlignment {
	case AlignCenter:
		return 0
	case AlignEnd:
		return -start
	default:
		return start
	}
}

func isHistogramEnabled(specs []SeriesSpec) bool {
	for _, s := range specs {
		if s.Type == SeriesBar && s.Histogram {
			return true
		}
	}
	return false
}

// ComputeChartTransform gives the translation and rotation to apply to the
// drawing area for a rotation.
func ComputeChartTransform(dims Dimensions, rotation Rotation) Transform {
	switch rotation {
	case Rotate90:
		return Transform{X: dims.Width, Rotate: 90}
	case RotateMinus90:
		return Transform{Y: dims.Height, Rotate: -90}
	case Rotate180:
		return Transform{X: dims.Width, Y: dims.Height, Rotate: 180}
	default:
		return Transform{}
	}
}
