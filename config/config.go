package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/midbel/xychart"
	"github.com/midbel/xychart/curve"
	"gopkg.in/yaml.v3"
)

var ErrNoSeries = errors.New("no series defined")

type FileError struct {
	File string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

type Domain struct {
	Min         *float64 `yaml:"min"`
	Max         *float64 `yaml:"max"`
	MinInterval *float64 `yaml:"minInterval"`
}

func (d Domain) Range() xychart.DomainRange {
	return xychart.DomainRange{
		Min:         nullFloat(d.Min),
		Max:         nullFloat(d.Max),
		MinInterval: nullFloat(d.MinInterval),
	}
}

// XDomain is either a mapping with bounds or a list of categories.
type XDomain struct {
	Domain
	Values []any
}

func (d *XDomain) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		return node.Decode(&d.Values)
	case yaml.MappingNode:
		return node.Decode(&d.Domain)
	default:
		return fmt.Errorf("line %d: xDomain should be a mapping or a list", node.Line)
	}
}

type Stacking struct {
	Absent xychart.Contribution `yaml:"absent"`
	Null   xychart.Contribution `yaml:"null"`
}

type Series struct {
	ID         string             `yaml:"id"`
	Group      string             `yaml:"group"`
	Name       string             `yaml:"name"`
	Type       xychart.SeriesType `yaml:"type"`
	Curve      curve.Type         `yaml:"curve"`
	XScale     xychart.ScaleType  `yaml:"xScale"`
	YScale     xychart.ScaleType  `yaml:"yScale"`
	Timezone   string             `yaml:"timezone"`
	X          string             `yaml:"x"`
	Y          []string           `yaml:"y"`
	Y0         []string           `yaml:"y0"`
	Split      []string           `yaml:"split"`
	Color      []string           `yaml:"color"`
	Stack      []string           `yaml:"stack"`
	Percentage bool               `yaml:"percentage"`
	Extent     bool               `yaml:"extent"`
	Histogram  bool               `yaml:"histogram"`
	Data       string             `yaml:"data"`
	Rows       []map[string]any   `yaml:"rows"`
}

type File struct {
	Title        string                     `yaml:"title"`
	Width        float64                    `yaml:"width"`
	Height       float64                    `yaml:"height"`
	Rotation     int                        `yaml:"rotation"`
	Padding      Padding                    `yaml:"padding"`
	Palette      string                     `yaml:"palette"`
	Colors       map[string]string          `yaml:"colors"`
	DefaultColor string                     `yaml:"defaultColor"`
	BarsPadding  float64                    `yaml:"barsPadding"`
	MinBarHeight float64                    `yaml:"minBarHeight"`
	Alignment    xychart.HistogramAlignment `yaml:"histogramAlignment"`
	XDomain      *XDomain                   `yaml:"xDomain"`
	YDomains     map[string]Domain          `yaml:"yDomains"`
	Stacking     Stacking                   `yaml:"stacking"`
	Series       []Series                   `yaml:"series"`

	dir string
}

// Load reads the chart file at path. Data files of series are resolved
// relative to the directory of path.
func Load(path string) (File, error) {
	var f File
	r, err := os.Open(path)
	if err != nil {
		return f, err
	}
	defer r.Close()

	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return f, FileError{File: path, Err: err}
	}
	if len(f.Series) == 0 {
		return f, FileError{File: path, Err: ErrNoSeries}
	}
	f.dir = filepath.Dir(path)
	return f, nil
}

// Chart builds the chart described by f, loading the data of its series.
func (f File) Chart() (xychart.Chart, error) {
	c := xychart.Chart{
		Title:  f.Title,
		Width:  f.Width,
		Height: f.Height,
		Padding: xychart.Padding{
			Top:    f.Padding.Top,
			Right:  f.Padding.Right,
			Bottom: f.Padding.Bottom,
			Left:   f.Padding.Left,
		},
	}
	c.Rotation = xychart.Rotation(f.Rotation)
	c.BarsPadding = f.BarsPadding
	c.MinBarHeight = f.MinBarHeight
	c.HistogramAlignment = f.Alignment
	c.CustomColors = f.Colors
	c.DefaultColor = f.DefaultColor
	c.Stacking = xychart.ContributionPolicy{
		Absent: f.Stacking.Absent,
		Null:   f.Stacking.Null,
	}
	if f.Palette != "" {
		p, err := xychart.ParsePalette(f.Palette)
		if err != nil {
			return c, err
		}
		c.Palette = p
	}
	if f.XDomain != nil {
		var dom xychart.XDomainConfig
		if len(f.XDomain.Values) > 0 {
			dom.Values = f.XDomain.Values
		} else {
			rg := f.XDomain.Range()
			dom.Range = &rg
		}
		c.XDomain = &dom
	}
	if len(f.YDomains) > 0 {
		c.YDomains = make(map[string]xychart.DomainRange)
		for id, d := range f.YDomains {
			c.YDomains[id] = d.Range()
		}
	}
	for _, s := range f.Series {
		spec, err := f.spec(s)
		if err != nil {
			return c, err
		}
		c.Specs = append(c.Specs, spec)
	}
	return c, nil
}

func (f File) spec(s Series) (xychart.SeriesSpec, error) {
	spec := xychart.SeriesSpec{
		ID:                   s.ID,
		GroupID:              s.Group,
		Name:                 s.Name,
		Type:                 s.Type,
		XScaleType:           s.XScale,
		YScaleType:           s.YScale,
		Timezone:             s.Timezone,
		XAccessor:            s.X,
		YAccessors:           s.Y,
		Y0Accessors:          s.Y0,
		SplitSeriesAccessors: s.Split,
		ColorAccessors:       s.Color,
		StackAccessors:       s.Stack,
		StackAsPercentage:    s.Percentage,
		YScaleToDataExtent:   s.Extent,
		Histogram:            s.Histogram,
		Curve:                s.Curve,
	}
	if spec.ID == "" {
		return spec, fmt.Errorf("series without id")
	}
	if spec.GroupID == "" {
		spec.GroupID = xychart.DefaultGroupID
	}
	for _, r := range s.Rows {
		spec.Data = append(spec.Data, xychart.Datum(r))
	}
	if s.Data == "" {
		return spec, nil
	}
	file := s.Data
	if !filepath.IsAbs(file) {
		file = filepath.Join(f.dir, file)
	}
	data, err := ReadCSV(file)
	if err != nil {
		return spec, err
	}
	spec.Data = append(spec.Data, data...)
	return spec, nil
}

func nullFloat(f *float64) xychart.NullFloat {
	if f == nil {
		return xychart.Null
	}
	return xychart.Float(*f)
}
