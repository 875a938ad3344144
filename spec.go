package xychart

import (
	"fmt"
	"strings"

	"github.com/midbel/xychart/curve"
)

type SeriesType int

const (
	SeriesLine SeriesType = iota
	SeriesArea
	SeriesBar
	SeriesPoint
)

func (t SeriesType) String() string {
	switch t {
	case SeriesLine:
		return "line"
	case SeriesArea:
		return "area"
	case SeriesBar:
		return "bar"
	case SeriesPoint:
		return "point"
	default:
		return fmt.Sprintf("series(%d)", int(t))
	}
}

func (t *SeriesType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "line", "":
		*t = SeriesLine
	case "area":
		*t = SeriesArea
	case "bar":
		*t = SeriesBar
	case "point", "scatter":
		*t = SeriesPoint
	default:
		return fmt.Errorf("%s: unknown series type", b)
	}
	return nil
}

type ScaleType int

const (
	ScaleLinear ScaleType = iota
	ScaleOrdinal
	ScaleLog
	ScaleSqrt
	ScaleTime
)

func (t ScaleType) String() string {
	switch t {
	case ScaleLinear:
		return "linear"
	case ScaleOrdinal:
		return "ordinal"
	case ScaleLog:
		return "log"
	case ScaleSqrt:
		return "sqrt"
	case ScaleTime:
		return "time"
	default:
		return fmt.Sprintf("scale(%d)", int(t))
	}
}

func (t *ScaleType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "linear", "":
		*t = ScaleLinear
	case "ordinal", "band":
		*t = ScaleOrdinal
	case "log":
		*t = ScaleLog
	case "sqrt":
		*t = ScaleSqrt
	case "time":
		*t = ScaleTime
	default:
		return fmt.Errorf("%s: unknown scale type", b)
	}
	return nil
}

func (t ScaleType) IsContinuous() bool {
	return t != ScaleOrdinal
}

type Rotation int

const (
	Rotate0       Rotation = 0
	Rotate90      Rotation = 90
	Rotate180     Rotation = 180
	RotateMinus90 Rotation = -90
)

func (r Rotation) Valid() bool {
	switch r {
	case Rotate0, Rotate90, Rotate180, RotateMinus90:
		return true
	default:
		return false
	}
}

func (r Rotation) Vertical() bool {
	return r == Rotate90 || r == RotateMinus90
}

// DefaultGroupID is the group of specs that do not name one.
const DefaultGroupID = "__global__"

// SeriesSpec describes one series of a chart and where to read its values
// in Data.
type SeriesSpec struct {
	ID      string
	GroupID string
	Name    string
	Type    SeriesType

	XScaleType ScaleType
	YScaleType ScaleType
	Timezone   string

	XAccessor            string
	YAccessors           []string
	Y0Accessors          []string
	SplitSeriesAccessors []string
	ColorAccessors       []string
	StackAccessors       []string

	StackAsPercentage  bool
	YScaleToDataExtent bool
	Histogram          bool
	Curve              curve.Type

	Data []Datum
}

func (s SeriesSpec) Accessors() Accessors {
	return Accessors{
		X:           s.XAccessor,
		Y:           s.YAccessors,
		Y0:          s.Y0Accessors,
		SplitSeries: s.SplitSeriesAccessors,
		Color:       s.ColorAccessors,
	}
}

func (s SeriesSpec) IsStacked() bool {
	return len(s.StackAccessors) > 0
}

func (s SeriesSpec) HasY0() bool {
	return len(s.Y0Accessors) > 0
}

func (s SeriesSpec) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return s.ID
}

func findSpec(specs []SeriesSpec, id string) (SeriesSpec, bool) {
	for _, s := range specs {
		if s.ID == id {
			return s, true
		}
	}
	return SeriesSpec{}, false
}
