package xychart

import (
	"math"
	"slices"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
)

const defaultTimezone = "UTC"

// DomainRange bounds a continuous domain. A bound left null is computed
// from the data.
type DomainRange struct {
	Min         NullFloat
	Max         NullFloat
	MinInterval NullFloat
}

// XDomainConfig is a custom x domain: either a range for continuous scales
// or a list of categories for ordinal scales.
type XDomainConfig struct {
	Range  *DomainRange
	Values []any
}

type XScaleConfig struct {
	Type        ScaleType
	IsBandScale bool
	Timezone    string
}

type XDomain struct {
	Type        ScaleType
	IsBandScale bool
	Timezone    string
	Values      []any
	Min         float64
	Max         float64
	MinInterval float64
}

type YDomain struct {
	GroupID string
	Type    ScaleType
	Min     float64
	Max     float64
}

// ConvertXScaleTypes resolves the x scale shared by all specs. It reports
// false when specs is empty.
func ConvertXScaleTypes(specs []SeriesSpec) (XScaleConfig, bool) {
	if len(specs) == 0 {
		return XScaleConfig{}, false
	}
	var (
		cfg   XScaleConfig
		types = make(map[ScaleType]struct{})
		zones = make(map[string]string)
	)
	for _, s := range specs {
		cfg.IsBandScale = cfg.IsBandScale || s.Type == SeriesBar
		types[s.XScaleType] = struct{}{}
		if s.Timezone == "" {
			continue
		}
		if k := strings.ToLower(s.Timezone); zones[k] == "" {
			zones[k] = s.Timezone
		}
	}
	cfg.Timezone = defaultTimezone
	if len(zones) == 1 {
		for _, z := range zones {
			cfg.Timezone = z
		}
	}
	if len(types) == 1 {
		cfg.Type = specs[0].XScaleType
		return cfg, true
	}
	if _, ok := types[ScaleOrdinal]; ok {
		cfg.Type = ScaleOrdinal
	} else {
		cfg.Type = ScaleLinear
	}
	return cfg, true
}

// MergeXDomain computes the x domain from the x values of every series.
func MergeXDomain(cfg XScaleConfig, xValues []any, custom *XDomainConfig) (XDomain, error) {
	dom := XDomain{
		Type:        cfg.Type,
		IsBandScale: cfg.IsBandScale,
		Timezone:    cfg.Timezone,
	}
	if cfg.Type == ScaleOrdinal {
		dom.Values = slice.Nub(slices.Clone(xValues)).([]any)
		if custom != nil {
			if custom.Range != nil {
				return dom, xDomainError("xDomain for ordinal scale should be an array of values, not a DomainRange object")
			}
			if len(custom.Values) > 0 {
				values := make([]any, 0, len(custom.Values))
				for _, v := range custom.Values {
					x, ok := toXValue(v)
					if !ok {
						return dom, xDomainError("xDomain values should be numbers, strings or times")
					}
					values = append(values, x)
				}
				dom.Values = values
			}
		}
		dom.MinInterval = 1
		return dom, nil
	}
	values := make([]float64, 0, len(xValues))
	for _, v := range xValues {
		f, ok := asFloat(v)
		if !ok {
			return dom, xDomainError("x values should be numbers for a continuous scale")
		}
		values = append(values, f)
	}
	dom.Min, dom.Max = extent(values)
	dom.MinInterval = findMinInterval(values)
	if custom == nil {
		return dom, nil
	}
	if custom.Range == nil {
		if len(custom.Values) > 0 {
			return dom, xDomainError("xDomain for continuous scale should be a DomainRange object, not an array")
		}
		return dom, nil
	}
	var err error
	dom.Min, dom.Max, err = applyCustomRange(dom.Min, dom.Max, *custom.Range, xDomainError)
	if err != nil {
		return dom, err
	}
	if mi := custom.Range.MinInterval; mi.Valid {
		if mi.Float64 < 0 {
			return dom, xDomainError("custom xDomain is invalid, custom minInterval is less than 0")
		}
		if len(values) > 1 && mi.Float64 > dom.MinInterval {
			return dom, xDomainError("custom xDomain is invalid, custom minInterval is greater than computed minInterval")
		}
		dom.MinInterval = mi.Float64
	}
	return dom, nil
}

// MergeYDomain computes one y domain per group of specs.
func MergeYDomain(formatted FormattedSeries, specs []SeriesSpec, custom map[string]DomainRange) ([]YDomain, error) {
	var list []YDomain
	for _, g := range SplitSpecsByGroupID(specs) {
		dom := YDomain{
			GroupID: g.GroupID,
			Type:    coerceYScaleType(g.Specs()),
		}
		if g.Percentage {
			dom.Min, dom.Max = 0, 1
		} else {
			var values []float64
			values = append(values, stackedValues(groupSeries(formatted.Stacked, g.GroupID))...)
			values = append(values, nonStackedValues(groupSeries(formatted.NonStacked, g.GroupID))...)
			dom.Min, dom.Max = continuousDomain(values, g.ScaleToExtent)
		}
		if c, ok := custom[g.GroupID]; ok {
			errorf := func(msg string) error {
				return DomainError{
					Axis:    "y",
					GroupID: g.GroupID,
					Message: strings.Replace(msg, "xDomain", "yDomain", 1),
				}
			}
			var err error
			if dom.Min, dom.Max, err = applyCustomRange(dom.Min, dom.Max, c, errorf); err != nil {
				return nil, err
			}
		}
		list = append(list, dom)
	}
	return list, nil
}

func applyCustomRange(lo, hi float64, c DomainRange, errorf func(string) error) (float64, float64, error) {
	switch {
	case c.Min.Valid && c.Max.Valid:
		if c.Min.Float64 > c.Max.Float64 {
			return lo, hi, errorf("custom xDomain is invalid, min is greater than max")
		}
		return c.Min.Float64, c.Max.Float64, nil
	case c.Min.Valid:
		if c.Min.Float64 > hi {
			return lo, hi, errorf("custom xDomain is invalid, custom min is greater than computed max")
		}
		return c.Min.Float64, hi, nil
	case c.Max.Valid:
		if lo > c.Max.Float64 {
			return lo, hi, errorf("custom xDomain is invalid, computed min is greater than custom max")
		}
		return lo, c.Max.Float64, nil
	default:
		return lo, hi, nil
	}
}

func xDomainError(msg string) error {
	return DomainError{
		Axis:    "x",
		Message: msg,
	}
}

func coerceYScaleType(specs []SeriesSpec) ScaleType {
	if len(specs) == 0 {
		return ScaleLinear
	}
	typ := specs[0].YScaleType
	for _, s := range specs[1:] {
		if s.YScaleType != typ {
			return ScaleLinear
		}
	}
	return typ
}

func groupSeries(groups []FormattedGroup, id string) []DataSeries {
	for _, g := range groups {
		if g.GroupID == id {
			return g.Series
		}
	}
	return nil
}

// stackedValues returns the individual y values of the series together with
// their sum at each x where more than one series has a value.
func stackedValues(series []DataSeries) []float64 {
	var (
		values []float64
		sums   = make(map[any][]float64)
		keys   []any
	)
	for _, s := range series {
		for _, d := range s.Data {
			if !d.InitialY1.Valid {
				continue
			}
			if _, ok := sums[d.X]; !ok {
				keys = append(keys, d.X)
			}
			sums[d.X] = append(sums[d.X], d.InitialY1.Float64)
		}
	}
	for _, k := range keys {
		stack := sums[k]
		values = append(values, stack...)
		if len(stack) > 1 {
			var total float64
			for _, v := range stack {
				total += v
			}
			values = append(values, total)
		}
	}
	return values
}

func nonStackedValues(series []DataSeries) []float64 {
	var values []float64
	for _, s := range series {
		for _, d := range s.Data {
			if d.InitialY1.Valid {
				values = append(values, d.InitialY1.Float64)
			}
			if d.InitialY0.Valid {
				values = append(values, d.InitialY0.Float64)
			}
		}
	}
	return values
}

func continuousDomain(values []float64, scaleToExtent bool) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := extent(values)
	if scaleToExtent {
		return lo, hi
	}
	return math.Min(lo, 0), math.Max(hi, 0)
}

func extent(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	return slices.Min(values), slices.Max(values)
}

func findMinInterval(values []float64) float64 {
	switch len(values) {
	case 0:
		return 0
	case 1:
		return 1
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	interval := math.Inf(1)
	for i := 1; i < len(sorted); i++ {
		interval = math.Min(interval, math.Abs(sorted[i]-sorted[i-1]))
	}
	return interval
}
