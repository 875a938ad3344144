package xychart

import (
	"math"
	"time"

	"github.com/aclements/go-moremath/scale"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return math.Max(r.F, r.T)
}

func (r Range) Min() float64 {
	return math.Min(r.F, r.T)
}

func (r Range) reverse() Range {
	return NewRange(r.T, r.F)
}

// Scaler maps values of a domain to positions in a range.
type Scaler interface {
	Scale(any) float64
	Range() Range
	Domain() []any
	Type() ScaleType
	Bandwidth() float64
	IsInverted() bool
	Values(int) []any
}

type bandScaler struct {
	rg        Range
	values    []any
	index     map[any]int
	start     float64
	step      float64
	bandwidth float64
	padding   float64
}

// BandScaler lays out values as bands of equal width. When bandwidth is
// positive it replaces the width computed from the range.
func BandScaler(values []any, rg Range, bandwidth, padding float64) Scaler {
	padding = clamp(padding, 0, 1)
	s := bandScaler{
		rg:      rg,
		values:  values,
		index:   make(map[any]int, len(values)),
		padding: padding,
	}
	for i, v := range values {
		if _, ok := s.index[v]; !ok {
			s.index[v] = i
		}
	}
	var (
		n           = float64(len(values))
		inner       = padding
		outer       = padding / 2
		start, stop = rg.Min(), rg.Max()
	)
	s.step = (stop - start) / math.Max(1, n-inner+outer*2)
	s.start = start + (stop-start-s.step*(n-inner))*0.5
	s.bandwidth = s.step * (1 - inner)
	if bandwidth > 0 && !math.IsInf(bandwidth, 0) {
		s.bandwidth = bandwidth * (1 - padding)
	}
	return s
}

func (s bandScaler) Scale(v any) float64 {
	x, ok := s.index[v]
	if !ok {
		return math.NaN()
	}
	if s.rg.F > s.rg.T {
		x = len(s.values) - 1 - x
	}
	return s.start + s.step*float64(x)
}

func (s bandScaler) Range() Range {
	return s.rg
}

func (s bandScaler) Domain() []any {
	return s.values
}

func (s bandScaler) Type() ScaleType {
	return ScaleOrdinal
}

func (s bandScaler) Bandwidth() float64 {
	return s.bandwidth
}

func (s bandScaler) IsInverted() bool {
	return false
}

func (s bandScaler) Values(c int) []any {
	if c > 0 && c < len(s.values) {
		return s.values[:c]
	}
	return s.values
}

type ContinuousOptions struct {
	Bandwidth     float64
	BarsPadding   float64
	BarsInCluster int
	Timezone      string
}

type continuousScaler struct {
	typ ScaleType
	lo  float64
	hi  float64
	rg  Range

	bandwidth        float64
	bandwidthPadding float64
	barsInCluster    int
	timezone         string
}

// ContinuousScaler maps numbers from [lo, hi] to rg. Log scales have their
// domain moved away from zero first.
func ContinuousScaler(typ ScaleType, lo, hi float64, rg Range, opts ContinuousOptions) Scaler {
	if typ == ScaleLog {
		lo, hi = LimitLogScaleDomain(lo, hi)
	}
	pad := clamp(opts.BarsPadding, 0, 1)
	s := continuousScaler{
		typ:              typ,
		lo:               lo,
		hi:               hi,
		rg:               rg,
		bandwidth:        opts.Bandwidth * (1 - pad),
		bandwidthPadding: opts.Bandwidth * pad,
		barsInCluster:    opts.BarsInCluster,
		timezone:         opts.Timezone,
	}
	return s
}

func (s continuousScaler) Scale(v any) float64 {
	x, ok := v.(float64)
	if !ok {
		return math.NaN()
	}
	return s.rg.F + s.normalize(x)*s.rg.Len() + s.bandwidthPadding/2*float64(s.barsInCluster)
}

func (s continuousScaler) normalize(x float64) float64 {
	switch s.typ {
	case ScaleLog:
		lo, hi := s.lo, s.hi
		if lo > hi {
			lo, hi = hi, lo
		}
		ls, err := scale.NewLog(lo, hi, 10)
		if err != nil {
			return math.NaN()
		}
		if (lo > 0 && x <= 0) || (hi < 0 && x >= 0) {
			return math.NaN()
		}
		f := ls.Map(x)
		if s.IsInverted() {
			f = 1 - f
		}
		return f
	case ScaleSqrt:
		ls := scale.Linear{
			Min: signedSqrt(s.lo),
			Max: signedSqrt(s.hi),
		}
		return ls.Map(signedSqrt(x))
	default:
		ls := scale.Linear{
			Min: s.lo,
			Max: s.hi,
		}
		return ls.Map(x)
	}
}

func (s continuousScaler) Range() Range {
	return s.rg
}

func (s continuousScaler) Domain() []any {
	return []any{s.lo, s.hi}
}

func (s continuousScaler) Type() ScaleType {
	return s.typ
}

func (s continuousScaler) Bandwidth() float64 {
	return s.bandwidth
}

func (s continuousScaler) IsInverted() bool {
	return s.lo > s.hi
}

func (s continuousScaler) Timezone() string {
	return s.timezone
}

func (s continuousScaler) Values(c int) []any {
	lo, hi := s.lo, s.hi
	if lo > hi {
		lo, hi = hi, lo
	}
	var (
		opts  = scale.TickOptions{Max: c}
		major []float64
	)
	if s.typ == ScaleLog {
		ls, err := scale.NewLog(lo, hi, 10)
		if err != nil {
			return nil
		}
		major, _ = ls.Ticks(opts)
	} else {
		ls := scale.Linear{
			Min: lo,
			Max: hi,
		}
		major, _ = ls.Ticks(opts)
	}
	list := make([]any, 0, len(major))
	for _, m := range major {
		list = append(list, m)
	}
	return list
}

// LimitLogScaleDomain moves the bounds of a log domain away from zero and
// keeps it on one side of zero.
func LimitLogScaleDomain(lo, hi float64) (float64, float64) {
	switch {
	case lo == 0:
		if hi > 0 {
			return 1, hi
		} else if hi < 0 {
			return -1, hi
		}
		return 1, 1
	case hi == 0:
		if lo > 0 {
			return lo, 1
		} else if lo < 0 {
			return lo, -1
		}
		return 1, 1
	case lo < 0 && hi > 0:
		if math.Abs(hi)-math.Abs(lo) >= 0 {
			return 1, hi
		}
		return lo, -1
	case lo > 0 && hi < 0:
		if math.Abs(lo)-math.Abs(hi) >= 0 {
			return lo, 1
		}
		return -1, hi
	default:
		return lo, hi
	}
}

// ComputeXScale builds the x scale of a chart. Bars need bands: ordinal
// domains give a band scale, continuous ones reserve one band at the end
// of the range.
func ComputeXScale(dom XDomain, barsInCluster int, rg Range, barsPadding float64, histogram bool) Scaler {
	var (
		diff    = math.Abs(rg.Len())
		cluster = max(barsInCluster, 1)
	)
	if dom.Type == ScaleOrdinal {
		var bandwidth float64
		if n := len(dom.Values); n > 0 {
			bandwidth = diff / float64(n*cluster)
		}
		return BandScaler(dom.Values, rg, bandwidth, barsPadding)
	}
	opts := ContinuousOptions{
		BarsPadding:   barsPadding,
		BarsInCluster: barsInCluster,
		Timezone:      dom.Timezone,
	}
	if !dom.IsBandScale {
		return ContinuousScaler(dom.Type, dom.Min, dom.Max, rg, opts)
	}
	var (
		lo, hi = dom.Min, dom.Max
		single = histogram && hi-lo == 0
		offset = 1.0
	)
	if single {
		hi = lo + dom.MinInterval
		offset = 0
	}
	var bandwidth float64
	if dom.MinInterval > 0 {
		count := (hi - lo) / dom.MinInterval
		bandwidth = diff / (count + offset)
	}
	end := bandwidth
	if single {
		end = 0
	}
	inverse := rg.F > rg.T
	if inverse {
		rg.F -= end
	} else {
		rg.T -= end
	}
	opts.Bandwidth = bandwidth / float64(cluster)
	return ContinuousScaler(dom.Type, lo, hi, rg, opts)
}

// ComputeYScales builds one scale per y domain, keyed by group.
func ComputeYScales(doms []YDomain, rg Range) map[string]Scaler {
	scales := make(map[string]Scaler, len(doms))
	for _, d := range doms {
		scales[d.GroupID] = ContinuousScaler(d.Type, d.Min, d.Max, rg, ContinuousOptions{})
	}
	return scales
}

func signedSqrt(x float64) float64 {
	if x < 0 {
		return -math.Sqrt(-x)
	}
	return math.Sqrt(x)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Location returns the time zone in which the values of a time scale are
// shown. Unknown zones and other scales give UTC.
func Location(s Scaler) *time.Location {
	z, ok := s.(interface{ Timezone() string })
	if !ok {
		return time.UTC
	}
	loc, err := time.LoadLocation(z.Timezone())
	if err != nil {
		return time.UTC
	}
	return loc
}

// XValueFormatter formats the x values of xs. Values of a time scale are
// formatted with layout in the time zone of the scale.
func XValueFormatter(xs Scaler, layout string) ValueFormatter {
	if xs == nil || xs.Type() != ScaleTime {
		return FormatValue
	}
	loc := Location(xs)
	return func(v any) string {
		f, ok := v.(float64)
		if !ok {
			return FormatValue(v)
		}
		return time.UnixMilli(int64(f)).In(loc).Format(layout)
	}
}
