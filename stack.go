package xychart

import (
	"fmt"
)

// Contribution tells how a series without a value at some x takes part in
// the stack of the series above it.
type Contribution int

const (
	// ContributeZero counts the series as zero in the running total.
	ContributeZero Contribution = iota
	// ContributeGap leaves every series above it without value at that x.
	ContributeGap
)

func (c *Contribution) UnmarshalText(b []byte) error {
	switch str := string(b); str {
	case "", "zero":
		*c = ContributeZero
	case "gap":
		*c = ContributeGap
	default:
		return fmt.Errorf("%s: unknown contribution", str)
	}
	return nil
}

// ContributionPolicy tells how missing values take part in a stack. Absent
// applies when a series has no datum at an x value, Null when its datum has
// a null y1.
type ContributionPolicy struct {
	Absent Contribution
	Null   Contribution
}

type StackOptions struct {
	ScaleToExtent bool
	Percentage    bool
	ContributionPolicy
}

// stackEntry holds the stack at one x value. values[i] is the sum of the
// series below series i. gap is the index of the lowest series breaking the
// stack, or the number of series when none does.
type stackEntry struct {
	raw     []float64
	values  []float64
	percent []float64
	total   float64
	gap     int
}

// Stack accumulates the y values of series sharing the same x values. The
// order of series is the stacking order, from bottom to top.
func Stack(series []RawSeries, opts StackOptions) []DataSeries {
	stacks := buildStackMap(series, opts)
	list := make([]DataSeries, 0, len(series))
	for i, s := range series {
		ds := DataSeries{
			SpecID:   s.SpecID,
			Key:      s.Key,
			ColorKey: s.ColorKey,
			Data:     make([]SeriesDatum, 0, len(s.Data)),
		}
		for _, d := range s.Data {
			st := stacks[d.X]
			ds.Data = append(ds.Data, stackDatum(i, d, st, opts))
		}
		list = append(list, ds)
	}
	return list
}

func stackDatum(index int, d RawSeriesDatum, st *stackEntry, opts StackOptions) SeriesDatum {
	res := SeriesDatum{
		X:     d.X,
		Datum: d.Datum,
	}
	if !d.Y1.Valid || st.gap < index {
		return res
	}
	res.InitialY1 = d.Y1
	res.InitialY0 = d.Y0
	ratio := func(v float64) float64 {
		if !opts.Percentage {
			return v
		}
		if st.total == 0 {
			return 0
		}
		return v / st.total
	}
	if index == 0 {
		y0 := d.Y0
		if !y0.Valid {
			y0 = Float(0)
			if opts.ScaleToExtent {
				y0 = d.Y1
			}
		}
		res.Y1 = Float(ratio(d.Y1.Float64))
		res.Y0 = Float(ratio(y0.Float64))
		return res
	}
	base := st.values[index]
	if opts.Percentage {
		base = st.percent[index]
	}
	res.Y1 = Float(base + ratio(d.Y1.Float64))
	res.Y0 = Float(base)
	if d.Y0.Valid {
		res.Y0 = Float(base + ratio(d.Y0.Float64))
	}
	return res
}

func buildStackMap(series []RawSeries, opts StackOptions) map[any]*stackEntry {
	var (
		stacks  = make(map[any]*stackEntry)
		present = make(map[any][]bool)
		n       = len(series)
	)
	for i, s := range series {
		for _, d := range s.Data {
			st, ok := stacks[d.X]
			if !ok {
				st = &stackEntry{
					raw: make([]float64, n),
					gap: n,
				}
				stacks[d.X] = st
				present[d.X] = make([]bool, n)
			}
			present[d.X][i] = true
			if !d.Y1.Valid {
				if opts.Null == ContributeGap && i < st.gap {
					st.gap = i
				}
				continue
			}
			st.raw[i] = d.Y1.Float64
		}
	}
	for x, st := range stacks {
		if opts.Absent == ContributeGap {
			for i, ok := range present[x] {
				if !ok && i < st.gap {
					st.gap = i
					break
				}
			}
		}
		st.values = make([]float64, n+1)
		for i, v := range st.raw {
			st.values[i+1] = st.values[i] + v
			st.total += v
		}
		if opts.Percentage {
			st.percent = make([]float64, n+1)
			for i, v := range st.values {
				if st.total != 0 {
					st.percent[i] = v / st.total
				}
			}
		}
	}
	return stacks
}
