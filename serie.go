package xychart

import (
	"fmt"
	"slices"

	"github.com/aclements/go-gg/generic/slice"
)

const seriesKeySeparator = "___"

type Accessors struct {
	X           string
	Y           []string
	Y0          []string
	SplitSeries []string
	Color       []string
}

type RawSeriesDatum struct {
	X     any
	Y1    NullFloat
	Y0    NullFloat
	Datum Datum
}

type RawSeries struct {
	SpecID   string
	Key      []any
	ColorKey string
	Data     []RawSeriesDatum
}

type SeriesDatum struct {
	X         any
	Y1        NullFloat
	Y0        NullFloat
	InitialY1 NullFloat
	InitialY0 NullFloat
	Datum     Datum
}

type DataSeries struct {
	SpecID   string
	Key      []any
	ColorKey string
	Data     []SeriesDatum
}

type LastValue struct {
	Y0 NullFloat
	Y1 NullFloat
}

type ColorValues struct {
	Key    string
	Values []any
}

type SplitResult struct {
	RawDataSeries []RawSeries
	ColorsValues  []ColorValues
	XValues       []any
	LastValues    map[string]LastValue
}

// Split partitions the rows of data into series. Rows sharing the same
// values for the split accessors end up in the same series, in row order.
func Split(data []Datum, acc Accessors, specID string) (SplitResult, error) {
	if len(acc.Y) == 0 {
		return SplitResult{}, ValidationError{
			SpecID: specID,
			Row:    -1,
			Reason: "no y accessor configured",
		}
	}
	sp := splitter{
		specID: specID,
		series: make(map[string]int),
		colors: make(map[string]int),
		res: SplitResult{
			LastValues: make(map[string]LastValue),
		},
	}
	var xs []any
	for i, row := range data {
		x, err := sp.xValue(i, row, acc.X)
		if err != nil {
			return SplitResult{}, err
		}
		xs = append(xs, x)

		var (
			key    = accessorValues(row, acc.SplitSeries)
			colors = key
		)
		if len(acc.Color) > 0 {
			colors = accessorValues(row, acc.Color)
		}
		for j, name := range acc.Y {
			y1, err := sp.yValue(i, row, name)
			if err != nil {
				return SplitResult{}, err
			}
			var y0 NullFloat
			if j < len(acc.Y0) {
				if y0, err = sp.yValue(i, row, acc.Y0[j]); err != nil {
					return SplitResult{}, err
				}
			}
			var (
				sk = key
				ck = colors
			)
			if len(acc.Y) > 1 {
				sk = append(slices.Clone(key), name)
				if len(acc.Color) == 0 {
					ck = append(slices.Clone(colors), name)
				}
			}
			datum := RawSeriesDatum{
				X:     x,
				Y1:    y1,
				Y0:    y0,
				Datum: row,
			}
			sp.add(sk, ck, datum)
		}
	}
	sp.res.XValues = slice.Nub(xs).([]any)
	return sp.res, nil
}

type splitter struct {
	specID string
	series map[string]int
	colors map[string]int
	res    SplitResult
}

func (s *splitter) add(key, colors []any, datum RawSeriesDatum) {
	ck := ColorValuesKey(s.specID, colors)
	if _, ok := s.colors[ck]; !ok {
		s.colors[ck] = len(s.res.ColorsValues)
		s.res.ColorsValues = append(s.res.ColorsValues, ColorValues{
			Key:    ck,
			Values: colors,
		})
	}
	s.res.LastValues[ck] = LastValue{
		Y0: datum.Y0,
		Y1: datum.Y1,
	}

	id := joinValues(key, seriesKeySeparator)
	x, ok := s.series[id]
	if !ok {
		x = len(s.res.RawDataSeries)
		s.series[id] = x
		s.res.RawDataSeries = append(s.res.RawDataSeries, RawSeries{
			SpecID:   s.specID,
			Key:      key,
			ColorKey: ck,
		})
	}
	s.res.RawDataSeries[x].Data = append(s.res.RawDataSeries[x].Data, datum)
}

func (s *splitter) xValue(row int, d Datum, name string) (any, error) {
	v, ok := d[name]
	if !ok {
		return nil, ValidationError{
			SpecID:   s.specID,
			Row:      row,
			Accessor: name,
			Reason:   "missing x value",
		}
	}
	x, ok := toXValue(v)
	if !ok {
		return nil, ValidationError{
			SpecID:   s.specID,
			Row:      row,
			Accessor: name,
			Value:    v,
			Reason:   "x value should be a number, a string or a time",
		}
	}
	return x, nil
}

func (s *splitter) yValue(row int, d Datum, name string) (NullFloat, error) {
	v, ok := d[name]
	if !ok {
		return Null, nil
	}
	y, ok := toNumber(v)
	if !ok {
		return Null, ValidationError{
			SpecID:   s.specID,
			Row:      row,
			Accessor: name,
			Value:    v,
			Reason:   "y value should be a number",
		}
	}
	return y, nil
}

// accessorValues returns the values of the given accessors, skipping the
// undefined ones.
func accessorValues(d Datum, names []string) []any {
	var list []any
	for _, n := range names {
		v, ok := d[n]
		if !ok {
			continue
		}
		list = append(list, v)
	}
	return list
}

// ColorValuesKey builds the key identifying a tuple of color values within
// a spec.
func ColorValuesKey(specID string, values []any) string {
	return fmt.Sprintf("specId:{%s},colors:{%s}", specID, joinValues(values, ","))
}

type SeriesIdentifier struct {
	SpecID      string
	ColorValues []any
}

type SeriesColors struct {
	Key         string
	SpecID      string
	Banded      bool
	ColorValues []any
	LastValue   LastValue
	SeriesIndex int
}

type SplittedSeries struct {
	Series  map[string][]RawSeries
	Colors  []SeriesColors
	XValues []any
}

// SplitSeries splits the data of every spec, leaving out the series listed
// in deselected.
func SplitSeries(specs []SeriesSpec, deselected []SeriesIdentifier) (SplittedSeries, error) {
	var (
		res = SplittedSeries{
			Series: make(map[string][]RawSeries),
		}
		xs []any
	)
	for _, spec := range specs {
		split, err := Split(spec.Data, spec.Accessors(), spec.ID)
		if err != nil {
			return res, err
		}
		var list []RawSeries
		for _, s := range split.RawDataSeries {
			id := SeriesIdentifier{
				SpecID:      spec.ID,
				ColorValues: s.Key,
			}
			if FindDataSeriesByColorValues(deselected, id) >= 0 {
				continue
			}
			list = append(list, s)
		}
		res.Series[spec.ID] = list
		for _, cv := range split.ColorsValues {
			res.Colors = append(res.Colors, SeriesColors{
				Key:         cv.Key,
				SpecID:      spec.ID,
				Banded:      spec.HasY0(),
				ColorValues: cv.Values,
				LastValue:   split.LastValues[cv.Key],
				SeriesIndex: len(res.Colors),
			})
		}
		xs = append(xs, split.XValues...)
	}
	res.XValues = slice.Nub(xs).([]any)
	return res, nil
}
