package xychart

// FormatNonStacked gives each datum of series the same shape as the output
// of Stack without accumulating values across series.
func FormatNonStacked(series []RawSeries, scaleToExtent bool) []DataSeries {
	list := make([]DataSeries, 0, len(series))
	for _, s := range series {
		ds := DataSeries{
			SpecID:   s.SpecID,
			Key:      s.Key,
			ColorKey: s.ColorKey,
			Data:     make([]SeriesDatum, 0, len(s.Data)),
		}
		for _, d := range s.Data {
			ds.Data = append(ds.Data, formatDatum(d, scaleToExtent))
		}
		list = append(list, ds)
	}
	return list
}

func formatDatum(d RawSeriesDatum, scaleToExtent bool) SeriesDatum {
	res := SeriesDatum{
		X:     d.X,
		Datum: d.Datum,
	}
	if !d.Y1.Valid {
		return res
	}
	res.Y1 = d.Y1
	res.InitialY1 = d.Y1
	res.InitialY0 = d.Y0
	switch {
	case d.Y0.Valid:
		res.Y0 = d.Y0
	case scaleToExtent:
		res.Y0 = d.Y1
	default:
		res.Y0 = Float(0)
	}
	return res
}

type SpecGroup struct {
	GroupID       string
	Stacked       []SeriesSpec
	NonStacked    []SeriesSpec
	Percentage    bool
	ScaleToExtent bool
}

func (g SpecGroup) Specs() []SeriesSpec {
	var list []SeriesSpec
	list = append(list, g.Stacked...)
	return append(list, g.NonStacked...)
}

// SplitSpecsByGroupID groups specs by GroupID, in order of first
// appearance.
func SplitSpecsByGroupID(specs []SeriesSpec) []SpecGroup {
	var (
		groups []SpecGroup
		index  = make(map[string]int)
	)
	for _, s := range specs {
		x, ok := index[s.GroupID]
		if !ok {
			x = len(groups)
			index[s.GroupID] = x
			groups = append(groups, SpecGroup{GroupID: s.GroupID})
		}
		g := &groups[x]
		if s.IsStacked() {
			g.Stacked = append(g.Stacked, s)
			g.Percentage = g.Percentage || s.StackAsPercentage
		} else {
			g.NonStacked = append(g.NonStacked, s)
		}
		g.ScaleToExtent = g.ScaleToExtent || s.YScaleToDataExtent
	}
	return groups
}

type FormattedGroup struct {
	GroupID string
	Series  []DataSeries
	Counts  map[SeriesType]int
}

type FormattedSeries struct {
	Stacked    []FormattedGroup
	NonStacked []FormattedGroup
}

// All returns every formatted series, stacked ones first.
func (f FormattedSeries) All() []DataSeries {
	var list []DataSeries
	for _, g := range f.Stacked {
		list = append(list, g.Series...)
	}
	for _, g := range f.NonStacked {
		list = append(list, g.Series...)
	}
	return list
}

// FormatSeries stacks or formats the split series of each group.
func FormatSeries(specs []SeriesSpec, series map[string][]RawSeries, policy ContributionPolicy) FormattedSeries {
	var res FormattedSeries
	for _, g := range SplitSpecsByGroupID(specs) {
		if len(g.Stacked) > 0 {
			raw, counts := collectSeries(g.Stacked, series)
			opts := StackOptions{
				ScaleToExtent:      g.ScaleToExtent,
				Percentage:         g.Percentage,
				ContributionPolicy: policy,
			}
			res.Stacked = append(res.Stacked, FormattedGroup{
				GroupID: g.GroupID,
				Series:  Stack(raw, opts),
				Counts:  counts,
			})
		}
		if len(g.NonStacked) > 0 {
			raw, counts := collectSeries(g.NonStacked, series)
			res.NonStacked = append(res.NonStacked, FormattedGroup{
				GroupID: g.GroupID,
				Series:  FormatNonStacked(raw, g.ScaleToExtent),
				Counts:  counts,
			})
		}
	}
	return res
}

func collectSeries(specs []SeriesSpec, series map[string][]RawSeries) ([]RawSeries, map[SeriesType]int) {
	var (
		list   []RawSeries
		counts = make(map[SeriesType]int)
	)
	for _, s := range specs {
		raw := series[s.ID]
		list = append(list, raw...)
		counts[s.Type] += len(raw)
	}
	return list, counts
}
