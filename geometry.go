package xychart

import (
	"slices"
)

type Accessor string

const (
	AccessorY1 Accessor = "y1"
	AccessorY0 Accessor = "y0"
)

// GeometryID identifies the series a geometry belongs to.
type GeometryID struct {
	SpecID    string
	SeriesKey []any
}

func (g GeometryID) Equal(other GeometryID) bool {
	return g.SpecID == other.SpecID && IsEqualSeriesKey(g.SeriesKey, other.SeriesKey)
}

// GeometryValue is the value, before stacking, that a geometry shows.
type GeometryValue struct {
	X        any
	Y        NullFloat
	Accessor Accessor
}

type Transform struct {
	X      float64
	Y      float64
	Rotate float64
}

type PointGeometry struct {
	X         float64
	Y         float64
	Radius    float64
	Color     string
	Transform Transform
	Value     GeometryValue
	GeometryID
}

type BarGeometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Color  string
	Value  GeometryValue
	GeometryID
}

type LineGeometry struct {
	Line      string
	Points    []PointGeometry
	Color     string
	Transform Transform
	GeometryID
}

type AreaGeometry struct {
	Area      string
	Lines     []string
	Points    []PointGeometry
	Color     string
	Transform Transform
	GeometryID
}

// IndexedGeometry is a geometry that can be found by its x value: a point
// or a bar.
type IndexedGeometry interface {
	Identity() GeometryID
	Datum() GeometryValue
	isIndexed()
}

func (p PointGeometry) Identity() GeometryID {
	return p.GeometryID
}

func (p PointGeometry) Datum() GeometryValue {
	return p.Value
}

func (PointGeometry) isIndexed() {}

func (b BarGeometry) Identity() GeometryID {
	return b.GeometryID
}

func (b BarGeometry) Datum() GeometryValue {
	return b.Value
}

func (BarGeometry) isIndexed() {}

// IsPointOnGeometry reports whether (px, py) falls on g. Points are moved
// by their transform, bars are not.
func IsPointOnGeometry(px, py float64, g IndexedGeometry) bool {
	switch g := g.(type) {
	case PointGeometry:
		x := g.X + g.Transform.X
		return py >= g.Y-g.Radius && py <= g.Y+g.Radius &&
			px >= x-g.Radius && px <= x+g.Radius
	case BarGeometry:
		return py >= g.Y && py <= g.Y+g.Height &&
			px >= g.X && px <= g.X+g.Width
	default:
		return false
	}
}

// IndexedGeometries maps x values to the geometries drawn for them. Keys
// keep their order of first insertion.
type IndexedGeometries struct {
	keys  []any
	geoms map[any][]IndexedGeometry
}

func (ix IndexedGeometries) Len() int {
	return len(ix.keys)
}

func (ix IndexedGeometries) Keys() []any {
	return slices.Clone(ix.keys)
}

func (ix IndexedGeometries) Find(x any) []IndexedGeometry {
	return slices.Clone(ix.geoms[x])
}

func (ix IndexedGeometries) Has(x any) bool {
	_, ok := ix.geoms[x]
	return ok
}

func (ix IndexedGeometries) Each(fn func(any, []IndexedGeometry)) {
	for _, k := range ix.keys {
		fn(k, slices.Clone(ix.geoms[k]))
	}
}

// IndexBuilder collects geometries by x value during one rendering pass.
// Build hands the collected index over and leaves the builder empty.
type IndexBuilder struct {
	keys  []any
	geoms map[any][]IndexedGeometry
}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{
		geoms: make(map[any][]IndexedGeometry),
	}
}

// Add puts geoms in front of the geometries already known for x.
func (b *IndexBuilder) Add(x any, geoms ...IndexedGeometry) {
	if b.geoms == nil {
		b.geoms = make(map[any][]IndexedGeometry)
	}
	existing, ok := b.geoms[x]
	if !ok {
		b.keys = append(b.keys, x)
	}
	list := make([]IndexedGeometry, 0, len(geoms)+len(existing))
	list = append(list, geoms...)
	b.geoms[x] = append(list, existing...)
}

// Merge appends the geometries of ix after the ones already known.
func (b *IndexBuilder) Merge(ix IndexedGeometries) {
	if b.geoms == nil {
		b.geoms = make(map[any][]IndexedGeometry)
	}
	for _, k := range ix.keys {
		existing, ok := b.geoms[k]
		if !ok {
			b.keys = append(b.keys, k)
		}
		b.geoms[k] = append(slices.Clip(existing), ix.geoms[k]...)
	}
}

func (b *IndexBuilder) Build() IndexedGeometries {
	ix := IndexedGeometries{
		keys:  b.keys,
		geoms: b.geoms,
	}
	if ix.geoms == nil {
		ix.geoms = make(map[any][]IndexedGeometry)
	}
	b.keys = nil
	b.geoms = nil
	return ix
}

// MergeGeometriesIndexes unions indexes. Geometries sharing an x value are
// concatenated in argument order.
func MergeGeometriesIndexes(list ...IndexedGeometries) IndexedGeometries {
	b := NewIndexBuilder()
	for _, ix := range list {
		b.Merge(ix)
	}
	return b.Build()
}
