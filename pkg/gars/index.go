package gars

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// CellIndex provides fast spatial lookup over a set of grid cells.
//
// Cell sets produced by a Field can be large at fine resolutions; the
// index answers point and viewport queries in O(log n) instead of a
// linear scan over every cell.
//
// Example:
//
//	cells, _ := field.Cells5Min()
//	idx := NewCellIndex(cells)
//	hits := idx.At(-71.06, 42.36)
type CellIndex struct {
	rtree *rtreego.Rtree
}

// indexedCell wraps a cell for R-tree storage.
type indexedCell struct {
	cell  Grid
	bound orb.Bound
}

// Bounds implements the rtreego.Spatial interface.
func (c *indexedCell) Bounds() rtreego.Rect {
	rect, _ := rtreego.NewRect(
		rtreego.Point{c.bound.Min[0], c.bound.Min[1]},
		rectLengths(c.bound))
	return rect
}

// rectEpsilon pads degenerate query rectangles; the R-tree rejects
// zero-size dimensions.
const rectEpsilon = 1e-9

// rectLengths returns the side lengths of a bound, padded to the
// epsilon minimum.
func rectLengths(b orb.Bound) []float64 {
	lonLength := b.Max[0] - b.Min[0]
	latLength := b.Max[1] - b.Min[1]
	if lonLength < rectEpsilon {
		lonLength = rectEpsilon
	}
	if latLength < rectEpsilon {
		latLength = rectEpsilon
	}
	return []float64{lonLength, latLength}
}

// NewCellIndex builds an index over the given cells.
func NewCellIndex[T Grid](cells []T) *CellIndex {
	rtree := rtreego.NewTree(2, 25, 50)
	for _, c := range cells {
		rtree.Insert(&indexedCell{cell: c, bound: c.Bound()})
	}
	return &CellIndex{rtree: rtree}
}

// Search returns the cells whose bounding box intersects b, sorted by
// identifier.
func (idx *CellIndex) Search(b orb.Bound) []Grid {
	rect, _ := rtreego.NewRect(
		rtreego.Point{b.Min[0], b.Min[1]},
		rectLengths(b))

	matches := idx.rtree.SearchIntersect(rect)
	out := make([]Grid, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.(*indexedCell).cell)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// At returns the cells containing the point (lon, lat), sorted by
// identifier.
func (idx *CellIndex) At(lon, lat float64) []Grid {
	point := orb.Point{lon, lat}

	// pad the query on every side: cells whose east or north edge
	// passes through the point contain it but would not overlap a
	// rectangle growing only east and north
	hits := idx.Search(orb.Bound{
		Min: orb.Point{lon - rectEpsilon, lat - rectEpsilon},
		Max: orb.Point{lon + rectEpsilon, lat + rectEpsilon},
	})

	// drop neighbors that only met the pad
	out := hits[:0]
	for _, c := range hits {
		if c.Bound().Contains(point) {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of cells in the index.
func (idx *CellIndex) Count() int {
	return idx.rtree.Size()
}
