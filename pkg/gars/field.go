package gars

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/gars/internal/grid"
)

// Field enumerates the grid cells intersecting a region.
//
// The region may be any orb geometry, including multi-part geometries.
// A region crossing the antimeridian must be split by the caller into
// two parts (one ending at 180, one starting at -180); the field then
// returns the union of both sides without duplicates.
//
// Each resolution level is computed on first access and memoized for
// the lifetime of the field, so repeated calls return the identical
// slice. For a simple region, cells appear in band/letter/keypad
// iteration order; for a multi-part region the merged result is
// deduplicated and sorted by identifier, so the outcome does not depend
// on how the region happens to be partitioned.
type Field struct {
	geom orb.Geometry

	ged60 []*GEDGARSGrid
	ged30 []*GEDGARSGrid

	ed6 []*EDGARSGrid
	ed3 []*EDGARSGrid
	ed1 []*EDGARSGrid

	gars30 []*GARSGrid
	gars15 []*GARSGrid
	gars5  []*GARSGrid
	gars1  []*GARSGrid
}

// NewField creates a field over the given region.
func NewField(geom orb.Geometry) *Field {
	return &Field{geom: geom}
}

// Geometry returns the region the field enumerates over.
func (f *Field) Geometry() orb.Geometry {
	return f.geom
}

// mergeParts enumerates one level for every part of a composite region,
// then deduplicates by identifier and sorts. Re-partitioning a region
// into different parts therefore cannot change the result.
func mergeParts[T Grid](parts []orb.Geometry, level func(*Field) ([]T, error)) ([]T, error) {
	var all []T
	for _, part := range parts {
		cells, err := level(NewField(part))
		if err != nil {
			return nil, err
		}
		all = append(all, cells...)
	}

	seen := make(map[string]struct{}, len(all))
	out := make([]T, 0, len(all))
	for _, c := range all {
		if _, ok := seen[c.ID()]; ok {
			continue
		}
		seen[c.ID()] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

// Cells60Deg returns the 60-degree GED-GARS cells intersecting the
// region. With only 18 cells worldwide, every cell is tested.
func (f *Field) Cells60Deg() ([]*GEDGARSGrid, error) {
	if f.ged60 != nil {
		return f.ged60, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells60Deg)
		if err != nil {
			return nil, err
		}
		f.ged60 = merged
		return f.ged60, nil
	}

	out := make([]*GEDGARSGrid, 0)
	for band := 1; band <= 6; band++ {
		for i := 0; i < len(gedLetters); i++ {
			g, err := NewGEDGARSGrid(fmt.Sprintf("GD%d%c", band, gedLetters[i]))
			if err != nil {
				continue
			}
			if boundIntersects(f.geom, g.Bound()) {
				out = append(out, g)
			}
		}
	}
	f.ged60 = out
	return f.ged60, nil
}

// Cells30Deg returns the 30-degree GED-GARS cells intersecting the
// region.
func (f *Field) Cells30Deg() ([]*GEDGARSGrid, error) {
	if f.ged30 != nil {
		return f.ged30, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells30Deg)
		if err != nil {
			return nil, err
		}
		f.ged30 = merged
		return f.ged30, nil
	}

	parents, err := f.Cells60Deg()
	if err != nil {
		return nil, err
	}
	out := make([]*GEDGARSGrid, 0)
	for _, parent := range parents {
		for quad := 1; quad <= 4; quad++ {
			g, err := NewGEDGARSGrid(fmt.Sprintf("%s%d", parent.ID(), quad))
			if err != nil {
				continue
			}
			if boundIntersects(f.geom, g.Bound()) {
				out = append(out, g)
			}
		}
	}
	f.ged30 = out
	return f.ged30, nil
}

// edBandRanges computes the covering 6-degree band ranges from the
// region's extreme corners.
func (f *Field) edBandRanges() (lonLo, lonHi int, letters []string, err error) {
	b := clampBounds(f.geom.Bound())

	ll, err := EDGARSFromLatLon(b.Min[1], b.Min[0], 6)
	if err != nil {
		return 0, 0, nil, err
	}
	ur, err := EDGARSFromLatLon(b.Max[1], b.Max[0], 6)
	if err != nil {
		return 0, 0, nil, err
	}

	return ll.lonBand, ur.lonBand,
		grid.LatLetterRange(edLetters, ll.latBand, ur.latBand), nil
}

// Cells6Deg returns the 6-degree ED-GARS cells intersecting the region.
func (f *Field) Cells6Deg() ([]*EDGARSGrid, error) {
	if f.ed6 != nil {
		return f.ed6, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells6Deg)
		if err != nil {
			return nil, err
		}
		f.ed6 = merged
		return f.ed6, nil
	}

	lonLo, lonHi, letters, err := f.edBandRanges()
	if err != nil {
		return nil, err
	}
	out := make([]*EDGARSGrid, 0)
	for band := lonLo; band <= lonHi; band++ {
		for _, pair := range letters {
			// letter pairs past the BK cap fail validation near the
			// north edge; skip them
			g, err := NewEDGARSGrid(fmt.Sprintf("D%02d%s", band, pair))
			if err != nil {
				continue
			}
			if boundIntersects(f.geom, g.Bound()) {
				out = append(out, g)
			}
		}
	}
	f.ed6 = out
	return f.ed6, nil
}

// Cells3Deg returns the 3-degree ED-GARS cells intersecting the region.
func (f *Field) Cells3Deg() ([]*EDGARSGrid, error) {
	if f.ed3 != nil {
		return f.ed3, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells3Deg)
		if err != nil {
			return nil, err
		}
		f.ed3 = merged
		return f.ed3, nil
	}

	parents, err := f.Cells6Deg()
	if err != nil {
		return nil, err
	}
	f.ed3 = refineED(f.geom, parents, 4)
	return f.ed3, nil
}

// Cells1Deg returns the 1-degree ED-GARS cells intersecting the region.
func (f *Field) Cells1Deg() ([]*EDGARSGrid, error) {
	if f.ed1 != nil {
		return f.ed1, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells1Deg)
		if err != nil {
			return nil, err
		}
		f.ed1 = merged
		return f.ed1, nil
	}

	parents, err := f.Cells3Deg()
	if err != nil {
		return nil, err
	}
	f.ed1 = refineED(f.geom, parents, 9)
	return f.ed1, nil
}

func refineED(geom orb.Geometry, parents []*EDGARSGrid, keys int) []*EDGARSGrid {
	out := make([]*EDGARSGrid, 0)
	for _, parent := range parents {
		for key := 1; key <= keys; key++ {
			g, err := NewEDGARSGrid(fmt.Sprintf("%s%d", parent.ID(), key))
			if err != nil {
				continue
			}
			if boundIntersects(geom, g.Bound()) {
				out = append(out, g)
			}
		}
	}
	return out
}

// garsBandRanges computes the covering 30-minute band ranges from the
// region's extreme corners.
func (f *Field) garsBandRanges() (lonLo, lonHi int, letters []string, err error) {
	b := clampBounds(f.geom.Bound())

	ll, err := GARSFromLatLon(b.Min[1], b.Min[0], 30)
	if err != nil {
		return 0, 0, nil, err
	}
	ur, err := GARSFromLatLon(b.Max[1], b.Max[0], 30)
	if err != nil {
		return 0, 0, nil, err
	}

	return ll.lonBand, ur.lonBand,
		grid.LatLetterRange(garsLetters, ll.latBand, ur.latBand), nil
}

// Cells30Min returns the 30-minute GARS cells intersecting the region.
func (f *Field) Cells30Min() ([]*GARSGrid, error) {
	if f.gars30 != nil {
		return f.gars30, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells30Min)
		if err != nil {
			return nil, err
		}
		f.gars30 = merged
		return f.gars30, nil
	}

	lonLo, lonHi, letters, err := f.garsBandRanges()
	if err != nil {
		return nil, err
	}
	out := make([]*GARSGrid, 0)
	for band := lonLo; band <= lonHi; band++ {
		for _, pair := range letters {
			g, err := NewGARSGrid(fmt.Sprintf("%03d%s", band, pair))
			if err != nil {
				continue
			}
			if boundIntersects(f.geom, g.Bound()) {
				out = append(out, g)
			}
		}
	}
	f.gars30 = out
	return f.gars30, nil
}

// Cells15Min returns the 15-minute GARS cells intersecting the region.
func (f *Field) Cells15Min() ([]*GARSGrid, error) {
	if f.gars15 != nil {
		return f.gars15, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells15Min)
		if err != nil {
			return nil, err
		}
		f.gars15 = merged
		return f.gars15, nil
	}

	parents, err := f.Cells30Min()
	if err != nil {
		return nil, err
	}
	f.gars15 = refineGARS(f.geom, parents, 4, "%s%d")
	return f.gars15, nil
}

// Cells5Min returns the 5-minute GARS cells intersecting the region.
func (f *Field) Cells5Min() ([]*GARSGrid, error) {
	if f.gars5 != nil {
		return f.gars5, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells5Min)
		if err != nil {
			return nil, err
		}
		f.gars5 = merged
		return f.gars5, nil
	}

	parents, err := f.Cells15Min()
	if err != nil {
		return nil, err
	}
	f.gars5 = refineGARS(f.geom, parents, 9, "%s%d")
	return f.gars5, nil
}

// Cells1Min returns the 1-minute GARS cells intersecting the region.
func (f *Field) Cells1Min() ([]*GARSGrid, error) {
	if f.gars1 != nil {
		return f.gars1, nil
	}

	if parts := geometryParts(f.geom); parts != nil {
		merged, err := mergeParts(parts, (*Field).Cells1Min)
		if err != nil {
			return nil, err
		}
		f.gars1 = merged
		return f.gars1, nil
	}

	parents, err := f.Cells5Min()
	if err != nil {
		return nil, err
	}
	f.gars1 = refineGARS(f.geom, parents, 25, "%s%02d")
	return f.gars1, nil
}

func refineGARS(geom orb.Geometry, parents []*GARSGrid, keys int, format string) []*GARSGrid {
	out := make([]*GARSGrid, 0)
	for _, parent := range parents {
		for key := 1; key <= keys; key++ {
			g, err := NewGARSGrid(fmt.Sprintf(format, parent.ID(), key))
			if err != nil {
				continue
			}
			if boundIntersects(geom, g.Bound()) {
				out = append(out, g)
			}
		}
	}
	return out
}
