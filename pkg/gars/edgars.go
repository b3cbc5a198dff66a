package gars

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/gars/internal/grid"
)

// EDGARSGrid is a cell of the extended-degree GARS variant.
//
// The identifier starts with the literal prefix D, followed by a
// 2-digit longitude band (01-60, 6 degrees wide, counted eastward from
// 180°W) and a 2-letter latitude band (AA-BK, 6 degrees tall, counted
// northward from 90°S over a 20-letter alphabet), optionally refined by
// a 3-degree quadrant digit and a 1-degree keypad digit.
// Example: D06AG39.
type EDGARSGrid struct {
	id         string
	resolution int

	lonBand int    // 1-60
	latBand string // two letters from edLetters, capped at BK
	quad3   int    // 1-9 per the original grammar, 0 when absent
	key1    int    // 1-9, 0 when absent

	bound *orb.Bound
	epsg  *string
}

// NewEDGARSGrid parses and validates an ED-GARS identifier at the
// resolution encoded in the identifier itself.
func NewEDGARSGrid(id string) (*EDGARSGrid, error) {
	grammar := &ErrInvalidGridID{Variant: "ED-GARS", ID: id}

	if len(id) < 5 || len(id) > 7 || id[0] != 'D' {
		return nil, grammar
	}
	if !grid.AllDigits(id[1:3]) {
		return nil, grammar
	}
	if id[3] != 'A' && id[3] != 'B' {
		return nil, grammar
	}
	if strings.IndexByte(edLetters, id[4]) < 0 {
		return nil, grammar
	}

	g := &EDGARSGrid{id: id, resolution: 6, latBand: id[3:5]}

	g.lonBand, _ = strconv.Atoi(id[1:3])
	if g.lonBand < 1 || g.lonBand > 60 {
		return nil, &ErrInvalidGridID{
			Variant: "ED-GARS", ID: id,
			Reason: "longitude numbers can only be between 01-60",
		}
	}
	if id[3] == 'B' && id[4] > 'K' {
		return nil, &ErrInvalidGridID{
			Variant: "ED-GARS", ID: id,
			Reason: "latitude letters cannot exceed BK",
		}
	}

	if len(id) >= 6 {
		// the original grammar accepts 1-9 here even though only 1-4
		// name a quadrant; 5-9 carry no offset
		if id[5] < '1' || id[5] > '9' {
			return nil, grammar
		}
		g.quad3 = int(id[5] - '0')
		g.resolution = 3
	}
	if len(id) == 7 {
		if id[6] < '1' || id[6] > '9' {
			return nil, grammar
		}
		g.key1 = int(id[6] - '0')
		g.resolution = 1
	}

	return g, nil
}

// NewEDGARSGridAt parses an ED-GARS identifier truncated to
// maxResolution (1, 3 or 6 degrees).
func NewEDGARSGridAt(id string, maxResolution int) (*EDGARSGrid, error) {
	if err := validateResolution(maxResolution, edResolutions); err != nil {
		return nil, err
	}
	switch {
	case maxResolution == 6 && len(id) > 5:
		id = id[:5]
	case maxResolution == 3 && len(id) > 6:
		id = id[:6]
	}
	return NewEDGARSGrid(id)
}

// EDGARSFromLatLon returns the ED-GARS cell containing the given WGS-84
// coordinate at the given resolution in degrees (1, 3 or 6).
func EDGARSFromLatLon(lat, lon float64, resolution int) (*EDGARSGrid, error) {
	if err := validateResolution(resolution, edResolutions); err != nil {
		return nil, err
	}
	nlat, nlon := grid.NormalizeLatLon(lat, lon)

	lonIdx := nlon / 6.0
	latIdx := nlat / 6.0

	var sb strings.Builder
	fmt.Fprintf(&sb, "D%02d", int(lonIdx+1))
	sb.WriteByte(edLetters[int(latIdx/20)])
	sb.WriteByte(edLetters[int(math.Mod(latIdx, 20))])

	if resolution < 6 {
		lon3 := int(math.Mod(nlon, 6)/3.0) + 1
		lat3 := 2 - int(math.Mod(nlat, 6)/3.0)
		sb.WriteByte(byte('0' + (lat3-1)*2 + lon3))

		if resolution < 3 {
			lon1 := int(math.Mod(nlon, 3)) + 1
			lat1 := 3 - int(math.Mod(nlat, 3))
			sb.WriteByte(byte('0' + (lat1-1)*3 + lon1))
		}
	}

	return NewEDGARSGridAt(sb.String(), resolution)
}

// ID returns the canonical identifier.
func (g *EDGARSGrid) ID() string { return g.id }

func (g *EDGARSGrid) String() string { return g.id }

// Resolution returns the cell size in degrees.
func (g *EDGARSGrid) Resolution() int { return g.resolution }

// Bound returns the cell's bounding rectangle, computed on first access.
func (g *EDGARSGrid) Bound() orb.Bound {
	if g.bound != nil {
		return *g.bound
	}

	lon := float64(g.lonBand-1)*6.0 - 180
	lat := -90.0 + float64(strings.IndexByte(edLetters, g.latBand[0]))*120.0 +
		float64(strings.IndexByte(edLetters, g.latBand[1]))*6.0

	if g.quad3 >= 1 && g.quad3 <= 4 {
		a, b := grid.QuadrantDelta(g.quad3, 2, 3)
		lon, lat = lon+a, lat+b
	}
	if g.key1 != 0 {
		a, b := grid.QuadrantDelta(g.key1, 3, 1)
		lon, lat = lon+a, lat+b
	}

	side := float64(g.resolution)
	b := orb.Bound{
		Min: orb.Point{lon, lat},
		Max: orb.Point{lon + side, lat + side},
	}
	g.bound = &b
	return b
}

// Polygon returns the bounding rectangle as a closed ring.
func (g *EDGARSGrid) Polygon() orb.Polygon {
	return g.Bound().ToPolygon()
}

// UTMEpsg returns the EPSG code of the UTM zone covering the cell's
// centroid, or the UPS code near the poles. Memoized on first access.
func (g *EDGARSGrid) UTMEpsg() string {
	if g.epsg != nil {
		return *g.epsg
	}
	code := utmEpsgForCell(g.Polygon())
	g.epsg = &code
	return code
}
