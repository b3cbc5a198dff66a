package gars

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/gars/internal/grid"
)

// GEDGARSGrid is a cell of the giant-extended-degree GARS variant.
//
// The identifier starts with the literal prefix GD, followed by a
// 1-digit longitude band (1-6, 60 degrees wide, counted eastward from
// 180°W) and a single latitude letter (A, B or C, each spanning 60
// degrees from 90°S), optionally refined by a 30-degree quadrant digit
// (1-4). Example: GD6A3.
type GEDGARSGrid struct {
	id         string
	resolution int

	lonBand   int  // 1-6
	latLetter byte // A-C
	quad30    int  // 1-4, 0 when absent

	bound *orb.Bound
}

// NewGEDGARSGrid parses and validates a GED-GARS identifier at the
// resolution encoded in the identifier itself.
func NewGEDGARSGrid(id string) (*GEDGARSGrid, error) {
	grammar := &ErrInvalidGridID{Variant: "GED-GARS", ID: id}

	if len(id) < 4 || len(id) > 5 || id[0] != 'G' || id[1] != 'D' {
		return nil, grammar
	}
	if id[2] < '0' || id[2] > '9' {
		return nil, grammar
	}
	if strings.IndexByte(gedLetters, id[3]) < 0 {
		return nil, grammar
	}

	g := &GEDGARSGrid{id: id, resolution: 60, latLetter: id[3]}

	g.lonBand = int(id[2] - '0')
	if g.lonBand < 1 || g.lonBand > 6 {
		return nil, &ErrInvalidGridID{
			Variant: "GED-GARS", ID: id,
			Reason: "longitude numbers can only be between 1-6",
		}
	}

	if len(id) == 5 {
		if id[4] < '1' || id[4] > '4' {
			return nil, grammar
		}
		g.quad30 = int(id[4] - '0')
		g.resolution = 30
	}

	return g, nil
}

// NewGEDGARSGridAt parses a GED-GARS identifier truncated to
// maxResolution (30 or 60 degrees).
func NewGEDGARSGridAt(id string, maxResolution int) (*GEDGARSGrid, error) {
	if err := validateResolution(maxResolution, gedResolutions); err != nil {
		return nil, err
	}
	if maxResolution == 60 && len(id) > 4 {
		id = id[:4]
	}
	return NewGEDGARSGrid(id)
}

// GEDGARSFromLatLon returns the GED-GARS cell containing the given
// WGS-84 coordinate at the given resolution in degrees (30 or 60).
func GEDGARSFromLatLon(lat, lon float64, resolution int) (*GEDGARSGrid, error) {
	if err := validateResolution(resolution, gedResolutions); err != nil {
		return nil, err
	}
	nlat, nlon := grid.NormalizeLatLon(lat, lon)

	lonIdx := int(math.Floor(nlon / 60.0))
	latIdx := int(math.Floor(nlat / 60.0))

	var sb strings.Builder
	fmt.Fprintf(&sb, "GD%d", lonIdx+1)
	sb.WriteByte(gedLetters[latIdx])

	if resolution < 60 {
		lon30 := int(math.Mod(nlon, 60)/30.0) + 1
		lat30 := 2 - int(math.Mod(nlat, 60)/30.0)
		sb.WriteByte(byte('0' + (lat30-1)*2 + lon30))
	}

	return NewGEDGARSGridAt(sb.String(), resolution)
}

// ID returns the canonical identifier.
func (g *GEDGARSGrid) ID() string { return g.id }

func (g *GEDGARSGrid) String() string { return g.id }

// Resolution returns the cell size in degrees.
func (g *GEDGARSGrid) Resolution() int { return g.resolution }

// Bound returns the cell's bounding rectangle, computed on first access.
func (g *GEDGARSGrid) Bound() orb.Bound {
	if g.bound != nil {
		return *g.bound
	}

	lon := float64(g.lonBand-1)*60.0 - 180
	lat := -90.0 + float64(strings.IndexByte(gedLetters, g.latLetter))*60.0

	if g.quad30 != 0 {
		a, b := grid.QuadrantDelta(g.quad30, 2, 30)
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
func (g *GEDGARSGrid) Polygon() orb.Polygon {
	return g.Bound().ToPolygon()
}

// UTMEpsg always returns the empty string: even a 30-degree cell spans
// several UTM zones, so a single zone code is not applicable.
func (g *GEDGARSGrid) UTMEpsg() string {
	return ""
}
