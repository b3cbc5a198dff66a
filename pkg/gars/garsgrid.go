package gars

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/gars/internal/grid"
)

// GARSGrid is a cell of the standard Global Area Reference System.
//
// The identifier is a 3-digit longitude band (001-720, 30 minutes wide,
// counted eastward from 180°W) and a 2-letter latitude band (AA-QZ,
// 30 minutes tall, counted northward from 90°S), optionally refined by
// a 15-minute quadrant digit (1-4), a 5-minute keypad digit (1-9), and
// a 1-minute keypad index (01-25). Example: 006AG39.
type GARSGrid struct {
	id         string
	resolution int

	lonBand   int    // 1-720
	latBand   string // two letters from garsLetters
	quad15    int    // 1-4, 0 when absent
	key5      int    // 1-9, 0 when absent
	key1      int    // 1-25, 0 when absent

	bound *orb.Bound
	epsg  *string
}

// NewGARSGrid parses and validates a GARS identifier at the resolution
// encoded in the identifier itself.
func NewGARSGrid(id string) (*GARSGrid, error) {
	grammar := &ErrInvalidGridID{Variant: "GARS", ID: id}

	if len(id) < 5 || len(id) == 8 || len(id) > 9 {
		return nil, grammar
	}
	if !grid.AllDigits(id[:3]) {
		return nil, grammar
	}
	letter1 := strings.IndexByte(garsLetters, id[3])
	letter2 := strings.IndexByte(garsLetters, id[4])
	if letter1 < 0 || letter1 > 14 || letter2 < 0 {
		// first letter tops out at Q: 24 half-degree bands per letter
		// reach 90°N at QZ
		return nil, grammar
	}

	g := &GARSGrid{id: id, resolution: 30, latBand: id[3:5]}

	g.lonBand, _ = strconv.Atoi(id[:3])
	if g.lonBand < 1 || g.lonBand > 720 {
		return nil, &ErrInvalidGridID{
			Variant: "GARS", ID: id,
			Reason: "longitude numbers can only be between 001-720",
		}
	}

	if len(id) >= 6 {
		if id[5] < '1' || id[5] > '4' {
			return nil, grammar
		}
		g.quad15 = int(id[5] - '0')
		g.resolution = 15
	}
	if len(id) >= 7 {
		if id[6] < '1' || id[6] > '9' {
			return nil, grammar
		}
		g.key5 = int(id[6] - '0')
		g.resolution = 5
	}
	if len(id) == 9 {
		if !grid.AllDigits(id[7:9]) {
			return nil, grammar
		}
		g.key1 = int(id[7]-'0')*10 + int(id[8]-'0')
		if g.key1 < 1 || g.key1 > 25 {
			return nil, &ErrInvalidGridID{
				Variant: "GARS", ID: id,
				Reason: "1 min quadrant number can only be between 01-25",
			}
		}
		g.resolution = 1
	}

	return g, nil
}

// NewGARSGridAt parses a GARS identifier truncated to maxResolution
// (1, 5, 15 or 30 minutes). The truncated identifier becomes the cell's
// canonical identifier, so a 1-minute identifier truncated to 30
// minutes yields the enclosing 30-minute cell.
func NewGARSGridAt(id string, maxResolution int) (*GARSGrid, error) {
	if err := validateResolution(maxResolution, garsResolutions); err != nil {
		return nil, err
	}
	switch {
	case maxResolution == 30 && len(id) > 5:
		id = id[:5]
	case maxResolution == 15 && len(id) > 6:
		id = id[:6]
	case maxResolution == 5 && len(id) > 7:
		id = id[:7]
	}
	return NewGARSGrid(id)
}

// GARSFromLatLon returns the GARS cell containing the given WGS-84
// coordinate at the given resolution in minutes (1, 5, 15 or 30).
func GARSFromLatLon(lat, lon float64, resolution int) (*GARSGrid, error) {
	if err := validateResolution(resolution, garsResolutions); err != nil {
		return nil, err
	}
	nlat, nlon := grid.NormalizeLatLon(lat, lon)

	lonIdx := nlon * 2
	latIdx := nlat * 2

	var sb strings.Builder
	fmt.Fprintf(&sb, "%03d", int(lonIdx+1))
	sb.WriteByte(garsLetters[int(latIdx/24)])
	sb.WriteByte(garsLetters[int(math.Mod(latIdx, 24))])

	if resolution < 30 {
		lon15, lon5, lon1 := minuteIndexes(nlon, false)
		lat15, lat5, lat1 := minuteIndexes(nlat, true)

		sb.WriteByte(byte('0' + (lat15-1)*2 + lon15))
		if resolution < 15 {
			sb.WriteByte(byte('0' + (lat5-1)*3 + lon5))
			if resolution < 5 {
				fmt.Fprintf(&sb, "%02d", (lat1-1)*5+lon1)
			}
		}
	}

	return NewGARSGridAt(sb.String(), resolution)
}

// minuteIndexes returns the 1-based 15-, 5- and 1-minute keypad column
// indexes for a normalized coordinate. Latitude keys count from the
// north, so the latitude axis inverts them.
func minuteIndexes(deg float64, inverse bool) (i15, i5, i1 int) {
	minutes := (deg - math.Floor(deg)) * 60
	i15 = int(math.Mod(minutes, 30)/15) + 1
	i5 = int(math.Mod(minutes, 15)/5) + 1
	i1 = int(math.Mod(minutes, 5)) + 1
	if inverse {
		i15, i5, i1 = 3-i15, 4-i5, 6-i1
	}
	return i15, i5, i1
}

// ID returns the canonical identifier.
func (g *GARSGrid) ID() string { return g.id }

func (g *GARSGrid) String() string { return g.id }

// Resolution returns the cell size in minutes.
func (g *GARSGrid) Resolution() int { return g.resolution }

// Bound returns the cell's bounding rectangle, computed on first access.
func (g *GARSGrid) Bound() orb.Bound {
	if g.bound != nil {
		return *g.bound
	}

	lon := float64(g.lonBand-1)/2.0 - 180
	lat := -90.0 + float64(strings.IndexByte(garsLetters, g.latBand[0]))*12.0 +
		float64(strings.IndexByte(garsLetters, g.latBand[1]))/2.0

	var dLon, dLat float64
	if g.quad15 != 0 {
		a, b := grid.QuadrantDelta(g.quad15, 2, 15)
		dLon, dLat = dLon+a, dLat+b
	}
	if g.key5 != 0 {
		a, b := grid.QuadrantDelta(g.key5, 3, 5)
		dLon, dLat = dLon+a, dLat+b
	}
	if g.key1 != 0 {
		a, b := grid.QuadrantDelta(g.key1, 5, 1)
		dLon, dLat = dLon+a, dLat+b
	}
	lon += dLon / 60.0
	lat += dLat / 60.0

	side := float64(g.resolution) / 60.0
	b := orb.Bound{
		Min: orb.Point{lon, lat},
		Max: orb.Point{lon + side, lat + side},
	}
	g.bound = &b
	return b
}

// Polygon returns the bounding rectangle as a closed ring.
func (g *GARSGrid) Polygon() orb.Polygon {
	return g.Bound().ToPolygon()
}

// UTMEpsg returns the EPSG code of the UTM zone covering the cell's
// centroid, or the UPS code near the poles. Memoized on first access.
func (g *GARSGrid) UTMEpsg() string {
	if g.epsg != nil {
		return *g.epsg
	}
	code := utmEpsgForCell(g.Polygon())
	g.epsg = &code
	return code
}
