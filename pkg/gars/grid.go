package gars

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Letter alphabets for the latitude bands of each variant. I and O are
// always omitted to avoid confusion with 1 and 0.
const (
	garsLetters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	edLetters   = "ABCDEFGHJKLMNPQRSTUV"
	gedLetters  = "ABC"
)

// Valid resolutions per variant. Standard GARS resolutions are in
// minutes, the extended variants in degrees.
var (
	garsResolutions = []int{1, 5, 15, 30}
	edResolutions   = []int{1, 3, 6}
	gedResolutions  = []int{30, 60}
)

// Grid is a single cell of one of the GARS grid variants.
//
// A cell is immutable once constructed; the bounding box and UTM zone
// are derived from the identifier on first access and memoized. Two
// cells are the same cell exactly when their IDs are equal, and cells
// order lexicographically by ID, so the ID string is the natural map
// key and sort key.
type Grid interface {
	fmt.Stringer

	// ID returns the canonical identifier for the cell.
	ID() string

	// Resolution returns the finest level encoded in the identifier,
	// in minutes for standard GARS and degrees for the extended
	// variants.
	Resolution() int

	// Bound returns the cell's bounding rectangle in WGS-84 degrees.
	Bound() orb.Bound

	// Polygon returns the bounding rectangle as a closed ring.
	Polygon() orb.Polygon

	// UTMEpsg returns the EPSG code of the UTM (or, near the poles,
	// UPS) zone covering the cell's centroid, or the empty string
	// when the cell spans multiple zones.
	UTMEpsg() string
}

// Equal reports whether a and b identify the same grid cell.
func Equal(a, b Grid) bool {
	return a.ID() == b.ID()
}

// Less orders cells lexicographically by identifier.
func Less(a, b Grid) bool {
	return a.ID() < b.ID()
}

func validateResolution(resolution int, valid []int) error {
	for _, v := range valid {
		if resolution == v {
			return nil
		}
	}
	return &ErrInvalidResolution{Resolution: resolution, Valid: valid}
}
