// Package grid contains the arithmetic shared by the GARS grid variants:
// coordinate normalization into grid space, keypad offset math, and the
// latitude letter-pair range expansion used during field enumeration.
package grid

import (
	"math"
	"strings"
)

// NormalizeLatLon converts a WGS-84 coordinate into grid space.
//
// Longitude maps from (-180, 180] to [0, 360), except exactly 180 which
// maps to 360 so the antimeridian stays on the eastern edge of the last
// band. Latitude maps from [-90, 90] to [0, 180), with exactly 90 pinned
// just below 180 so the pole falls inside the northernmost band.
func NormalizeLatLon(lat, lon float64) (nlat, nlon float64) {
	if lon == 180 {
		nlon = 360
	} else {
		nlon = math.Mod(math.Mod(lon+180, 360)+360, 360)
	}
	if lat == 90 {
		nlat = 179.9999999999
	} else {
		nlat = math.Mod(math.Mod(lat+90, 180)+180, 180)
	}
	return nlat, nlon
}

// QuadrantDelta returns the offset of a keypad key within its parent
// cell. Keys are 1-based and numbered west to east starting with the
// northernmost row of a cols-by-cols raster; size is the side length of
// one key in the caller's unit (minutes or degrees).
//
// The returned deltas are measured from the parent's lower-left corner,
// so the top row carries the largest latitude offset.
func QuadrantDelta(key, cols int, size float64) (dLon, dLat float64) {
	col := (key - 1) % cols
	row := (key - 1) / cols
	return float64(col) * size, float64(cols-1-row) * size
}

// AllDigits reports whether s is non-empty and consists only of ASCII
// digits. Identifier fields are fixed width, so this plus a length check
// replaces pattern matching.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// LatLetterRange expands the inclusive range of two-letter latitude
// bands between lo and hi over the given alphabet.
//
// When the first letters differ the range wraps across the second
// letter's alphabet, producing three segments: the tail of the first
// letter, every pair for the letters in between, and the head of the
// last letter. Pairs beyond a variant's latitude cap may be produced;
// callers drop them when cell construction rejects the identifier.
func LatLetterRange(letters, lo, hi string) []string {
	lo1 := strings.IndexByte(letters, lo[0])
	lo2 := strings.IndexByte(letters, lo[1])
	hi1 := strings.IndexByte(letters, hi[0])
	hi2 := strings.IndexByte(letters, hi[1])

	var pairs []string
	if lo[0] != hi[0] {
		for i := lo2; i < len(letters); i++ {
			pairs = append(pairs, string([]byte{lo[0], letters[i]}))
		}
		for i := lo1 + 1; i < hi1; i++ {
			for j := 0; j < len(letters); j++ {
				pairs = append(pairs, string([]byte{letters[i], letters[j]}))
			}
		}
		for i := 0; i <= hi2; i++ {
			pairs = append(pairs, string([]byte{hi[0], letters[i]}))
		}
		return pairs
	}

	for i := lo1; i <= hi1; i++ {
		for j := lo2; j <= hi2; j++ {
			pairs = append(pairs, string([]byte{letters[i], letters[j]}))
		}
	}
	return pairs
}
