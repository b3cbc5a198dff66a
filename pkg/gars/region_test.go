package gars

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func bound(minLon, minLat, maxLon, maxLat float64) orb.Bound {
	return orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}
}

func TestClampBounds(t *testing.T) {
	b := clampBounds(bound(-185, -90, 185, 90))
	assert.Equal(t, -180.0, b.Min[0])
	assert.Equal(t, 179.999999999999, b.Max[0])

	// inside the valid range nothing moves
	b = clampBounds(bound(-10, -5, 10, 5))
	assert.Equal(t, bound(-10, -5, 10, 5), b)

	// exactly 180 is pulled back too
	b = clampBounds(bound(170, 0, 180, 10))
	assert.Equal(t, 179.999999999999, b.Max[0])
}

func TestGeometryParts(t *testing.T) {
	assert.Nil(t, geometryParts(orb.Point{1, 2}))
	assert.Nil(t, geometryParts(bound(0, 0, 1, 1).ToPolygon()))

	multi := orb.MultiPolygon{
		bound(0, 0, 1, 1).ToPolygon(),
		bound(2, 2, 3, 3).ToPolygon(),
	}
	assert.Len(t, geometryParts(multi), 2)

	points := orb.MultiPoint{{0, 0}, {1, 1}, {2, 2}}
	assert.Len(t, geometryParts(points), 3)

	coll := orb.Collection{orb.Point{0, 0}, bound(1, 1, 2, 2).ToPolygon()}
	assert.Len(t, geometryParts(coll), 2)
}

func TestBoundIntersectsPoint(t *testing.T) {
	cell := bound(0, 0, 1, 1)

	assert.True(t, boundIntersects(orb.Point{0.5, 0.5}, cell))
	assert.True(t, boundIntersects(orb.Point{1, 1}, cell), "corner contact counts")
	assert.False(t, boundIntersects(orb.Point{1.5, 0.5}, cell))

	assert.True(t, boundIntersects(orb.MultiPoint{{5, 5}, {0.2, 0.2}}, cell))
	assert.False(t, boundIntersects(orb.MultiPoint{{5, 5}, {6, 6}}, cell))
}

func TestBoundIntersectsPolygon(t *testing.T) {
	cell := bound(0, 0, 1, 1)

	tests := []struct {
		name string
		poly orb.Polygon
		want bool
	}{
		{"overlapping", bound(0.5, 0.5, 2, 2).ToPolygon(), true},
		{"disjoint", bound(2, 2, 3, 3).ToPolygon(), false},
		{"shared edge", bound(1, 0, 2, 1).ToPolygon(), true},
		{"shared corner", bound(1, 1, 2, 2).ToPolygon(), true},
		{"cell inside polygon", bound(-5, -5, 5, 5).ToPolygon(), true},
		{"polygon inside cell", bound(0.4, 0.4, 0.6, 0.6).ToPolygon(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, boundIntersects(tt.poly, cell))
		})
	}
}

func TestBoundIntersectsPolygonHole(t *testing.T) {
	outer := orb.Ring{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole := orb.Ring{{2, 2}, {8, 2}, {8, 8}, {2, 8}, {2, 2}}
	poly := orb.Polygon{outer, hole}

	assert.False(t, boundIntersects(poly, bound(4, 4, 5, 5)), "inside the hole")
	assert.True(t, boundIntersects(poly, bound(0.5, 0.5, 1.5, 1.5)), "in the shell")
	assert.True(t, boundIntersects(poly, bound(1.5, 1.5, 3, 3)), "crosses the hole edge")
	assert.False(t, boundIntersects(poly, bound(11, 11, 12, 12)))
}

func TestBoundIntersectsLineString(t *testing.T) {
	cell := bound(0, 0, 1, 1)

	crossing := orb.LineString{{-1, 0.5}, {2, 0.5}}
	assert.True(t, boundIntersects(crossing, cell), "no vertex inside, segment crosses")

	touching := orb.LineString{{-1, 1}, {2, 1}}
	assert.True(t, boundIntersects(touching, cell), "runs along the top edge")

	outside := orb.LineString{{-1, 2}, {2, 2}}
	assert.False(t, boundIntersects(outside, cell))

	multi := orb.MultiLineString{{{5, 5}, {6, 6}}, {{0.2, -1}, {0.2, 2}}}
	assert.True(t, boundIntersects(multi, cell))
}

func TestBoundIntersectsBound(t *testing.T) {
	cell := bound(0, 0, 1, 1)
	assert.True(t, boundIntersects(bound(0.5, 0.5, 2, 2), cell))
	assert.False(t, boundIntersects(bound(2, 2, 3, 3), cell))
	assert.False(t, boundIntersects(nil, cell))
}

func TestSegmentCrossesBound(t *testing.T) {
	cell := bound(0, 0, 1, 1)

	tests := []struct {
		name   string
		p1, p2 orb.Point
		want   bool
	}{
		{"through the middle", orb.Point{-1, 0.5}, orb.Point{2, 0.5}, true},
		{"diagonal corner to corner", orb.Point{-1, -1}, orb.Point{2, 2}, true},
		{"ends on the edge", orb.Point{-1, 0}, orb.Point{0, 0}, true},
		{"misses above", orb.Point{-1, 2}, orb.Point{2, 1.5}, false},
		{"vertical miss", orb.Point{2, -1}, orb.Point{2, 2}, false},
		{"degenerate point inside", orb.Point{0.5, 0.5}, orb.Point{0.5, 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, segmentCrossesBound(tt.p1, tt.p2, cell))
		})
	}
}
