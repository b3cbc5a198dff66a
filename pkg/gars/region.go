package gars

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// clampBounds limits a region's longitude extent before band-range
// computation. The upper bound is pinned just below 180: normalizing
// exactly 180 wraps to grid longitude 360, which lands one band past
// the end of the numbering.
func clampBounds(b orb.Bound) orb.Bound {
	if b.Min[0] < -180 {
		b.Min[0] = -180
	}
	if b.Max[0] >= 180 {
		b.Max[0] = 179.999999999999
	}
	return b
}

// geometryParts returns the simple parts of a composite geometry, or
// nil when g is already simple.
func geometryParts(g orb.Geometry) []orb.Geometry {
	switch t := g.(type) {
	case orb.MultiPoint:
		parts := make([]orb.Geometry, len(t))
		for i, p := range t {
			parts[i] = p
		}
		return parts
	case orb.MultiLineString:
		parts := make([]orb.Geometry, len(t))
		for i, ls := range t {
			parts[i] = ls
		}
		return parts
	case orb.MultiPolygon:
		parts := make([]orb.Geometry, len(t))
		for i, p := range t {
			parts[i] = p
		}
		return parts
	case orb.Collection:
		parts := make([]orb.Geometry, len(t))
		copy(parts, t)
		return parts
	}
	return nil
}

// boundIntersects reports whether the rectangle b intersects the
// geometry, boundary contact included. This mirrors the intersection
// predicate of a full geometry engine for the one case the grid needs:
// axis-aligned cell against arbitrary region.
func boundIntersects(g orb.Geometry, b orb.Bound) bool {
	if g == nil {
		return false
	}
	if !b.Intersects(g.Bound()) {
		return false
	}

	switch t := g.(type) {
	case orb.Point:
		return b.Contains(t)
	case orb.MultiPoint:
		for _, p := range t {
			if b.Contains(p) {
				return true
			}
		}
		return false
	case orb.LineString:
		return lineTouchesBound(t, b)
	case orb.Ring:
		return lineTouchesBound(orb.LineString(t), b)
	case orb.Polygon:
		return polygonIntersectsBound(t, b)
	case orb.MultiLineString:
		for _, ls := range t {
			if boundIntersects(ls, b) {
				return true
			}
		}
		return false
	case orb.MultiPolygon:
		for _, p := range t {
			if boundIntersects(p, b) {
				return true
			}
		}
		return false
	case orb.Collection:
		for _, sub := range t {
			if boundIntersects(sub, b) {
				return true
			}
		}
		return false
	case orb.Bound:
		return b.Intersects(t)
	}
	return false
}

func polygonIntersectsBound(p orb.Polygon, b orb.Bound) bool {
	if len(p) == 0 {
		return false
	}
	// any ring vertex inside the box, or any ring edge crossing it
	for _, r := range p {
		if lineTouchesBound(orb.LineString(r), b) {
			return true
		}
	}
	// no boundary contact: either the box lies entirely inside the
	// polygon (holes included) or entirely outside
	return planar.PolygonContains(p, b.Min)
}

func lineTouchesBound(ls orb.LineString, b orb.Bound) bool {
	for _, p := range ls {
		if b.Contains(p) {
			return true
		}
	}
	for i := 0; i+1 < len(ls); i++ {
		if segmentCrossesBound(ls[i], ls[i+1], b) {
			return true
		}
	}
	return false
}

// segmentCrossesBound is a Liang-Barsky clip test; a segment touching
// the rectangle's edge counts as crossing.
func segmentCrossesBound(p1, p2 orb.Point, b orb.Bound) bool {
	dx := p2[0] - p1[0]
	dy := p2[1] - p1[1]
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}
		return true
	}

	return clip(-dx, p1[0]-b.Min[0]) &&
		clip(dx, b.Max[0]-p1[0]) &&
		clip(-dy, p1[1]-b.Min[1]) &&
		clip(dy, b.Max[1]-p1[1]) &&
		t0 <= t1
}
