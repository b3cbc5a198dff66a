package gars

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// EPSG codes for the Universal Polar Stereographic zones used in place
// of UTM near the poles.
const (
	EPSGUPSNorth = "EPSG:32661"
	EPSGUPSSouth = "EPSG:32761"
)

// UTMZoneEPSG returns the EPSG code of the WGS 84 UTM zone covering the
// given point: EPSG:326xx on the northern hemisphere, EPSG:327xx on the
// southern, where xx is the zone number.
//
// The widened zone 32V over south-west Norway and the Svalbard zones
// 31X-37X are honored, matching the zones of use registered in the EPSG
// dataset rather than the plain 6-degree slicing.
func UTMZoneEPSG(lon, lat float64) string {
	zone := int((lon+180)/6) + 1
	if zone > 60 {
		zone = 60 // lon == 180
	}

	if lat >= 56 && lat < 64 && lon >= 3 && lon < 12 {
		zone = 32
	}
	if lat >= 72 && lat < 84 {
		switch {
		case lon >= 0 && lon < 9:
			zone = 31
		case lon >= 9 && lon < 21:
			zone = 33
		case lon >= 21 && lon < 33:
			zone = 35
		case lon >= 33 && lon < 42:
			zone = 37
		}
	}

	if lat >= 0 {
		return fmt.Sprintf("EPSG:%d", 32600+zone)
	}
	return fmt.Sprintf("EPSG:%d", 32700+zone)
}

// utmEpsgForCell resolves the zone code for a cell polygon: UPS zones
// when the centroid is within the polar caps (latitude <= -80 or
// >= 84), the UTM zone of the centroid otherwise.
func utmEpsgForCell(p orb.Polygon) string {
	centroid, _ := planar.CentroidArea(p)
	switch {
	case centroid.Lat() <= -80:
		return EPSGUPSSouth
	case centroid.Lat() >= 84:
		return EPSGUPSNorth
	default:
		return UTMZoneEPSG(centroid.Lon(), centroid.Lat())
	}
}
