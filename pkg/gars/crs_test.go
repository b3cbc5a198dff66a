package gars

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTMZoneEPSG(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     string
	}{
		{"zone 1 north", -179.625, 0.375, "EPSG:32601"},
		{"zone 1 south", -178.25, -77.75, "EPSG:32701"},
		{"zone 19 north", -71.04, 42.37, "EPSG:32619"},
		{"zone 21 south", -55.04, -11.63, "EPSG:32721"},
		{"zone 60 east edge", 180, 10, "EPSG:32660"},
		{"zone 60 south", 179.5, -49.5, "EPSG:32760"},
		{"equator on zone boundary", 6, 0, "EPSG:32632"},
		{"norway 32V west of 6E", 5, 60, "EPSG:32632"},
		{"below 32V keeps zone 31", 5, 55, "EPSG:32631"},
		{"north of 32V keeps zone 31", 5, 65, "EPSG:32631"},
		{"svalbard 31X", 8, 75, "EPSG:32631"},
		{"svalbard 33X", 15, 78, "EPSG:32633"},
		{"svalbard 35X", 30, 75, "EPSG:32635"},
		{"svalbard 37X", 40, 80, "EPSG:32637"},
		{"above svalbard plain zones", 15, 85, "EPSG:32633"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UTMZoneEPSG(tt.lon, tt.lat))
		})
	}
}

func TestUTMEpsgForCellPolarCaps(t *testing.T) {
	south, err := NewGARSGrid("020AB")
	assert.NoError(t, err)
	assert.Equal(t, EPSGUPSSouth, south.UTMEpsg())

	north, err := NewEDGARSGrid("D45BK")
	assert.NoError(t, err)
	assert.Equal(t, EPSGUPSNorth, north.UTMEpsg())
}
