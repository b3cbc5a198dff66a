// Package gars implements the Global Area Reference System (GARS) and
// its extended-degree variants: deterministic, bidirectional mappings
// between textual grid-cell identifiers and geographic bounding
// rectangles at nested resolutions.
//
// Three grid variants are supported, all conforming to the Grid
// interface:
//
//   - GARSGrid: the standard NGA grid of 30-minute cells (001AA-720QZ),
//     refined to 15-minute quadrants, 5-minute keypad keys, and
//     1-minute keys.
//   - EDGARSGrid: the extended-degree grid of 6-degree cells (prefix
//     D), refined to 3-degree and 1-degree keys.
//   - GEDGARSGrid: the giant-extended-degree grid of 60-degree cells
//     (prefix GD), refined to 30-degree quadrants.
//
// # Basic Usage
//
// Cells are constructed either from an identifier or from a
// coordinate:
//
//	cell, err := gars.NewGARSGrid("006AG39")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cell.Bound())   // the cell's rectangle in WGS-84
//	fmt.Println(cell.UTMEpsg()) // "EPSG:32761" (UPS South, polar cell)
//
//	cell, err = gars.GARSFromLatLon(42.36, -71.06, 5)
//	fmt.Println(cell) // "218MA26"
//
// Identifiers are canonical: constructing a cell from a coordinate
// inside it always reproduces the identifier, and truncating a finer
// identifier to a coarser resolution yields the enclosing cell's
// identifier.
//
// # Field Enumeration
//
// A Field enumerates every cell at a chosen resolution that intersects
// a region:
//
//	region := orb.Bound{
//	    Min: orb.Point{-71.5, 42.0},
//	    Max: orb.Point{-71.0, 42.5},
//	}.ToPolygon()
//
//	field := gars.NewField(region)
//	cells, err := field.Cells15Min()
//
// Regions crossing the antimeridian must be split by the caller into a
// MultiPolygon with one part on each side; the field merges,
// deduplicates, and sorts the result.
//
// # Spatial Lookup
//
// A CellIndex answers point and viewport queries over an enumerated
// cell set:
//
//	idx := gars.NewCellIndex(cells)
//	hits := idx.At(-71.06, 42.36)
//
// # Scope
//
// This package is not a GIS toolkit. It performs no projections or
// datum transforms; geometry beyond axis-aligned cell rectangles is
// delegated to github.com/paulmach/orb, and UTM zone identification is
// arithmetic over WGS 84 zones.
package gars
