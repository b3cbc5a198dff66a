package main

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/gars/pkg/gars"
)

func main() {
	// Enumerate a coverage area once, then answer point and viewport
	// queries from the index.
	region := orb.Bound{
		Min: orb.Point{-74.5, 40},
		Max: orb.Point{-71, 43},
	}.ToPolygon()

	cells, err := gars.NewField(region).Cells15Min()
	if err != nil {
		log.Fatal(err)
	}

	idx := gars.NewCellIndex(cells)
	fmt.Printf("Indexed %d cells\n", idx.Count())

	// Point query: which cell covers Manhattan?
	for _, cell := range idx.At(-73.98, 40.75) {
		fmt.Printf("At Manhattan: %s (%s)\n", cell, cell.UTMEpsg())
	}

	// Viewport query: every cell visible in a map window
	viewport := orb.Bound{
		Min: orb.Point{-72, 41.5},
		Max: orb.Point{-71.5, 42},
	}
	hits := idx.Search(viewport)
	fmt.Printf("Cells in viewport: %d\n", len(hits))
	for _, cell := range hits {
		fmt.Printf("  %s\n", cell)
	}
}
