package main

import (
	"fmt"
	"log"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/gars/pkg/gars"
)

func main() {
	// Boston harbor area
	region := orb.Bound{
		Min: orb.Point{-71.1, 42.3},
		Max: orb.Point{-70.9, 42.4},
	}.ToPolygon()

	field := gars.NewField(region)

	cells30, err := field.Cells30Min()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("30-minute cells: %d\n", len(cells30))
	for _, cell := range cells30 {
		fmt.Printf("  %s -> %s\n", cell, cell.UTMEpsg())
	}

	cells5, err := field.Cells5Min()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("5-minute cells: %d\n", len(cells5))

	// Regions crossing the antimeridian are passed as two parts;
	// the result merges both sides without duplicates.
	dateline := orb.MultiPolygon{
		orb.Bound{Min: orb.Point{179.5, 7}, Max: orb.Point{180, 8}}.ToPolygon(),
		orb.Bound{Min: orb.Point{-180, 7}, Max: orb.Point{-179.6, 8}}.ToPolygon(),
	}
	cells, err := gars.NewField(dateline).Cells30Min()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Dateline cells: %v\n", cells)
}
