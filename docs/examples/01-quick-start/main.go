package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/gars/pkg/gars"
)

func main() {
	// Look up the cell containing a coordinate
	cell, err := gars.GARSFromLatLon(42.36, -71.06, 5)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Cell: %s\n", cell)
	fmt.Printf("Resolution: %d min\n", cell.Resolution())
	fmt.Printf("UTM zone: %s\n", cell.UTMEpsg())

	bounds := cell.Bound()
	fmt.Printf("Bounds: [%.4f,%.4f] to [%.4f,%.4f]\n",
		bounds.Min[0], bounds.Min[1],
		bounds.Max[0], bounds.Max[1])

	// Parse an identifier directly
	parsed, err := gars.NewGARSGrid("006AG39")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Parsed %s at %d min resolution\n", parsed, parsed.Resolution())

	// Extended-degree variants use the same API
	ed, err := gars.EDGARSFromLatLon(42.36, -71.06, 3)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("ED cell: %s\n", ed)
}
