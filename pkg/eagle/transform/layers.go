package transform

import "github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"

// flipTable pairs each top-side layer with its bottom-side counterpart
var flipTable = map[int]int{
	geom.LayerTop:    geom.LayerBottom,
	geom.LayerBottom: geom.LayerTop,
	geom.LayerTPlace: geom.LayerBPlace,
	geom.LayerBPlace: geom.LayerTPlace,
	geom.LayerTNames: geom.LayerBNames,
	geom.LayerBNames: geom.LayerTNames,
	geom.LayerTStop:  geom.LayerBStop,
	geom.LayerBStop:  geom.LayerTStop,
}

// FlipLayer returns the layer on the opposite board face.
// Layers without a counterpart are returned unchanged.
func FlipLayer(layer int) int {
	if flipped, ok := flipTable[layer]; ok {
		return flipped
	}
	return layer
}

// FlipPairs returns the flip table as (top, bottom) pairs, ordered by top layer
func FlipPairs() [][2]int {
	return [][2]int{
		{geom.LayerTop, geom.LayerBottom},
		{geom.LayerTPlace, geom.LayerBPlace},
		{geom.LayerTNames, geom.LayerBNames},
		{geom.LayerTStop, geom.LayerBStop},
	}
}
