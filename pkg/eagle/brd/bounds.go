package brd

import "github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"

// emptyBounds is reported for a board with no geometry at all
var emptyBounds = geom.BoundingBox{
	Min: geom.Point{X: 0, Y: 0},
	Max: geom.Point{X: 100, Y: 100},
}

// ComputeBounds returns the tight axis-aligned extent of the board.
// It covers raw wires, vias, pads, SMDs, circle centers, rectangle corners and
// polygon vertices, every element origin, and every point of every instanced
// package shape. Texts do not contribute. Shape widths and radii are ignored.
func ComputeBounds(b *Board) geom.BoundingBox {
	bbox := geom.NewBoundingBox()

	for _, w := range b.Wires {
		bbox.Expand(w.Start)
		bbox.Expand(w.End)
	}
	for _, v := range b.Vias {
		bbox.Expand(v.Position)
	}
	for _, p := range b.Pads {
		bbox.Expand(p.Position)
	}
	for _, s := range b.SMDs {
		bbox.Expand(s.Position)
	}
	for _, c := range b.Circles {
		bbox.Expand(c.Center)
	}
	for _, r := range b.Rectangles {
		for _, pt := range r.Corners {
			bbox.Expand(pt)
		}
	}

	// Element origins and their instanced footprints
	for _, el := range b.Elements {
		bbox.Expand(el.Position)
		bbox.ExpandBox(geom.BoundsOf(b.Instances(el)))
	}

	for _, p := range b.Polygons {
		for _, pt := range p.Vertices {
			bbox.Expand(pt)
		}
	}

	if bbox.IsEmpty() {
		return emptyBounds
	}
	return bbox
}
