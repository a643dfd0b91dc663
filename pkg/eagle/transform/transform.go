// Package transform projects library packages into board space.
//
// A placement is applied to each package-local point in a fixed order:
// reflect across the local Y axis when mirrored (x → -x), rotate by the
// placement's effective angle, then translate to the placement position.
// Swapping mirror and rotation yields a different footprint for any angle
// that is not a multiple of 180°.
package transform

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// Transform is the placement of one element: mirror, rotate, translate
type Transform struct {
	Origin   geom.Point    // Placement position
	Rotation geom.Rotation // Placement rotation descriptor

	rot r2.Rotation
}

// New creates the transform for a placement at origin with rotation r
func New(origin geom.Point, r geom.Rotation) Transform {
	return Transform{
		Origin:   origin,
		Rotation: r,
		rot:      r2.NewRotation(r.Effective()*math.Pi/180.0, r2.Vec{}),
	}
}

// ForElement creates the transform of an element placement
func ForElement(el geom.Element) Transform {
	return New(el.Position, el.Rotation)
}

// Apply maps a package-local point to board coordinates
func (t Transform) Apply(p geom.Point) geom.Point {
	if t.Rotation.IsZero() {
		return geom.Point{X: t.Origin.X + p.X, Y: t.Origin.Y + p.Y}
	}

	x, y := p.X, p.Y

	// Reflect before rotating
	if t.Rotation.Mirror {
		x = -x
	}

	v := t.rot.Rotate(r2.Vec{X: x, Y: y})

	return geom.Point{X: t.Origin.X + v.X, Y: t.Origin.Y + v.Y}
}

// ApplyAll maps a slice of points, returning a new slice
func (t Transform) ApplyAll(points []geom.Point) []geom.Point {
	out := make([]geom.Point, len(points))
	for i, p := range points {
		out[i] = t.Apply(p)
	}
	return out
}

// Layer remaps a layer id to the opposite face for mirrored placements
func (t Transform) Layer(layer int) int {
	if t.Rotation.Mirror {
		return FlipLayer(layer)
	}
	return layer
}

// Angle composes a shape's own rotation with the placement rotation.
// Unmirrored: rot + eff. Mirrored: rot - eff. eff is the effective angle,
// already negated for mirrored placements.
func (t Transform) Angle(shapeRotation float64) float64 {
	eff := t.Rotation.Effective()
	if t.Rotation.Mirror {
		return shapeRotation - eff
	}
	return shapeRotation + eff
}
