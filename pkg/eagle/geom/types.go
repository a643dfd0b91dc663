// Package geom provides the shared geometry vocabulary for EAGLE board files.
// Every type here is plain data: the parser in package brd produces them and the
// instancing engine in package transform produces transformed copies of them.
package geom

import (
	"fmt"
	"math"
	"strconv"
)

// Reserved EAGLE layer numbers referenced by the parser and the instancing engine
const (
	LayerTop       = 1  // Top copper
	LayerBottom    = 16 // Bottom copper
	LayerPads      = 17 // Through-hole pads
	LayerVias      = 18 // Vias
	LayerDimension = 20 // Board outline, never fill-rendered
	LayerTPlace    = 21 // Top silkscreen
	LayerBPlace    = 22 // Bottom silkscreen
	LayerTNames    = 25 // Top component names
	LayerBNames    = 26 // Bottom component names
	LayerTStop     = 29 // Top solder mask
	LayerBStop     = 30 // Bottom solder mask
)

// DefaultLayerColor is the palette index used when a layer declares no color
const DefaultLayerColor = 7

// Point represents a 2D coordinate in board space (millimeters)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size represents pad dimensions
type Size struct {
	DX float64 `json:"dx"` // Width in mm
	DY float64 `json:"dy"` // Height in mm
}

// Layer represents a drawing plane declared in the <layers> section
type Layer struct {
	Number  int    `json:"number"`  // Layer number (unique key)
	Name    string `json:"name"`    // Display name (e.g., "Top", "tPlace")
	Color   int    `json:"color"`   // EAGLE palette index
	Visible bool   `json:"visible"` // visible="yes"
	Active  bool   `json:"active"`  // active="yes"
}

// ImplicitLayer is the layer used for ids that were never declared.
func ImplicitLayer(number int) Layer {
	return Layer{
		Number:  number,
		Color:   DefaultLayerColor,
		Visible: true,
		Active:  true,
	}
}

// Rotation is the parsed form of an EAGLE rotation descriptor such as "MR90".
type Rotation struct {
	Angle  float64 `json:"angle"`  // Signed angle in degrees
	Mirror bool    `json:"mirror"` // M flag: placed on the opposite board face
	Spin   bool    `json:"spin"`   // S flag: text spin, no geometric effect
}

// Effective returns the angle actually fed to the rotation matrix.
// Mirrored placements rotate the reflected footprint the other way round.
func (r Rotation) Effective() float64 {
	if r.Mirror {
		return -r.Angle
	}
	return r.Angle
}

// IsZero reports whether the rotation is the identity
func (r Rotation) IsZero() bool {
	return r.Angle == 0 && !r.Mirror
}

// String renders the canonical descriptor form
func (r Rotation) String() string {
	s := ""
	if r.Mirror {
		s += "M"
	}
	if r.Spin {
		s += "S"
	}
	return s + "R" + strconv.FormatFloat(r.Angle, 'f', -1, 64)
}

// BoundingBox represents a rectangular boundary
type BoundingBox struct {
	Min Point `json:"min"` // Minimum corner
	Max Point `json:"max"` // Maximum corner
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty checks if the bounding box has not seen any point
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand expands the bounding box to include a point
func (bb *BoundingBox) Expand(p Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// ExpandBox expands to include another bounding box
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}

// Width returns the width of the bounding box
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the height of the bounding box
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the bounding box
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2.0,
		Y: (bb.Min.Y + bb.Max.Y) / 2.0,
	}
}

func (bb BoundingBox) String() string {
	return fmt.Sprintf("(%.3f, %.3f) - (%.3f, %.3f)", bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
}
