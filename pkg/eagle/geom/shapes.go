package geom

// Shape is the closed set of drawable primitives found on a board or inside a
// package. Only types in this package implement it; switch on the concrete type
// to handle each kind.
type Shape interface {
	// Points returns every coordinate that defines the shape's extent
	Points() []Point
	shape()
}

// WireKind tells where a wire came from
type WireKind string

const (
	WirePlain   WireKind = "plain"   // Free-standing drawing in <plain>
	WireSignal  WireKind = "signal"  // Copper trace inside a <signal>
	WirePackage WireKind = "package" // Outline or silk inside a library package
)

// Wire represents a straight line segment
type Wire struct {
	Start Point    `json:"start"`
	End   Point    `json:"end"`
	Width float64  `json:"width"` // Stroke width in mm
	Layer int      `json:"layer"`
	Kind  WireKind `json:"kind"`
	Net   string   `json:"net,omitempty"`
}

// Via represents a plated hole connecting copper layers
type Via struct {
	Position Point   `json:"position"`
	Drill    float64 `json:"drill"`
	Diameter float64 `json:"diameter"`
	Extent   string  `json:"extent,omitempty"` // Layer span, e.g. "1-16"
	Net      string  `json:"net,omitempty"`
}

// Pad represents a through-hole pad
type Pad struct {
	Name     string  `json:"name"`
	Position Point   `json:"position"`
	Drill    float64 `json:"drill"`
	Diameter float64 `json:"diameter"`
	Size     Size    `json:"size"`  // DX/DY; equal to Diameter for non-round shapes
	Shape    string  `json:"shape"` // round, square, octagon, long, offset
	Layer    int     `json:"layer"`
	Rotation float64 `json:"rotation"` // Degrees
}

// SMD represents a surface-mount pad
type SMD struct {
	Name      string  `json:"name"`
	Position  Point   `json:"position"`
	Size      Size    `json:"size"`
	Layer     int     `json:"layer"`
	Roundness float64 `json:"roundness"` // Corner roundness in percent
	Rotation  float64 `json:"rotation"`  // Degrees
}

// Circle represents a stroked circle
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Width  float64 `json:"width"`
	Layer  int     `json:"layer"`
}

// Rectangle represents a filled rectangle.
// Corner1 and Corner2 are the defining corners; Corners holds all four, which
// stop being axis-aligned once a rectangle is instanced at an angle.
type Rectangle struct {
	Corner1  Point    `json:"corner1"`
	Corner2  Point    `json:"corner2"`
	Corners  [4]Point `json:"corners"`
	Layer    int      `json:"layer"`
	Rotation float64  `json:"rotation"` // Degrees
}

// NewRectangle builds a rectangle from two opposite corners
func NewRectangle(c1, c2 Point, layer int, rotation float64) Rectangle {
	return Rectangle{
		Corner1:  c1,
		Corner2:  c2,
		Corners:  AxisCorners(c1, c2),
		Layer:    layer,
		Rotation: rotation,
	}
}

// AxisCorners returns the four corners of the axis-aligned box spanned by a and b,
// counter-clockwise from the minimum corner.
func AxisCorners(a, b Point) [4]Point {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return [4]Point{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}

// Polygon represents a closed outline, filled when it is a copper pour
type Polygon struct {
	Vertices []Point `json:"vertices"`
	Layer    int     `json:"layer"`
	Width    float64 `json:"width"`
	Net      string  `json:"net,omitempty"`
	Fill     bool    `json:"fill"`
	Outline  bool    `json:"outline"`
}

// Text represents a free-standing text label
type Text struct {
	Position Point   `json:"position"`
	Value    string  `json:"value"`
	Layer    int     `json:"layer"`
	Size     float64 `json:"size"`
	Rotation float64 `json:"rotation"` // Degrees
}

func (w Wire) Points() []Point      { return []Point{w.Start, w.End} }
func (v Via) Points() []Point       { return []Point{v.Position} }
func (p Pad) Points() []Point       { return []Point{p.Position} }
func (s SMD) Points() []Point       { return []Point{s.Position} }
func (c Circle) Points() []Point    { return []Point{c.Center} }
func (r Rectangle) Points() []Point { return r.Corners[:] }
func (t Text) Points() []Point      { return []Point{t.Position} }

func (p Polygon) Points() []Point {
	return p.Vertices
}

func (Wire) shape()      {}
func (Via) shape()       {}
func (Pad) shape()       {}
func (SMD) shape()       {}
func (Circle) shape()    {}
func (Rectangle) shape() {}
func (Polygon) shape()   {}
func (Text) shape()      {}

// BoundsOf returns the extent of every point of shapes. The result is empty
// when there are no shapes.
func BoundsOf(shapes []Shape) BoundingBox {
	bb := NewBoundingBox()
	for _, s := range shapes {
		for _, p := range s.Points() {
			bb.Expand(p)
		}
	}
	return bb
}

// KindOf returns a short lowercase name for a shape's kind
func KindOf(s Shape) string {
	switch s.(type) {
	case Wire:
		return "wire"
	case Via:
		return "via"
	case Pad:
		return "pad"
	case SMD:
		return "smd"
	case Circle:
		return "circle"
	case Rectangle:
		return "rectangle"
	case Polygon:
		return "polygon"
	case Text:
		return "text"
	default:
		return "unknown"
	}
}

// LayerOf returns the layer a shape is drawn on. Vias span layers and report
// the reserved Vias layer.
func LayerOf(s Shape) int {
	switch v := s.(type) {
	case Wire:
		return v.Layer
	case Via:
		return LayerVias
	case Pad:
		return v.Layer
	case SMD:
		return v.Layer
	case Circle:
		return v.Layer
	case Rectangle:
		return v.Layer
	case Polygon:
		return v.Layer
	case Text:
		return v.Layer
	default:
		return 0
	}
}
