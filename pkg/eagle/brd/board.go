package brd

import (
	"sort"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/transform"
)

// Board is the normalized model of one .brd document. It is fully built by
// Parse and must be treated as read-only afterwards.
type Board struct {
	Layers     map[int]geom.Layer       // Declared layers by number
	Packages   map[string]*geom.Package // Library footprints by package name
	Elements   []geom.Element           // Component placements
	Wires      []geom.Wire              // Plain and signal wires
	Vias       []geom.Via               // Signal vias
	Pads       []geom.Pad               // Free-standing pads from <plain>
	SMDs       []geom.SMD               // Free-standing SMDs from <plain>
	Circles    []geom.Circle            // Circles from <plain>
	Rectangles []geom.Rectangle         // Rectangles from <plain>
	Polygons   []geom.Polygon           // Plain and signal polygons, classified
	Texts      []geom.Text              // Texts from <plain>
	Bounds     geom.BoundingBox         // Extent of everything above, instanced

	instances *transform.Cache
	nets      *NetIndex
}

func newBoard() *Board {
	return &Board{
		Layers:    make(map[int]geom.Layer),
		Packages:  make(map[string]*geom.Package),
		instances: transform.NewCache(),
	}
}

// Layer returns the layer with the given number. Undeclared numbers resolve to
// an implicit unnamed layer.
func (b *Board) Layer(number int) geom.Layer {
	if l, ok := b.Layers[number]; ok {
		return l
	}
	return geom.ImplicitLayer(number)
}

// LayerNumbers returns the declared layer numbers in ascending order
func (b *Board) LayerNumbers() []int {
	numbers := make([]int, 0, len(b.Layers))
	for n := range b.Layers {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers
}

// Package returns the footprint with the given name, or nil if the libraries
// do not declare it
func (b *Board) Package(name string) *geom.Package {
	return b.Packages[name]
}

// Element finds a placement by instance name
func (b *Board) Element(name string) (geom.Element, bool) {
	for _, el := range b.Elements {
		if el.Name == name {
			return el, true
		}
	}
	return geom.Element{}, false
}

// Instances returns the shapes of el's package placed in board coordinates.
// An element whose package is missing has no shapes. Results are cached per
// placement and must not be modified.
func (b *Board) Instances(el geom.Element) []geom.Shape {
	pkg := b.Package(el.Package)
	if b.instances == nil {
		return transform.Instantiate(el, pkg)
	}
	return b.instances.Instances(el, pkg)
}

// Nets returns the net index built at parse time. Boards assembled by hand get
// a freshly built index on every call.
func (b *Board) Nets() *NetIndex {
	if b.nets == nil {
		return NewNetIndex(b)
	}
	return b.nets
}

// LayerShapes is the geometry drawn on one layer
type LayerShapes struct {
	Layer  geom.Layer   `json:"layer"`
	Shapes []geom.Shape `json:"shapes"`
}

// ShapesOnLayer returns the raw board shapes and the instanced footprint
// shapes drawn on the given layer, regardless of its visibility. Vias are
// reported on the Vias layer.
func (b *Board) ShapesOnLayer(number int) []geom.Shape {
	var shapes []geom.Shape
	b.eachShape(func(s geom.Shape) {
		if geom.LayerOf(s) == number {
			shapes = append(shapes, s)
		}
	})
	return shapes
}

// VisibleShapes groups every raw and instanced shape by layer, keeping only
// layers that are visible. Undeclared layers count as visible. Groups are
// ordered by layer number and empty layers are left out.
func (b *Board) VisibleShapes() []LayerShapes {
	byLayer := make(map[int][]geom.Shape)
	b.eachShape(func(s geom.Shape) {
		n := geom.LayerOf(s)
		byLayer[n] = append(byLayer[n], s)
	})

	numbers := make([]int, 0, len(byLayer))
	for n := range byLayer {
		if b.Layer(n).Visible {
			numbers = append(numbers, n)
		}
	}
	sort.Ints(numbers)

	groups := make([]LayerShapes, 0, len(numbers))
	for _, n := range numbers {
		groups = append(groups, LayerShapes{Layer: b.Layer(n), Shapes: byLayer[n]})
	}
	return groups
}

// eachShape visits raw shapes in drawing order (pours first, texts last),
// then the instanced shapes of each element in placement order.
func (b *Board) eachShape(fn func(geom.Shape)) {
	for _, p := range b.Polygons {
		fn(p)
	}
	for _, w := range b.Wires {
		fn(w)
	}
	for _, p := range b.Pads {
		fn(p)
	}
	for _, s := range b.SMDs {
		fn(s)
	}
	for _, c := range b.Circles {
		fn(c)
	}
	for _, r := range b.Rectangles {
		fn(r)
	}
	for _, v := range b.Vias {
		fn(v)
	}
	for _, t := range b.Texts {
		fn(t)
	}
	for _, el := range b.Elements {
		for _, s := range b.Instances(el) {
			fn(s)
		}
	}
}
