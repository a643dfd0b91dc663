package brd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// The converters below turn one decoded element into a geometry value. Any
// error means that single element is skipped by the caller.

func parseLayer(x xmlLayer) (geom.Layer, error) {
	var a attrReader
	number := a.integer("number", x.Number, 0)
	color := a.integer("color", x.Color, geom.DefaultLayerColor)
	if a.err != nil {
		return geom.Layer{}, a.err
	}

	name := x.Name
	if name == "" {
		name = fmt.Sprintf("L%d", number)
	}

	return geom.Layer{
		Number:  number,
		Name:    name,
		Color:   color,
		Visible: yesNo(x.Visible, true),
		Active:  yesNo(x.Active, true),
	}, nil
}

func parseWire(x xmlWire, kind geom.WireKind) (geom.Wire, error) {
	var a attrReader
	w := geom.Wire{
		Start: a.point("x1", x.X1, "y1", x.Y1),
		End:   a.point("x2", x.X2, "y2", x.Y2),
		Width: a.float("width", x.Width, defaultWireWidth),
		Layer: a.integer("layer", x.Layer, 0),
		Kind:  kind,
	}
	return w, a.err
}

func parseVia(x xmlVia) (geom.Via, error) {
	var a attrReader
	v := geom.Via{
		Position: a.point("x", x.X, "y", x.Y),
		Drill:    a.float("drill", x.Drill, 0),
		Diameter: a.float("diameter", x.Diameter, 0),
		Extent:   x.Extent,
	}
	return v, a.err
}

func parsePad(x xmlPad) (geom.Pad, error) {
	var a attrReader
	p := geom.Pad{
		Name:     x.Name,
		Position: a.point("x", x.X, "y", x.Y),
		Drill:    a.float("drill", x.Drill, 0),
		Diameter: a.float("diameter", x.Diameter, 0),
		Shape:    x.Shape,
		Layer:    a.integer("layer", x.Layer, geom.LayerPads),
		Rotation: a.angle(x.Rot),
	}
	if a.err != nil {
		return geom.Pad{}, a.err
	}

	if p.Shape == "" {
		p.Shape = defaultPadShape
	}
	// Non-round pads are drawn as a diameter-sized square before shaping
	if p.Shape != defaultPadShape {
		p.Size = geom.Size{DX: p.Diameter, DY: p.Diameter}
	}
	return p, nil
}

func parseSMD(x xmlSMD) (geom.SMD, error) {
	var a attrReader
	s := geom.SMD{
		Name:     x.Name,
		Position: a.point("x", x.X, "y", x.Y),
		Size: geom.Size{
			DX: a.float("dx", x.DX, 0),
			DY: a.float("dy", x.DY, 0),
		},
		Layer:     a.integer("layer", x.Layer, 0),
		Roundness: a.float("roundness", x.Roundness, 0),
		Rotation:  a.angle(x.Rot),
	}
	return s, a.err
}

func parseCircle(x xmlCircle) (geom.Circle, error) {
	var a attrReader
	c := geom.Circle{
		Center: a.point("x", x.X, "y", x.Y),
		Radius: a.float("radius", x.Radius, 0),
		Width:  a.float("width", x.Width, defaultCircleWidth),
		Layer:  a.integer("layer", x.Layer, 0),
	}
	return c, a.err
}

func parseRectangle(x xmlRectangle) (geom.Rectangle, error) {
	var a attrReader
	c1 := a.point("x1", x.X1, "y1", x.Y1)
	c2 := a.point("x2", x.X2, "y2", x.Y2)
	layer := a.integer("layer", x.Layer, 0)
	rot := a.angle(x.Rot)
	if a.err != nil {
		return geom.Rectangle{}, a.err
	}
	return geom.NewRectangle(c1, c2, layer, rot), nil
}

// parsePolygon returns an unclassified polygon with no net. A single bad
// vertex drops the whole polygon.
func parsePolygon(x xmlPolygon) (geom.Polygon, error) {
	var a attrReader
	p := geom.Polygon{
		Layer: a.integer("layer", x.Layer, 0),
		Width: a.float("width", x.Width, defaultPolygonWidth),
	}
	for i, v := range x.Vertices {
		pt := a.point("x", v.X, "y", v.Y)
		if a.err != nil {
			return geom.Polygon{}, fmt.Errorf("vertex %d: %w", i, a.err)
		}
		p.Vertices = append(p.Vertices, pt)
	}
	if a.err != nil {
		return geom.Polygon{}, a.err
	}
	if len(p.Vertices) < 3 {
		return geom.Polygon{}, fmt.Errorf("polygon has %d vertices, need at least 3", len(p.Vertices))
	}
	return p, nil
}

func parseText(x xmlText) (geom.Text, error) {
	var a attrReader
	t := geom.Text{
		Position: a.point("x", x.X, "y", x.Y),
		Value:    x.Value,
		Layer:    a.integer("layer", x.Layer, 0),
		Size:     a.float("size", x.Size, defaultTextSize),
		Rotation: a.angle(x.Rot),
	}
	return t, a.err
}

func parseElement(x xmlElement) (geom.Element, error) {
	var a attrReader
	pos := a.point("x", x.X, "y", x.Y)
	if a.err != nil {
		return geom.Element{}, a.err
	}
	rot, err := parseRotation(x.Rot)
	if err != nil {
		return geom.Element{}, err
	}
	return geom.Element{
		Name:     x.Name,
		Value:    x.Value,
		Library:  x.Library,
		Package:  x.Package,
		Position: pos,
		Rotation: rot,
	}, nil
}

// classify sets the polygon's net and derives its rendering flags:
// the Dimension layer is an outline and never filled, any other polygon with a
// net is a copper pour.
func classify(p geom.Polygon, net string) geom.Polygon {
	p.Net = net
	p.Outline = p.Layer == geom.LayerDimension
	p.Fill = net != "" && !p.Outline
	return p
}
