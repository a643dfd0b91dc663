package transform

import "github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"

// Instantiate returns the shapes of pkg placed by el, in board coordinates.
// A nil package (not found in the library) yields no shapes. The package is
// never modified; every returned shape is a fresh copy.
func Instantiate(el geom.Element, pkg *geom.Package) []geom.Shape {
	if pkg == nil || len(pkg.Shapes) == 0 {
		return nil
	}

	t := ForElement(el)
	out := make([]geom.Shape, 0, len(pkg.Shapes))
	for _, s := range pkg.Shapes {
		out = append(out, t.Shape(s))
	}
	return out
}

// Shape returns a copy of s mapped through the transform
func (t Transform) Shape(s geom.Shape) geom.Shape {
	switch v := s.(type) {
	case geom.Wire:
		v.Start = t.Apply(v.Start)
		v.End = t.Apply(v.End)
		v.Layer = t.Layer(v.Layer)
		return v

	case geom.Pad:
		v.Position = t.Apply(v.Position)
		v.Rotation = t.Angle(v.Rotation)
		v.Layer = t.Layer(v.Layer)
		return v

	case geom.SMD:
		v.Position = t.Apply(v.Position)
		v.Rotation = t.Angle(v.Rotation)
		v.Layer = t.Layer(v.Layer)
		return v

	case geom.Circle:
		v.Center = t.Apply(v.Center)
		v.Layer = t.Layer(v.Layer)
		return v

	case geom.Rectangle:
		// Each corner goes through mirror+rotate+translate on its own; the
		// result is generally not axis-aligned.
		v.Corner1 = t.Apply(v.Corner1)
		v.Corner2 = t.Apply(v.Corner2)
		for i := range v.Corners {
			v.Corners[i] = t.Apply(v.Corners[i])
		}
		v.Rotation = t.Angle(v.Rotation)
		v.Layer = t.Layer(v.Layer)
		return v

	case geom.Polygon:
		v.Vertices = t.ApplyAll(v.Vertices)
		v.Layer = t.Layer(v.Layer)
		return v

	case geom.Via:
		v.Position = t.Apply(v.Position)
		return v

	case geom.Text:
		v.Position = t.Apply(v.Position)
		v.Rotation = t.Angle(v.Rotation)
		v.Layer = t.Layer(v.Layer)
		return v

	default:
		return s
	}
}
