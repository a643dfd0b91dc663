package geom

// Package is a reusable footprint: shapes in package-local coordinates with the
// origin at the component reference point, unrotated and unmirrored.
type Package struct {
	Name    string  // Package name (lookup key)
	Library string  // Library the package was declared in
	Shapes  []Shape // Ordered shapes
}

// Element is a placement of a Package on the board
type Element struct {
	Name     string   `json:"name"`    // Instance name (e.g., "R1")
	Value    string   `json:"value"`   // Component value (e.g., "10k")
	Library  string   `json:"library"` // Source library
	Package  string   `json:"package"` // Package name
	Position Point    `json:"position"`
	Rotation Rotation `json:"rotation"`
}

// Mirrored reports whether the element sits on the bottom face
func (e Element) Mirrored() bool {
	return e.Rotation.Mirror
}
