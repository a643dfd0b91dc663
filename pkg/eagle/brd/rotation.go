package brd

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// rotationLexer tokenizes EAGLE rotation descriptors such as "R90", "MR180"
// or "SR45.5"
var rotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Mirror", Pattern: `M`},
	{Name: "Spin", Pattern: `S`},
	{Name: "Rot", Pattern: `R`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
})

// rotationDescriptor is the grammar [M][S][R]<degrees>. The M and S flags may
// appear in either order.
type rotationDescriptor struct {
	Flags []string `parser:"@(Mirror | Spin)*"`
	Angle float64  `parser:"Rot? @Number?"`
}

func (d *rotationDescriptor) rotation() geom.Rotation {
	r := geom.Rotation{Angle: d.Angle}
	for _, f := range d.Flags {
		switch f {
		case "M":
			r.Mirror = true
		case "S":
			r.Spin = true
		}
	}
	return r
}

var rotationParser = participle.MustBuild[rotationDescriptor](
	participle.Lexer(rotationLexer),
	participle.Elide("Whitespace"),
)

// parseRotation turns a descriptor into a Rotation. An empty descriptor is the
// identity.
func parseRotation(s string) (geom.Rotation, error) {
	if strings.TrimSpace(s) == "" {
		return geom.Rotation{}, nil
	}

	d, err := rotationParser.ParseString("", s)
	if err != nil {
		return geom.Rotation{}, fmt.Errorf("invalid rotation %q: %w", s, err)
	}

	return d.rotation(), nil
}

// shapeAngle is the rotation of a primitive inside a package or on the board.
// Only the angle matters there; a mirror flag on a primitive is ignored.
func shapeAngle(s string) (float64, error) {
	r, err := parseRotation(s)
	if err != nil {
		return 0, err
	}
	return r.Angle, nil
}
