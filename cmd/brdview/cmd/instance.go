package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/internal/logging"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// instancedShape is one footprint shape in board coordinates
type instancedShape struct {
	Kind  string     `json:"kind"`
	Layer int        `json:"layer"`
	Shape geom.Shape `json:"shape"`
}

// instanceReport is a placement with its instanced footprint
type instanceReport struct {
	Element geom.Element      `json:"element"`
	Found   bool              `json:"package_found"`
	Side    string            `json:"side"`
	Extent  *geom.BoundingBox `json:"extent,omitempty"`
	Shapes  []instancedShape  `json:"shapes"`
}

func newInstanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "instance <board_file> <element>",
		Short: "Show an element's footprint in board coordinates",
		Long: `Place the element's library package at its position, rotation and mirror and
list the resulting shapes. Mirrored elements report their layers already
moved to the opposite board face.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			el, ok := board.Element(args[1])
			if !ok {
				return fmt.Errorf("element '%s' not found", args[1])
			}

			shapes := board.Instances(el)
			report := instanceReport{
				Element: el,
				Found:   board.Package(el.Package) != nil,
				Side:    side(el),
				Shapes:  describeShapes(shapes),
			}
			if !report.Found {
				logging.FromContext(cmd.Context()).Warn("package not found in libraries", "element", el.Name, "package", el.Package)
			}
			if extent := geom.BoundsOf(shapes); !extent.IsEmpty() {
				report.Extent = &extent
			}

			p := newPrinter(cmd, opts)
			if p.json() {
				return p.writeJSON(report)
			}

			p.println(p.styles.title.Render(fmt.Sprintf("%s (%s, %s) at %s",
				el.Name, el.Package, el.Rotation, formatPoint(el.Position))))
			if !report.Found {
				p.println(p.styles.warning.Render("  ! package " + el.Package + " not found"))
				return nil
			}
			p.field("Side", report.Side)
			if report.Extent != nil {
				p.field("Extent", formatPoint(report.Extent.Min)+" - "+formatPoint(report.Extent.Max))
			}
			p.printf("\nShapes (%d):\n", len(report.Shapes))
			for _, s := range report.Shapes {
				p.printf("  %-9s %-10s %s\n",
					s.Kind,
					layerName(board, s.Layer),
					formatPoints(s.Shape.Points()))
			}
			return nil
		},
	}
}
