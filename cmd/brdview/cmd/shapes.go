package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// layerReport is the geometry of one layer in board coordinates
type layerReport struct {
	Layer  geom.Layer       `json:"layer"`
	Shapes []instancedShape `json:"shapes"`
}

func newShapesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shapes <board_file> [layer]",
		Short: "List geometry by layer",
		Long: `List board geometry in board coordinates, footprints included.

Without layer: every visible layer with its shapes
With layer: the shapes on that layer number, visible or not`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			var reports []layerReport
			if len(args) >= 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid layer number '%s'", args[1])
				}
				reports = []layerReport{newLayerReport(board.Layer(n), board.ShapesOnLayer(n))}
			} else {
				for _, g := range board.VisibleShapes() {
					reports = append(reports, newLayerReport(g.Layer, g.Shapes))
				}
			}

			p := newPrinter(cmd, opts)
			if p.json() {
				return p.writeJSON(reports)
			}

			for i, r := range reports {
				if i > 0 {
					p.println()
				}
				p.println(p.styles.title.Render(fmt.Sprintf("Layer %d %s (%d shapes)",
					r.Layer.Number, layerName(board, r.Layer.Number), len(r.Shapes))))
				for _, s := range r.Shapes {
					p.printf("  %-9s %s\n", s.Kind, formatPoints(s.Shape.Points()))
				}
			}
			return nil
		},
	}
}

func newLayerReport(layer geom.Layer, shapes []geom.Shape) layerReport {
	return layerReport{Layer: layer, Shapes: describeShapes(shapes)}
}

// describeShapes tags each shape with its kind and layer for output
func describeShapes(shapes []geom.Shape) []instancedShape {
	out := make([]instancedShape, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, instancedShape{
			Kind:  geom.KindOf(s),
			Layer: geom.LayerOf(s),
			Shape: s,
		})
	}
	return out
}
