package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/transform"
)

// layerRow is a declared layer with the number of shapes drawn on it
type layerRow struct {
	geom.Layer
	Shapes int `json:"shapes"`
}

func newLayersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layers <board_file>",
		Short: "List declared layers",
		Long: `List the layers declared by a board, ordered by number.

The Flip column names the layer a mirrored footprint moves each layer to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			layers := make([]layerRow, 0, len(board.Layers))
			for _, n := range board.LayerNumbers() {
				layers = append(layers, layerRow{
					Layer:  board.Layer(n),
					Shapes: len(board.ShapesOnLayer(n)),
				})
			}

			p := newPrinter(cmd, opts)
			if p.json() {
				return p.writeJSON(layers)
			}

			p.printf("Board: %d layers\n\n", len(layers))
			p.printf("%6s  %-16s %5s %7s %6s %4s %6s\n", "Number", "Name", "Color", "Visible", "Active", "Flip", "Shapes")
			p.println(rule)
			for _, l := range layers {
				flip := ""
				if f := transform.FlipLayer(l.Number); f != l.Number {
					flip = fmt.Sprint(f)
				}
				name := p.styles.value.Render(fmt.Sprintf("%-16s", l.Name))
				if !l.Visible {
					name = p.styles.dim.Render(fmt.Sprintf("%-16s", l.Name))
				}
				p.printf("%6d  %s %5d %7s %6s %4s %6d\n",
					l.Number, name, l.Color, yesNo(l.Visible), yesNo(l.Active), flip, l.Shapes)
			}
			return nil
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
