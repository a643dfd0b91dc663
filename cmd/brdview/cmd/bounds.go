package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// boundsReport is the board extent with derived size
type boundsReport struct {
	Min    geom.Point `json:"min"`
	Max    geom.Point `json:"max"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Center geom.Point `json:"center"`
}

func newBoundsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <board_file>",
		Short: "Show board extents",
		Long: `Print the tight bounding box of the board: raw copper and drawing, element
origins and every placed footprint shape. A board with no geometry reports
(0, 0) - (100, 100).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			bb := board.Bounds
			report := boundsReport{
				Min:    bb.Min,
				Max:    bb.Max,
				Width:  bb.Width(),
				Height: bb.Height(),
				Center: bb.Center(),
			}

			p := newPrinter(cmd, opts)
			if p.json() {
				return p.writeJSON(report)
			}

			p.field("Min", formatPoint(report.Min))
			p.field("Max", formatPoint(report.Max))
			p.field("Size", p.styles.number.Render(formatSize(report.Width, report.Height)))
			p.field("Center", formatPoint(report.Center))
			return nil
		},
	}
}

func formatSize(w, h float64) string {
	return fmt.Sprintf("%.2f x %.2f mm", w, h)
}
