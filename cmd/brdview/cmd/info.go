package cmd

import (
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/brd"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// infoReport summarizes a parsed board
type infoReport struct {
	File       string           `json:"file"`
	Layers     int              `json:"layers"`
	Packages   int              `json:"packages"`
	Elements   int              `json:"elements"`
	Wires      int              `json:"wires"`
	Vias       int              `json:"vias"`
	Pads       int              `json:"pads"`
	SMDs       int              `json:"smds"`
	Circles    int              `json:"circles"`
	Rectangles int              `json:"rectangles"`
	Polygons   int              `json:"polygons"`
	Texts      int              `json:"texts"`
	Nets       int              `json:"nets"`
	Bounds     geom.BoundingBox `json:"bounds"`
}

func newInfoReport(filename string, b *brd.Board) infoReport {
	return infoReport{
		File:       filename,
		Layers:     len(b.Layers),
		Packages:   len(b.Packages),
		Elements:   len(b.Elements),
		Wires:      len(b.Wires),
		Vias:       len(b.Vias),
		Pads:       len(b.Pads),
		SMDs:       len(b.SMDs),
		Circles:    len(b.Circles),
		Rectangles: len(b.Rectangles),
		Polygons:   len(b.Polygons),
		Texts:      len(b.Texts),
		Nets:       len(b.Nets().Names()),
		Bounds:     b.Bounds,
	}
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <board_file>",
		Short: "Show board summary",
		Long:  `Display counts of every record kind in an EAGLE board and its overall size.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd, opts)
			report := newInfoReport(args[0], board)
			if p.json() {
				return p.writeJSON(report)
			}

			p.println(p.styles.title.Render("Board: " + report.File))
			p.field("Layers", report.Layers)
			p.field("Packages", report.Packages)
			p.field("Elements", report.Elements)
			p.field("Wires", report.Wires)
			p.field("Vias", report.Vias)
			p.field("Pads", report.Pads)
			p.field("SMDs", report.SMDs)
			p.field("Circles", report.Circles)
			p.field("Rectangles", report.Rectangles)
			p.field("Polygons", report.Polygons)
			p.field("Texts", report.Texts)
			p.field("Nets", report.Nets)
			p.printf("  %s %.2f x %.2f mm\n", p.styles.label.Render("Board size: "), report.Bounds.Width(), report.Bounds.Height())
			p.printf("  %s %s\n", p.styles.label.Render("Bounds:     "), report.Bounds)
			return nil
		},
	}
}
