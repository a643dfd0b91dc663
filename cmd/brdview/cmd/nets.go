package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/brd"
)

// netSummary is one row of the net listing
type netSummary struct {
	Name     string `json:"name"`
	Wires    int    `json:"wires"`
	Vias     int    `json:"vias"`
	Polygons int    `json:"polygons"`
}

// netDetail is the full membership of one net
type netDetail struct {
	Name string `json:"name"`
	brd.NetMembers
}

func newNetsCmd(opts *options) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "nets <board_file> [net_name]",
		Short: "Show board net information",
		Long: `Display information about nets in an EAGLE board.

Without net_name: Lists all nets with wire/via/polygon counts
With net_name: Shows every member of that net (exact, case-sensitive match)

--filter keeps nets whose name contains the text, ignoring case.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd, opts)
			if len(args) >= 2 {
				return showNetDetails(p, board, args[1])
			}
			return listAllNets(p, board, filter)
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only list nets whose name contains this text (case-insensitive)")
	return cmd
}

// filterNets keeps the names containing q, ignoring case
func filterNets(names []string, q string) []string {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return names
	}
	var out []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

func listAllNets(p *printer, board *brd.Board, filter string) error {
	idx := board.Nets()
	all := idx.Names()
	names := filterNets(all, filter)

	rows := make([]netSummary, 0, len(names))
	for _, name := range names {
		m := idx.Members(name)
		rows = append(rows, netSummary{
			Name:     name,
			Wires:    len(m.Wires),
			Vias:     len(m.Vias),
			Polygons: len(m.Polygons),
		})
	}

	if p.json() {
		return p.writeJSON(rows)
	}

	if len(names) == len(all) {
		p.printf("Board: %d nets\n\n", len(rows))
	} else {
		p.printf("Board: %d of %d nets matching '%s'\n\n", len(rows), len(all), filter)
	}
	p.printf("%-30s %6s %6s %8s\n", "Net Name", "Wires", "Vias", "Polygons")
	p.println(rule)
	for _, r := range rows {
		p.printf("%s %6d %6d %8d\n",
			p.styles.value.Render(fmt.Sprintf("%-30s", r.Name)),
			r.Wires, r.Vias, r.Polygons)
	}
	return nil
}

func showNetDetails(p *printer, board *brd.Board, netName string) error {
	idx := board.Nets()
	if !idx.Has(netName) {
		return fmt.Errorf("net '%s' not found", netName)
	}
	m := idx.Members(netName)

	if p.json() {
		return p.writeJSON(netDetail{Name: netName, NetMembers: m})
	}

	p.println(p.styles.title.Render(fmt.Sprintf("Net: %s (%d members)", netName, m.Count())))

	p.printf("\nWires (%d):\n", len(m.Wires))
	for i, w := range m.Wires {
		p.printf("  Wire %d: %.2f mm wide on %s from %s to %s\n",
			i+1, w.Width, layerName(board, w.Layer),
			formatPoint(w.Start), formatPoint(w.End))
	}

	p.printf("\nVias (%d):\n", len(m.Vias))
	for i, v := range m.Vias {
		p.printf("  Via %d: %.2f mm diameter, %.2f mm drill at %s",
			i+1, v.Diameter, v.Drill, formatPoint(v.Position))
		if v.Extent != "" {
			p.printf(" spanning %s", v.Extent)
		}
		p.println()
	}

	p.printf("\nPolygons (%d):\n", len(m.Polygons))
	for i, poly := range m.Polygons {
		kind := p.styles.dim.Render("unfilled")
		switch {
		case poly.Fill:
			kind = p.styles.fill.Render("pour")
		case poly.Outline:
			kind = p.styles.dim.Render("outline")
		}
		p.printf("  Polygon %d: %s on %s, %d vertices\n",
			i+1, kind, layerName(board, poly.Layer), len(poly.Vertices))
	}

	return nil
}
