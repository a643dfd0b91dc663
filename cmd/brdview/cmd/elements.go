package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/brd"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

// elementRow is one placement in the component listing
type elementRow struct {
	geom.Element
	Side   string `json:"side"`
	Shapes int    `json:"shapes"`
}

func newElementsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "elements <board_file> [filter]",
		Short: "List component placements",
		Long: `List every element on the board with its value, package, position and side.

The optional filter keeps elements whose name, value or package contains it,
ignoring case.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := loadBoard(cmd, args[0])
			if err != nil {
				return err
			}

			filter := ""
			if len(args) >= 2 {
				filter = args[1]
			}
			rows := listElements(board, filter)

			p := newPrinter(cmd, opts)
			if p.json() {
				return p.writeJSON(rows)
			}

			p.printf("Board: %d of %d elements\n\n", len(rows), len(board.Elements))
			p.printf("%-10s %-10s %-12s %-20s %-8s %-6s %6s\n",
				"Name", "Value", "Package", "Position", "Rotation", "Side", "Shapes")
			p.println(rule)
			for _, r := range rows {
				shapes := fmt.Sprintf("%6d", r.Shapes)
				if board.Package(r.Package) == nil {
					shapes = p.styles.warning.Render(fmt.Sprintf("%6s", "-"))
				}
				p.printf("%s %-10s %-12s %-20s %-8s %-6s %s\n",
					p.styles.value.Render(fmt.Sprintf("%-10s", r.Name)),
					r.Value, r.Package, formatPoint(r.Position), r.Rotation, r.Side, shapes)
			}
			return nil
		},
	}
}

// listElements returns the placements matching filter in board order
func listElements(board *brd.Board, filter string) []elementRow {
	rows := []elementRow{}
	for _, el := range board.Elements {
		if !matchElement(el, filter) {
			continue
		}
		rows = append(rows, elementRow{
			Element: el,
			Side:    side(el),
			Shapes:  len(board.Instances(el)),
		})
	}
	return rows
}

// matchElement is a case-insensitive substring match on name, value and package
func matchElement(el geom.Element, filter string) bool {
	q := strings.ToLower(strings.TrimSpace(filter))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(el.Name), q) ||
		strings.Contains(strings.ToLower(el.Value), q) ||
		strings.Contains(strings.ToLower(el.Package), q)
}

func side(el geom.Element) string {
	if el.Mirrored() {
		return "bottom"
	}
	return "top"
}
