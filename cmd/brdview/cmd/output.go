package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/internal/config"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/brd"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/geom"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles
	colorGreen  = lipgloss.Color("35")  // Green - filled
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

const rule = "─────────────────────────────────────────────────────────"

// styles renders text output. With color off every style is a no-op.
type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	number  lipgloss.Style
	dim     lipgloss.Style
	fill    lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		plain := r.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		label:   r.NewStyle().Foreground(colorDim),
		value:   r.NewStyle().Foreground(colorWhite),
		number:  r.NewStyle().Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		fill:    r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		err:     r.NewStyle().Foreground(colorRed),
	}
}

func (s styles) errorLine(err error) string {
	return s.err.Render("✗ " + err.Error())
}

// printer writes command output in the configured format
type printer struct {
	out    io.Writer
	format string
	styles styles
}

func newPrinter(cmd *cobra.Command, opts *options) *printer {
	s := opts.settings
	if s == nil {
		s = config.Default()
	}
	out := cmd.OutOrStdout()
	return &printer{
		out:    out,
		format: s.Format,
		styles: newStyles(out, s.Color),
	}
}

func (p *printer) json() bool {
	return p.format == config.FormatJSON
}

func (p *printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// field prints an aligned "label: value" row
func (p *printer) field(label string, value any) {
	p.printf("  %s %s\n",
		p.styles.label.Render(fmt.Sprintf("%-12s", label+":")),
		p.styles.value.Render(fmt.Sprint(value)))
}

func formatPoint(pt geom.Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", pt.X, pt.Y)
}

func formatPoints(pts []geom.Point) string {
	parts := make([]string, len(pts))
	for i, pt := range pts {
		parts[i] = formatPoint(pt)
	}
	return strings.Join(parts, " ")
}

// layerName falls back to the layer number for undeclared, unnamed layers
func layerName(b *brd.Board, number int) string {
	if name := b.Layer(number).Name; name != "" {
		return name
	}
	return fmt.Sprintf("#%d", number)
}
