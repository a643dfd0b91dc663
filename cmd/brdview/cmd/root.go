package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceBRD/internal/config"
	"github.com/OpenTraceLab/OpenTraceBRD/internal/logging"
	"github.com/OpenTraceLab/OpenTraceBRD/pkg/eagle/brd"
)

// options holds global flags and the settings resolved from them
type options struct {
	cfgFile string
	verbose bool
	format  string

	settings *config.Settings
}

// NewRootCmd builds the brdview command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "brdview",
		Short: "brdview - EAGLE board inspection",
		Long: `brdview parses EAGLE .brd files into a normalized board model and reports on it:
  - layers, packages, placements and routed copper
  - nets and their wires, vias and polygon pours
  - board extents including every placed footprint

Examples:
  brdview info board.brd                # Summary counts and size
  brdview nets board.brd GND            # Members of one net
  brdview instance board.brd U1         # Footprint of U1 in board space
  brdview elements board.brd sot        # Placements matching "sot"
  brdview nets board.brd --filter gnd   # Nets whose name contains "gnd"
  brdview shapes board.brd 16           # Everything on the bottom copper
  brdview --format json layers board.brd`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default ./brdview.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output, including skipped elements")
	root.PersistentFlags().StringVar(&opts.format, "format", config.FormatText, "output format: text or json")

	root.AddCommand(newInfoCmd(opts))
	root.AddCommand(newLayersCmd(opts))
	root.AddCommand(newNetsCmd(opts))
	root.AddCommand(newBoundsCmd(opts))
	root.AddCommand(newInstanceCmd(opts))
	root.AddCommand(newElementsCmd(opts))
	root.AddCommand(newShapesCmd(opts))

	return root
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, newStyles(os.Stderr, true).errorLine(err))
		os.Exit(1)
	}
}

// resolve merges config file, environment and flags, then installs the logger
func (o *options) resolve(cmd *cobra.Command) error {
	s, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}

	// Explicit flags win over file and environment
	if cmd.Flags().Changed("verbose") {
		s.Verbose = o.verbose
	}
	if cmd.Flags().Changed("format") {
		s.Format = o.format
		if err := s.Validate(); err != nil {
			return err
		}
	}
	o.settings = s

	logger := logging.New(cmd.ErrOrStderr(), logging.Level(s.Verbose))
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	return nil
}

// loadBoard parses filename, logging skipped elements at debug level
func loadBoard(cmd *cobra.Command, filename string) (*brd.Board, error) {
	logger := logging.FromContext(cmd.Context())
	start := time.Now()

	board, err := brd.NewParser(brd.WithLogger(logger)).ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error parsing board: %w", err)
	}

	logger.Info("loaded board",
		"file", filename,
		"elements", len(board.Elements),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return board, nil
}
