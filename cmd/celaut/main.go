package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/celaut/internal/config"
)

var (
	configFile  string
	preset      string
	states      int
	width       int
	generations int
	indexing    string
	seed        int64
	universeSrc string
	logLevel    string
	printJSON   bool
	// render
	output string
	format string
	scale  int
	// preview
	digits bool
	// plot
	plotHeight int
	// batch
	runs    int
	workers int
)

// main executes the root command. Any command error exits the process with
// status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "celaut [table]",
		Short: "one-dimensional cellular automaton renderer",
		Long: `Evolve a one-dimensional cellular automaton whose rule is a neighbour
relation lookup table, and render the history as a grayscale image.

Without a table argument a random table is generated and its encoding is
printed to stdout. With one argument the argument is decoded as the table.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         renderImage,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&states, "states", config.DefaultStates, "number of cell states (K)")
	pf.IntVar(&width, "width", config.DefaultWidth, "universe width (N)")
	pf.IntVar(&generations, "generations", 0, "generations to run (0: same as width)")
	pf.StringVar(&indexing, "indexing", config.DefaultIndexing, "table indexing (difference|comparison)")
	pf.Int64Var(&seed, "seed", 0, "random seed (0: time based)")
	pf.StringVar(&universeSrc, "universe", "", "initial universe as digits (default random)")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug|info|warn|error)")
	pf.BoolVar(&printJSON, "json", false, "also print the table as json")

	rootCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "output image path")
	rootCmd.Flags().StringVar(&format, "format", "", "output format (png|svg, default from extension)")
	rootCmd.Flags().IntVar(&scale, "scale", config.DefaultScale, "pixels per cell")

	previewCmd := &cobra.Command{
		Use:   "preview [table]",
		Short: "render the evolution in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  previewEvolution,
	}
	previewCmd.Flags().BoolVar(&digits, "digits", false, "print state digits instead of shaded blocks")

	plotCmd := &cobra.Command{
		Use:   "plot [table]",
		Short: "plot density, activity and entropy per generation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotMetrics,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	batchCmd := &cobra.Command{
		Use:   "batch [table]",
		Short: "run many random universes against one table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&runs, "runs", 16, "number of runs")
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent runs (0: GOMAXPROCS)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	convertCmd := &cobra.Command{
		Use:   "convert <table>",
		Short: "convert a table between the json and grid encodings",
		Long: `Convert a table between the json and grid encodings. Input starting
with "{" is read as json, anything else as a grid; "-" reads stdin.

Json documents without an "indexing" key are read with --indexing. For
comparison indexing such documents use the legacy tbl[right][left] layout and
are transposed to tbl[left][right]. Json output always carries "indexing" and
uses tbl[left][right].`,
		Args:  cobra.ExactArgs(1),
		RunE:  convertTable,
	}

	rootCmd.AddCommand(previewCmd, plotCmd, batchCmd, presetsCmd, convertCmd)
	return rootCmd
}
