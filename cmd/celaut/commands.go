package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/celaut/internal/batch"
	"github.com/san-kum/celaut/internal/celaut"
	"github.com/san-kum/celaut/internal/codec"
	"github.com/san-kum/celaut/internal/config"
	"github.com/san-kum/celaut/internal/metrics"
	"github.com/san-kum/celaut/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))
)

func renderImage(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := newRun(cmd, cfg)
	if err != nil {
		return err
	}

	height := cfg.GenerationCount()
	switch cfg.OutputFormat() {
	case config.FormatSVG:
		svg := render.NewSVG(cfg.Width, height, cfg.States, cfg.Scale)
		if err := r.evolve(svg); err != nil {
			return err
		}
		if err := render.WriteFile(cfg.Output, svg.Bytes()); err != nil {
			return err
		}
	default:
		gray := render.NewGray(cfg.Width, height, cfg.States)
		if err := r.evolve(gray); err != nil {
			return err
		}
		if err := render.WritePNG(cfg.Output, gray.Image(), cfg.Scale); err != nil {
			return err
		}
	}

	r.log.Info("image written", "path", cfg.Output, "format", cfg.OutputFormat(), "width", cfg.Width, "generations", height)
	return nil
}

func previewEvolution(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := newRun(cmd, cfg)
	if err != nil {
		return err
	}

	term := render.NewTerminal(cfg.Width, cfg.GenerationCount(), cfg.States)
	if err := r.evolve(term); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if digits {
		fmt.Fprint(out, term.Digits())
		return nil
	}
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("celaut %s", codec.EncodeTable(r.table))))
	fmt.Fprint(out, term.String())
	fmt.Fprintln(out, subtleStyle.Render(fmt.Sprintf("states=%d width=%d generations=%d indexing=%s seed=%d",
		cfg.States, cfg.Width, cfg.GenerationCount(), cfg.Indexing, r.seed)))
	return nil
}

func plotMetrics(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := newRun(cmd, cfg)
	if err != nil {
		return err
	}

	series := metrics.Default(cfg.States)
	for _, s := range series {
		r.driver.AddObserver(s)
	}
	if err := r.evolve(celaut.Discard); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "table: %s\n", codec.EncodeTable(r.table))
	fmt.Fprintf(out, "generations: %d\n\n", r.driver.Row())

	for _, s := range series {
		graph := asciigraph.Plot(s.Values(),
			asciigraph.Height(plotHeight),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s (mean %.4f)", s.Name(), s.Mean())),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}
	r, err := newRun(cmd, cfg)
	if err != nil {
		return err
	}

	e := &batch.Ensemble{
		Table:       r.table,
		Width:       cfg.Width,
		Generations: cfg.GenerationCount(),
		Runs:        runs,
		SeedStart:   r.seed,
		Workers:     workers,
	}
	results, err := e.Run(cmd.Context())
	if err != nil {
		return err
	}

	names := []string{"density", "activity", "entropy"}
	totals := make(map[string]float64, len(names))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSEED\tDENSITY\tACTIVITY\tENTROPY")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%d", res.Run, res.Seed)
		for _, name := range names {
			fmt.Fprintf(w, "\t%.4f", res.Means[name])
			totals[name] += res.Means[name]
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "mean\t")
	for _, name := range names {
		fmt.Fprintf(w, "\t%.4f", totals[name]/float64(len(results)))
	}
	fmt.Fprintln(w)

	r.log.Info("batch complete", "runs", len(results))
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATES\tWIDTH\tINDEXING\tTABLE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		table := p.Table
		if table == "" {
			table = "(random)"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", name, p.States, p.Width, p.Indexing, table)
	}
	return w.Flush()
}

// convertTable converts json to grid or grid to json, detected from the
// first character of the argument.
func convertTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}
	ix, err := cfg.IndexingMode()
	if err != nil {
		return err
	}

	src := strings.TrimSpace(args[0])
	if src == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		src = strings.TrimSpace(string(data))
	}

	out := cmd.OutOrStdout()
	if strings.HasPrefix(src, "{") {
		grid, err := codec.GridFromJSON([]byte(src), cfg.States, ix)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, grid)
		return nil
	}

	data, err := codec.JSONFromGrid(src, cfg.States, ix)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}
