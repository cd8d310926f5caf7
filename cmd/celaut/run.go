package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/san-kum/celaut/internal/celaut"
	"github.com/san-kum/celaut/internal/codec"
	"github.com/san-kum/celaut/internal/config"
)

// run is one fully resolved evolution: a table, an initial universe and
// the driver that owns it.
type run struct {
	id     string
	cfg    *config.Config
	seed   int64
	table  *celaut.Table
	driver *celaut.Driver
	log    *slog.Logger
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

// loadConfig layers defaults, preset, config file, environment and flags, in
// that order. A positional table argument wins over every other source.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if !cfg.ApplyPreset(preset) {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := cfg.LoadFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("states") {
		cfg.States = states
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("indexing") {
		cfg.Indexing = indexing
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("universe") {
		cfg.Universe = universeSrc
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Lookup("scale") != nil && flags.Changed("scale") {
		cfg.Scale = scale
	}

	if len(args) > 0 {
		cfg.Table = strings.TrimSpace(args[0])
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRun resolves the table and universe of cfg. A generated table is
// printed to stdout so the run can be reproduced.
func newRun(cmd *cobra.Command, cfg *config.Config) (*run, error) {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	r := &run{id: uuid.NewString(), cfg: cfg, seed: cfg.Seed}
	if r.seed == 0 {
		r.seed = time.Now().UnixNano()
	}
	r.log = log.With("run", r.id)

	ix, err := cfg.IndexingMode()
	if err != nil {
		return nil, err
	}
	rng := celaut.NewRand(r.seed)

	if cfg.Table != "" {
		r.table, err = codec.DecodeTable(cfg.Table, cfg.States, ix)
		if err != nil {
			return nil, err
		}
	} else {
		r.table, err = celaut.RandomTable(rng, cfg.States, ix)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), codec.EncodeTable(r.table))
	}

	if printJSON {
		data, err := codec.MarshalTableJSON(r.table)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	var cells celaut.Universe
	if cfg.Universe != "" {
		cells, err = codec.DecodeUniverse(cfg.Universe, cfg.States, cfg.Width)
		if err != nil {
			return nil, fmt.Errorf("universe: %w", err)
		}
	} else {
		cells = celaut.RandomUniverse(rng, cfg.States, cfg.Width)
	}

	a, err := celaut.NewAutomaton(cfg.States, cells)
	if err != nil {
		return nil, err
	}
	r.driver, err = celaut.NewDriver(a, r.table, cfg.GenerationCount())
	if err != nil {
		return nil, err
	}

	r.log.Debug("run configured",
		"states", cfg.States,
		"width", cfg.Width,
		"generations", cfg.GenerationCount(),
		"indexing", ix.String(),
		"seed", r.seed,
		"table", codec.EncodeTable(r.table),
	)
	return r, nil
}

// evolve drives the run to completion into sink.
func (r *run) evolve(sink celaut.Sink) error {
	start := time.Now()
	if err := r.driver.Run(sink); err != nil {
		return err
	}
	r.log.Debug("evolution complete", "generations", r.driver.Row(), "elapsed", time.Since(start))
	return nil
}
