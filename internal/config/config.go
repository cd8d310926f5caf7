package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/celaut/internal/celaut"
)

const (
	DefaultStates   = 4
	DefaultWidth    = 128
	DefaultIndexing = "difference"
	DefaultOutput   = "celaut.png"
	DefaultScale    = 1
	DefaultLogLevel = "info"
)

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Config describes one run. Generations 0 means a square image (one
// generation per cell of width); Seed 0 means a time based seed.
type Config struct {
	States      int    `yaml:"states" env:"STATES"`
	Width       int    `yaml:"width" env:"WIDTH"`
	Generations int    `yaml:"generations" env:"GENERATIONS"`
	Indexing    string `yaml:"indexing" env:"INDEXING"`
	Seed        int64  `yaml:"seed" env:"SEED"`
	Table       string `yaml:"table,omitempty" env:"TABLE"`
	Universe    string `yaml:"universe,omitempty" env:"UNIVERSE"`
	Output      string `yaml:"output" env:"OUTPUT"`
	Format      string `yaml:"format,omitempty" env:"FORMAT"`
	Scale       int    `yaml:"scale" env:"SCALE"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
}

func DefaultConfig() *Config {
	return &Config{
		States:   DefaultStates,
		Width:    DefaultWidth,
		Indexing: DefaultIndexing,
		Output:   DefaultOutput,
		Scale:    DefaultScale,
		LogLevel: DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.LoadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays CELAUT_* environment variables onto c. Unset variables
// leave fields untouched.
func (c *Config) ApplyEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: "CELAUT_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// GenerationCount resolves the number of generations to run.
func (c *Config) GenerationCount() int {
	if c.Generations > 0 {
		return c.Generations
	}
	return c.Width
}

func (c *Config) IndexingMode() (celaut.Indexing, error) {
	return celaut.ParseIndexing(c.Indexing)
}

// OutputFormat returns Format, or the format implied by the output file
// extension.
func (c *Config) OutputFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	if strings.EqualFold(filepath.Ext(c.Output), ".svg") {
		return FormatSVG
	}
	return FormatPNG
}

func (c *Config) Validate() error {
	if err := celaut.ValidateStates(c.States); err != nil {
		return err
	}
	if c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", c.Width)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if _, err := c.IndexingMode(); err != nil {
		return err
	}
	if f := c.OutputFormat(); f != FormatPNG && f != FormatSVG {
		return fmt.Errorf("unknown output format: %s", f)
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
