package utils

import (
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Step strategies, all of which produce the same generations
const (
	StepModeSequential = "sequential"
	StepModeParallel   = "parallel"
	StepModeBounded    = "bounded"
)

// MaxDimension bounds the grid width and height; larger boards do not fit on screen
const MaxDimension = 4096

// Front ends that can present the board
const (
	FrontendTerminal = "terminal"
	FrontendEbiten   = "ebiten"
	FrontendHeadless = "headless"
)

// Config holds the configuration for the board
type Config struct {
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	TickInterval    time.Duration `json:"tick_interval"`
	RandomThreshold float64       `json:"random_threshold"`
	StepMode        string        `json:"step_mode"`
	UseMemoryPool   bool          `json:"use_memory_pool"`
	Seed            int64         `json:"seed"`
	Frontend        string        `json:"frontend"`
	Generations     int           `json:"generations"`
	Scale           int           `json:"scale"`
	LogFile         string        `json:"log_file"`
	LogLevel        string        `json:"log_level"`

	ConfigFile string `json:"-"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:           10,
		Height:          10,
		TickInterval:    400 * time.Millisecond,
		RandomThreshold: 0.5,
		StepMode:        StepModeBounded,
		UseMemoryPool:   true,
		Frontend:        FrontendTerminal,
		Generations:     20,
		Scale:           24,
		LogLevel:        "info",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	config.ConfigFile = filename

	return config, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "JSON config file, flags override its values")
	fs.IntVar(&c.Width, "width", c.Width, "grid width used by generate")
	fs.IntVar(&c.Height, "height", c.Height, "grid height used by generate")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "interval between automatic generations")
	fs.Float64Var(&c.RandomThreshold, "threshold", c.RandomThreshold, "probability a cell starts alive on random generate")
	fs.StringVar(&c.StepMode, "step-mode", c.StepMode, "step strategy: sequential, parallel or bounded")
	fs.BoolVar(&c.UseMemoryPool, "pool", c.UseMemoryPool, "recycle replaced generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 seeds from the clock")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "front end: terminal, ebiten or headless")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to print in headless mode")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell in the ebiten window")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

// ParseFlags builds the configuration from the defaults, an optional -config file and the
// command line flags, in that order of precedence.
func ParseFlags(name string, args []string, output io.Writer) (Config, error) {
	scan := DefaultConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	scan.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return scan, err
	}
	if scan.ConfigFile == "" {
		return scan, scan.Validate()
	}

	config, err := LoadConfig(scan.ConfigFile)
	if err != nil {
		return config, err
	}
	// Parse again so explicit flags win over the file
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "[ParseFlags] failed to apply flags over config file")
	}
	return config, config.Validate()
}

// Validate reports the first setting that cannot drive the board
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return errors.Errorf("[Validate] grid size must not be negative, got %dx%d", c.Width, c.Height)
	case c.Width > MaxDimension || c.Height > MaxDimension:
		return errors.Errorf("[Validate] grid size must not exceed %d, got %dx%d", MaxDimension, c.Width, c.Height)
	case math.IsNaN(c.RandomThreshold) || c.RandomThreshold < 0 || c.RandomThreshold > 1:
		return errors.Errorf("[Validate] threshold must be within [0,1], got %v", c.RandomThreshold)
	case c.TickInterval <= 0:
		return errors.Errorf("[Validate] tick interval must be positive, got %v", c.TickInterval)
	case c.Generations < 0:
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	case c.Scale <= 0:
		return errors.Errorf("[Validate] scale must be positive, got %d", c.Scale)
	}
	switch c.StepMode {
	case StepModeSequential, StepModeParallel, StepModeBounded:
	default:
		return errors.Errorf("[Validate] unknown step mode %q", c.StepMode)
	}
	switch c.Frontend {
	case FrontendTerminal, FrontendEbiten, FrontendHeadless:
	default:
		return errors.Errorf("[Validate] unknown frontend %q", c.Frontend)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "[Level] invalid log level %q", c.LogLevel)
	}
	return level, nil
}
