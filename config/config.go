// Package config loads the aoc24 settings from an optional YAML file, the
// environment and a .env file, in increasing order of precedence for the
// environment over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc24/internal/logger"
	"github.com/katalvlaran/aoc24/puzzle"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "AOC24_CONFIG"
	EnvDataDir    = "AOC24_DATA_DIR"
	EnvLogLevel   = "AOC24_LOG_LEVEL"
)

// Defaults applied to unset fields.
const (
	DefaultDataDir   = "data"
	DefaultLogLevel  = "info"
	DefaultLogFormat = logger.FormatConsole
	DefaultParallel  = 1
)

// lastDay is the highest day number an input override may name.
const lastDay = 25

var (
	// ErrInvalidLogFormat indicates a log_format other than console or json.
	ErrInvalidLogFormat = errors.New("config: log_format must be console or json")
	// ErrInvalidParallel indicates a negative parallel setting.
	ErrInvalidParallel = errors.New("config: parallel must be >= 0")
	// ErrInvalidDay indicates an inputs key outside 1..25.
	ErrInvalidDay = errors.New("config: inputs day must be between 1 and 25")
)

// Config holds every setting of a run.
type Config struct {
	DataDir   string         `yaml:"data_dir"`
	LogLevel  string         `yaml:"log_level"`
	LogFormat string         `yaml:"log_format"`
	Strict    bool           `yaml:"strict"`
	Parallel  int            `yaml:"parallel"`
	Inputs    map[int]string `yaml:"inputs"`
}

// LoadEnv loads .env style files into the process environment without
// overriding variables already set. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// Load reads the YAML file at path, falling back to $AOC24_CONFIG when path
// is empty and to built-in defaults when neither is set. Environment
// overrides are applied before defaults and validation.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := decode(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decode unmarshals data strictly; unknown keys are errors and an empty
// document leaves cfg untouched.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.Parallel == 0 {
		cfg.Parallel = DefaultParallel
	}
}

// Validate checks the settings Load cannot default away.
func (c *Config) Validate() error {
	if c.LogFormat != logger.FormatConsole && c.LogFormat != logger.FormatJSON {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidParallel, c.Parallel)
	}
	for day := range c.Inputs {
		if day < 1 || day > lastDay {
			return fmt.Errorf("%w: %d", ErrInvalidDay, day)
		}
	}

	return nil
}

// InputPath returns the input file of day: its override when configured,
// otherwise <data_dir>/<DD>.txt.
func (c *Config) InputPath(day int) string {
	if p, ok := c.Inputs[day]; ok && p != "" {
		return p
	}

	return filepath.Join(c.DataDir, puzzle.InputName(day))
}
