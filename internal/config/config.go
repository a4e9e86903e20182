// SPDX-License-Identifier: MIT

// Package config loads lvlgrid CLI settings and resolves puzzle input paths.
//
// Settings come from an optional file in TOML or YAML; the format is picked
// by extension. Every field has a default, so running without a file works.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultInputDir = "inp"
	DefaultTestFile = "test.txt"
	DefaultLand     = "#"
)

// Names tried by Discover, in order.
var discoverNames = []string{"lvlgrid.toml", "lvlgrid.yaml", "lvlgrid.yml"}

var (
	// ErrUnknownFormat indicates a config file extension other than .toml, .yaml or .yml.
	ErrUnknownFormat = errors.New("config: unknown config file format")
	// ErrInvalidLand indicates the land setting is not exactly one rune.
	ErrInvalidLand = errors.New("config: land must be a single character")
)

// Config holds CLI settings.
type Config struct {
	// InputDir is where day-numbered inputs and the test input live.
	InputDir string `toml:"input_dir" yaml:"input_dir"`
	// TestFile is the file name used when no input, or "t...", is given.
	TestFile string `toml:"test_file" yaml:"test_file"`
	// Land is the rune treated as land by the regions command.
	Land string `toml:"land" yaml:"land"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputDir: DefaultInputDir,
		TestFile: DefaultTestFile,
		Land:     DefaultLand,
	}
}

// Load reads the file at path over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	return cfg, cfg.Validate()
}

// Discover loads the first of lvlgrid.toml, lvlgrid.yaml, lvlgrid.yml found
// in dir. If none exists it returns Default with an empty path.
func Discover(dir string) (cfg Config, path string, err error) {
	for _, name := range discoverNames {
		p := filepath.Join(dir, name)
		if _, statErr := os.Stat(p); statErr == nil {
			cfg, err = Load(p)
			return cfg, p, err
		}
	}

	return Default(), "", nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Land) != 1 {
		return fmt.Errorf("land %q: %w", c.Land, ErrInvalidLand)
	}

	return nil
}

// LandRune returns the land setting as a rune. Validate first.
func (c Config) LandRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Land)
	return r
}

// Input is a resolved puzzle input location.
type Input struct {
	Path string
	// Testing is set when the path names a test input.
	Testing bool
}

// Resolve maps a command-line input argument to a file path:
//
//	""         -> <InputDir>/<TestFile>
//	"t", "T…"  -> <InputDir>/<TestFile>
//	"12"       -> <InputDir>/12.txt
//	otherwise  -> arg as given
func (c Config) Resolve(arg string) Input {
	path := arg
	switch {
	case arg == "", strings.HasPrefix(arg, "t"), strings.HasPrefix(arg, "T"):
		path = filepath.Join(c.InputDir, c.TestFile)
	default:
		if day, err := strconv.ParseUint(arg, 10, 8); err == nil {
			path = filepath.Join(c.InputDir, fmt.Sprintf("%d.txt", day))
		}
	}

	return Input{Path: path, Testing: strings.Contains(path, "test")}
}
