// Package config holds the translator options and application metadata.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Application constants
const (
	Application = "rua"
	Description = "rua translates a restricted Rust subset into Lua source text"
	WebSite     = "https://github.com/rualang/rua"
	UI          = `
 _ __ _   _  __ _
| '__| | | |/ _` + "`" + ` |
| |  | |_| | (_| |
|_|   \__,_|\__,_|
`
)

// DefaultIndent is the number of spaces per block-nesting level.
const DefaultIndent = 2

// DefaultFile is the options file consulted when none is named on the
// command line.
const DefaultFile = "rua.yaml"

// Config holds the options for one translation run.
type Config struct {
	// Indent is the number of spaces emitted per nesting level.
	Indent int `yaml:"indent"`
	// Banner controls the diagnostic marker written to stderr before the
	// generated program. It never enters the program text itself.
	Banner bool `yaml:"banner"`
	// Output is the file the program text is written to. Empty means stdout.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no options file is given.
func Default() *Config {
	return &Config{
		Indent: DefaultIndent,
		Banner: true,
	}
}

// Load reads a YAML options file on top of the defaults. Unknown fields are
// rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.Indent <= 0 {
		cfg.Indent = DefaultIndent
	}
	return cfg, nil
}

// LoadDefault reads DefaultFile from the working directory. A missing file
// is not an error; the defaults apply.
func LoadDefault() (*Config, error) {
	cfg, err := Load(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
