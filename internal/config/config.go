package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEntries   = 32
	DefaultTotalBits = 32
	DefaultFracBits  = 16
	DefaultOutput    = "tan_lut.go"
	DefaultPackage   = "tanlut"
	DefaultTool      = "cmd/tanlut"
	DefaultFormatter = "goimports"

	// MaxFracBits keeps frac*(t1-t0) inside int64 during interpolation.
	MaxFracBits = 30
	MaxEntries  = 1 << 16
)

var (
	// ErrParameterBounds indicates a table parameter outside its valid range.
	ErrParameterBounds = errors.New("config: parameter out of valid bounds")

	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

// Config describes one lookup table and where its artifact goes.
type Config struct {
	Entries   int    `yaml:"entries"`
	TotalBits uint8  `yaml:"total_bits"`
	FracBits  uint8  `yaml:"frac_bits"`
	Output    string `yaml:"output"`
	Package   string `yaml:"package"`
	Tool      string `yaml:"tool"`
	Formatter string `yaml:"formatter"`
}

func DefaultConfig() Config {
	return Config{
		Entries:   DefaultEntries,
		TotalBits: DefaultTotalBits,
		FracBits:  DefaultFracBits,
		Output:    DefaultOutput,
		Package:   DefaultPackage,
		Tool:      DefaultTool,
		Formatter: DefaultFormatter,
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the numeric parameters. Output, Package and Tool are only
// needed by the emitter and are not checked here.
func (c Config) Validate() error {
	switch c.TotalBits {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: total_bits must be 8, 16 or 32, got %d", ErrParameterBounds, c.TotalBits)
	}
	if c.FracBits < 1 || c.FracBits >= c.TotalBits || c.FracBits > MaxFracBits {
		return fmt.Errorf("%w: frac_bits must be in [1, %d], got %d",
			ErrParameterBounds, min(int(c.TotalBits)-1, MaxFracBits), c.FracBits)
	}
	if c.Entries < 2 || c.Entries > MaxEntries {
		return fmt.Errorf("%w: entries must be in [2, %d], got %d", ErrParameterBounds, MaxEntries, c.Entries)
	}
	return nil
}

// GoType is the element type used for the table in generated source.
func (c Config) GoType() string {
	return fmt.Sprintf("int%d", c.TotalBits)
}
