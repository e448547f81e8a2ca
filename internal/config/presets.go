package config

import (
	"fmt"
	"sort"
)

// Presets maps a preset name to the numeric table parameters. Output
// settings always come from DefaultConfig.
var Presets = map[string]Config{
	"default": {Entries: 32, TotalBits: 32, FracBits: 16},
	"coarse":  {Entries: 16, TotalBits: 32, FracBits: 16},
	"fine":    {Entries: 64, TotalBits: 32, FracBits: 16},
	"i16":     {Entries: 32, TotalBits: 16, FracBits: 8},
	"i8":      {Entries: 16, TotalBits: 8, FracBits: 4},
}

// GetPreset returns the default config with the preset's table parameters.
func GetPreset(name string) (Config, error) {
	p, ok := Presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	cfg.Entries = p.Entries
	cfg.TotalBits = p.TotalBits
	cfg.FracBits = p.FracBits
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
