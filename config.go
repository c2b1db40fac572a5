package artres

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is what a run of the processor is parameterized with before the
// background name is resolved to a color.
type Config struct {
	Background string
	Targets    map[string]Target
}

func DefaultConfig() Config {
	return Config{
		Background: "transparent",
		Targets:    DefaultTargets(),
	}
}

type fileTarget struct {
	Width  uint   `toml:"width"`
	Height uint   `toml:"height"`
	Mode   string `toml:"mode"`
}

type fileConfig struct {
	Background string                `toml:"background"`
	Targets    map[string]fileTarget `toml:"targets"`
}

// LoadConfig reads a TOML file and merges it over the built-in defaults.
// File targets override or extend the default ones by file name.
func LoadConfig(path string) (Config, error) {
	conf := DefaultConfig()

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return conf, fmt.Errorf("config file: %w", err)
	}

	if fc.Background != "" {
		if _, err := ParseBackground(fc.Background); err != nil {
			return conf, fmt.Errorf("config file: %w", err)
		}
		conf.Background = fc.Background
	}

	for name, ft := range fc.Targets {
		if ft.Width == 0 || ft.Height == 0 {
			return conf, fmt.Errorf("config file: target %q: width and height must be positive", name)
		}
		mode, err := ParseResizeMode(ft.Mode)
		if err != nil {
			return conf, fmt.Errorf("config file: target %q: %w", name, err)
		}
		conf.Targets[name] = Target{Width: ft.Width, Height: ft.Height, Mode: mode}
	}

	return conf, nil
}
