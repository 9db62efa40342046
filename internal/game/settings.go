package game

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings is the TOML-backed runtime configuration. A missing file is
// not an error; the toy starts with defaults.
type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Audio   AudioSettings   `toml:"audio"`
	Toy     ToySettings     `toml:"toy"`
	Logging LoggingSettings `toml:"logging"`
}

type WindowSettings struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type AudioSettings struct {
	Volume    float64 `toml:"volume"`
	Muted     bool    `toml:"muted"`
	MaxVoices int     `toml:"max_voices"`
}

type ToySettings struct {
	MaxShapes    int `toml:"max_shapes"`
	MaxParticles int `toml:"max_particles"`
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func LoadSettings(path string) (*Settings, error) {
	cfg := DefaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return DefaultSettings(), fmt.Errorf("parse settings %s: %w", path, err)
	}
	cfg.validate()
	return cfg, nil
}

func DefaultSettings() *Settings {
	return &Settings{
		Window: WindowSettings{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "bloop",
		},
		Audio: AudioSettings{
			Volume:    0.8,
			MaxVoices: DefaultMaxVoices,
		},
		Toy: ToySettings{
			MaxShapes:    MaxShapes,
			MaxParticles: MaxParticles,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}

// validate pulls out-of-range values back to defaults instead of failing.
func (s *Settings) validate() {
	if s.Window.Width <= 0 {
		s.Window.Width = WindowWidth
	}
	if s.Window.Height <= 0 {
		s.Window.Height = WindowHeight
	}
	if s.Window.Title == "" {
		s.Window.Title = "bloop"
	}
	s.Audio.Volume = clampF(s.Audio.Volume, 0, 1)
	if s.Audio.MaxVoices <= 0 {
		s.Audio.MaxVoices = DefaultMaxVoices
	}
	if s.Toy.MaxShapes <= 0 {
		s.Toy.MaxShapes = MaxShapes
	}
	if s.Toy.MaxParticles <= 0 {
		s.Toy.MaxParticles = MaxParticles
	}
}
