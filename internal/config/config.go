package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Library  LibraryConfig `toml:"library"`
	AniList  AniListConfig `toml:"anilist"`
	UI       UIConfig      `toml:"ui"`
	Tuning   Tuning        `toml:"tuning"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type LibraryConfig struct {
	DBPath string `toml:"db_path"`
}

type AniListConfig struct {
	Token string `toml:"token"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// Tuning holds the gesture/scroll feel constants. The values are
// empirically tuned; treat them as a set and adjust with care.
type Tuning struct {
	DragThresholdPx   float64 `toml:"drag_threshold_px"`
	ClickBlockPx      float64 `toml:"click_block_px"`
	FlickVelocity     float64 `toml:"flick_velocity"` // px/ms
	TinyFlickMaxMs    float64 `toml:"tiny_flick_max_ms"`
	TinyFlickMaxPx    float64 `toml:"tiny_flick_max_px"`
	FarDragFactor     float64 `toml:"far_drag_factor"`
	SnapBackFactor    float64 `toml:"snap_back_factor"`
	FastWheelDelta    float64 `toml:"fast_wheel_delta"`
	FastWheelCooldown int     `toml:"fast_wheel_cooldown_ms"`
	WheelSettleMs     int     `toml:"wheel_settle_ms"`
	SettleDurationMs  int     `toml:"settle_duration_ms"`
	SampleWindowMs    int     `toml:"sample_window_ms"`
	FallbackChunk     int     `toml:"fallback_chunk"`
	HydrateBatch      int     `toml:"hydrate_batch"`
}

type KeybindConfig struct {
	MarkWatched string `toml:"mark_watched"`
	RateUp      string `toml:"rate_up"`
	RateDown    string `toml:"rate_down"`
	Search      string `toml:"search"`
	Fullscreen  string `toml:"fullscreen"`
}

func DefaultTuning() Tuning {
	return Tuning{
		DragThresholdPx:   6,
		ClickBlockPx:      12,
		FlickVelocity:     0.6,
		TinyFlickMaxMs:    90,
		TinyFlickMaxPx:    30,
		FarDragFactor:     1.1,
		SnapBackFactor:    0.22,
		FastWheelDelta:    60,
		FastWheelCooldown: 170,
		WheelSettleMs:     120,
		SettleDurationMs:  260,
		SampleWindowMs:    120,
		FallbackChunk:     25,
		HydrateBatch:      64,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Library: LibraryConfig{},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1920,
			Height:     1080,
		},
		Tuning: DefaultTuning(),
		Keybinds: KeybindConfig{
			MarkWatched: "W",
			RateUp:      "0",
			RateDown:    "9",
			Search:      "S",
			Fullscreen:  "F",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "anicouch"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at an explicit path, falling back to defaults
// when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Tuning.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills zero-valued tuning fields so a partial [tuning]
// section does not zero out the rest of the feel constants.
func (t *Tuning) ApplyDefaults() {
	def := DefaultTuning()
	if t.DragThresholdPx <= 0 {
		t.DragThresholdPx = def.DragThresholdPx
	}
	if t.ClickBlockPx <= 0 {
		t.ClickBlockPx = def.ClickBlockPx
	}
	if t.FlickVelocity <= 0 {
		t.FlickVelocity = def.FlickVelocity
	}
	if t.TinyFlickMaxMs <= 0 {
		t.TinyFlickMaxMs = def.TinyFlickMaxMs
	}
	if t.TinyFlickMaxPx <= 0 {
		t.TinyFlickMaxPx = def.TinyFlickMaxPx
	}
	if t.FarDragFactor <= 0 {
		t.FarDragFactor = def.FarDragFactor
	}
	if t.SnapBackFactor <= 0 {
		t.SnapBackFactor = def.SnapBackFactor
	}
	if t.FastWheelDelta <= 0 {
		t.FastWheelDelta = def.FastWheelDelta
	}
	if t.FastWheelCooldown <= 0 {
		t.FastWheelCooldown = def.FastWheelCooldown
	}
	if t.WheelSettleMs <= 0 {
		t.WheelSettleMs = def.WheelSettleMs
	}
	if t.SettleDurationMs <= 0 {
		t.SettleDurationMs = def.SettleDurationMs
	}
	if t.SampleWindowMs <= 0 {
		t.SampleWindowMs = def.SampleWindowMs
	}
	if t.FallbackChunk <= 0 {
		t.FallbackChunk = def.FallbackChunk
	}
	if t.HydrateBatch <= 0 {
		t.HydrateBatch = def.HydrateBatch
	}
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
