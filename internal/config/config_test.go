package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultTuning(), cfg.Tuning)
	assert.Equal(t, 1920, cfg.UI.Width)
	assert.Equal(t, "W", cfg.Keybinds.MarkWatched)
}

func TestLoadFromPartialTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[anilist]
token = "abc123"

[tuning]
drag_threshold_px = 10.0
fast_wheel_delta = 90.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.AniList.Token)
	assert.Equal(t, 10.0, cfg.Tuning.DragThresholdPx)
	assert.Equal(t, 90.0, cfg.Tuning.FastWheelDelta)

	// Untouched tuning fields fall back to defaults instead of zero
	def := DefaultTuning()
	assert.Equal(t, def.FlickVelocity, cfg.Tuning.FlickVelocity)
	assert.Equal(t, def.WheelSettleMs, cfg.Tuning.WheelSettleMs)
	assert.Equal(t, def.HydrateBatch, cfg.Tuning.HydrateBatch)
}

func TestLoadFromBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	tn := Tuning{SnapBackFactor: 0.5}
	tn.ApplyDefaults()

	assert.Equal(t, 0.5, tn.SnapBackFactor)
	assert.Equal(t, DefaultTuning().ClickBlockPx, tn.ClickBlockPx)
}
