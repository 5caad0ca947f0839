package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.Tooltip.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Tooltip.ShowDelay)
	assert.Equal(t, time.Second, cfg.Tooltip.TouchSuppression)
	assert.Equal(t, 12.0, cfg.Tooltip.TouchHitSize)
	assert.Equal(t, 7.0, cfg.Tooltip.ArrowInset)
	assert.Equal(t, 200*time.Millisecond, cfg.Tooltip.HideFade)
	assert.Equal(t, 1.0, cfg.Tooltip.Opacity)
	assert.Equal(t, "Highlighted", cfg.Tooltip.HighlightedValueLabel)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Deck.Regions)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hoverdeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tooltip:
  show_delay: 250ms
  highlighted_value_label: Hervorgehoben
deck:
  regions: 2
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Tooltip.ShowDelay)
	assert.Equal(t, "Hervorgehoben", cfg.Tooltip.Labels().HighlightedValue)
	assert.Equal(t, 2, cfg.Deck.Regions)
	assert.Equal(t, time.Second, cfg.Tooltip.Coordinator().TouchSuppression)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("HOVERDECK_TOOLTIP_SHOW_DELAY", "1s")
	t.Setenv("HOVERDECK_LOGGING_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Tooltip.ShowDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"opacity":  "HOVERDECK_TOOLTIP_OPACITY",
		"regions":  "HOVERDECK_DECK_REGIONS",
		"format":   "HOVERDECK_LOGGING_FORMAT",
		"negative": "HOVERDECK_TOOLTIP_SHOW_DELAY",
		"inset":    "HOVERDECK_TOOLTIP_ARROW_INSET",
	}
	values := map[string]string{
		"opacity":  "1.5",
		"regions":  "0",
		"format":   "xml",
		"negative": "-1s",
		"inset":    "-7",
	}
	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(key, values[name])
			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestOverlayOptions(t *testing.T) {
	opts := Default().Tooltip.Overlay()
	assert.Equal(t, 1.0, opts.Opacity)
	assert.Equal(t, 7.0, opts.ArrowInset)
	assert.Equal(t, time.Duration(0), opts.ShowFade)
}
