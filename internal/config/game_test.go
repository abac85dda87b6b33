package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelOfFortune_Go/internal/domain"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Zones.StartingZone)
	assert.Equal(t, 100, cfg.Zones.MaxZone)
	assert.Equal(t, 5, cfg.Zones.SafeInterval)
	assert.Equal(t, 30, cfg.Zones.SuperInterval)
	assert.Equal(t, 8, cfg.Wheel.SliceCount)
	assert.Equal(t, 1, cfg.Wheel.BombCount)
	assert.False(t, cfg.Wheel.BombTest)
	assert.Equal(t, 2*time.Second, cfg.Spin.MinDuration)
	assert.Equal(t, 4*time.Second, cfg.Spin.MaxDuration)
	assert.Equal(t, 500*time.Millisecond, cfg.Spin.AutoSpinDelay)
	assert.True(t, cfg.Spin.ReviveAutoSpin)
}

func TestMultiplierCurve_At(t *testing.T) {
	cfg := DefaultGameConfig()

	assert.InDelta(t, 1.1, cfg.Wheel.CashCurve.At(1), 1e-9)
	assert.InDelta(t, 2.0, cfg.Wheel.CashCurve.At(10), 1e-9)
	assert.InDelta(t, 1.5, cfg.Wheel.GoldCurve.At(10), 1e-9)
}

func TestParseGameConfig(t *testing.T) {
	t.Run("overlays partial documents on defaults", func(t *testing.T) {
		cfg, err := ParseGameConfig([]byte(`
wheel:
  slice_count: 12
  bomb_count: 2
spin:
  max_duration: 5s
`))
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Wheel.SliceCount)
		assert.Equal(t, 2, cfg.Wheel.BombCount)
		assert.Equal(t, 5*time.Second, cfg.Spin.MaxDuration)
		assert.Equal(t, 2*time.Second, cfg.Spin.MinDuration, "unset keys keep defaults")
		assert.InDelta(t, 0.1, cfg.Wheel.CashCurve.Step, 1e-9)
	})

	t.Run("empty and comment-only documents yield defaults", func(t *testing.T) {
		for _, doc := range []string{"", "# nothing here\n"} {
			cfg, err := ParseGameConfig([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, DefaultGameConfig(), cfg)
		}
	})

	t.Run("rejects invalid tuning", func(t *testing.T) {
		testCases := []struct {
			name  string
			doc   string
			field string
		}{
			{"bomb count equal to slice count", "wheel:\n  slice_count: 4\n  bomb_count: 4\n", "bomb_count"},
			{"negative curve step", "wheel:\n  cash_curve:\n    step: -0.1\n", "step"},
			{"starting zone above max", "zones:\n  starting_zone: 200\n", "starting_zone"},
			{"max below min duration", "spin:\n  min_duration: 3s\n  max_duration: 1s\n", "max_duration"},
			{"zero interval", "zones:\n  safe_interval: 0\n", "safe_interval"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ParseGameConfig([]byte(tc.doc))
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tc.field)
			})
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := ParseGameConfig([]byte("wheel:\n  slices: 8\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	})
}

func TestLoadGameConfig(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadGameConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultGameConfig(), cfg)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game.yaml")
		require.NoError(t, os.WriteFile(path, []byte("zones:\n  max_zone: 60\n"), 0o644))

		cfg, err := LoadGameConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.Zones.MaxZone)
	})

	t.Run("shipped tuning file matches defaults", func(t *testing.T) {
		cfg, err := LoadGameConfig("../../" + ConfigPathGame)
		require.NoError(t, err)
		assert.Equal(t, DefaultGameConfig(), cfg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadGameConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgReadGameConfig)
	})
}
