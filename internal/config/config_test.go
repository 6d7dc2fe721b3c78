package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasksheet/internal/sheet"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, sheet.ModeMorning, cfg.View())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hourly_rate: 650\ndefault_view: evening\nseed_file: rows.yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 650.0, cfg.HourlyRate)
	assert.Equal(t, sheet.ModeEvening, cfg.View())
	assert.Equal(t, "rows.yaml", cfg.SeedFile)
	assert.Equal(t, 100, cfg.CompactWidth)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("hourly_rate: 650\n"), 0o644))
		t.Setenv("TASKSHEET_HOURLY_RATE", "700")
		t.Setenv("TASKSHEET_DEFAULT_VIEW", "custom")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 700.0, cfg.HourlyRate)
		assert.Equal(t, sheet.ModeCustom, cfg.View())
	})

	t.Run("unset env keeps defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, float64(sheet.DefaultHourlyRate), cfg.HourlyRate)
	})

	t.Run("bad number", func(t *testing.T) {
		t.Setenv("TASKSHEET_COMPACT_WIDTH", "wide")
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HourlyRate = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.CompactWidth = -1
	assert.Error(t, cfg.Validate())
}

func TestUnknownViewFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultView = "weekly"
	assert.Equal(t, sheet.ModeComplete, cfg.View())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.SeedDB = "/tmp/seed.db"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
