package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SURVEY_ADDR", "SURVEY_ENV", "SURVEY_COMMIT", "SURVEY_BUILD_TIME", "SURVEY_STATIC_DIR",
		"SURVEY_MAX_UPLOAD_MB", "SURVEY_ALPHA", "SURVEY_MIN_INDEX_ITEMS", "SURVEY_HIST_BINS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.False(t, cfg.Server.Development())
	assert.Equal(t, int64(20<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, 0.05, cfg.Analysis.Alpha)
	assert.Equal(t, 1, cfg.Analysis.MinIndexItems)
	assert.Equal(t, 5, cfg.Analysis.HistogramBins)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SURVEY_ENV", "development")
	t.Setenv("SURVEY_MIN_INDEX_ITEMS", "3")
	t.Setenv("SURVEY_ALPHA", "0.01")
	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Server.Development())
	assert.Equal(t, 3, cfg.Analysis.MinIndexItems)
	assert.Equal(t, 0.01, cfg.Analysis.Alpha)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"SURVEY_ALPHA":           "1.5",
		"SURVEY_MIN_INDEX_ITEMS": "7",
		"SURVEY_HIST_BINS":       "zero",
		"SURVEY_MAX_UPLOAD_MB":   "0",
	}
	for k, v := range cases {
		clearEnv(t)
		t.Setenv(k, v)
		_, err := FromEnv()
		assert.Error(t, err, k)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SURVEY_ADDR")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SURVEY_ADDR=:9999\n"), 0o600))
	t.Setenv("SURVEY_ENV_FILE", path)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	os.Unsetenv("SURVEY_ADDR")
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	t.Setenv("SURVEY_ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))
	_, err := Load()
	require.NoError(t, err)
}
