// Package config loads the dashboard settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/kelompok10/surveydash/internal/utils"
)

// Config is the complete server configuration.
type Config struct {
	Server   ServerConfig
	Analysis AnalysisConfig
}

// ServerConfig holds HTTP and process settings.
type ServerConfig struct {
	Addr         string
	Env          string
	Commit       string
	BuildTime    string
	StaticDir    string
	MaxUploadMiB int
}

// AnalysisConfig holds the statistical knobs.
type AnalysisConfig struct {
	Alpha         float64
	MinIndexItems int
	HistogramBins int
}

// Development reports whether verbose development logging is wanted.
func (c ServerConfig) Development() bool { return c.Env == "development" }

// MaxUploadBytes is the request body limit for uploads.
func (c ServerConfig) MaxUploadBytes() int64 { return int64(c.MaxUploadMiB) << 20 }

// Load reads an optional .env file (path from SURVEY_ENV_FILE, default
// ".env") and then the process environment.
func Load() (*Config, error) {
	envFile := utils.SafeEnv("SURVEY_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Addr:      utils.SafeEnv("SURVEY_ADDR", ":8080"),
			Env:       utils.SafeEnv("SURVEY_ENV", "production"),
			Commit:    utils.SafeEnv("SURVEY_COMMIT", ""),
			BuildTime: utils.SafeEnv("SURVEY_BUILD_TIME", ""),
			StaticDir: utils.SafeEnv("SURVEY_STATIC_DIR", ""),
		},
	}
	var err error
	if cfg.Server.MaxUploadMiB, err = utils.EnvInt("SURVEY_MAX_UPLOAD_MB", 20); err != nil {
		return nil, err
	}
	if cfg.Analysis.Alpha, err = utils.EnvFloat("SURVEY_ALPHA", 0.05); err != nil {
		return nil, err
	}
	if cfg.Analysis.MinIndexItems, err = utils.EnvInt("SURVEY_MIN_INDEX_ITEMS", 1); err != nil {
		return nil, err
	}
	if cfg.Analysis.HistogramBins, err = utils.EnvInt("SURVEY_HIST_BINS", 5); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the analysis cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Server.MaxUploadMiB < 1:
		return fmt.Errorf("SURVEY_MAX_UPLOAD_MB must be positive, got %d", c.Server.MaxUploadMiB)
	case c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1:
		return fmt.Errorf("SURVEY_ALPHA must be in (0, 1), got %v", c.Analysis.Alpha)
	case c.Analysis.MinIndexItems < 1 || c.Analysis.MinIndexItems > 6:
		return fmt.Errorf("SURVEY_MIN_INDEX_ITEMS must be between 1 and 6, got %d", c.Analysis.MinIndexItems)
	case c.Analysis.HistogramBins < 1:
		return fmt.Errorf("SURVEY_HIST_BINS must be positive, got %d", c.Analysis.HistogramBins)
	}
	return nil
}
